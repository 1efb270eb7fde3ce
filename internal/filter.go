package internal

import "strings"

// FilteredCategories is the gallery content for one search query. It always holds every category
// of the catalog it was computed from, in catalog order, possibly with no photos.
type FilteredCategories struct {
	names  []string
	images map[string][]ImageRecord
}

// ComputeFilteredCategories keeps, per category, the photos whose caption contains the query,
// ignoring case. The photo order is preserved and an empty query matches every photo.
func ComputeFilteredCategories(catalog *Catalog, query string) FilteredCategories {
	names := catalog.Categories()
	result := FilteredCategories{
		names:  names,
		images: make(map[string][]ImageRecord, len(names)),
	}

	needle := strings.ToLower(query)
	for _, name := range names {
		matches := []ImageRecord{}
		for _, image := range catalog.Images(name) {
			if matchesQuery(image, needle) {
				matches = append(matches, image)
			}
		}
		result.images[name] = matches
	}

	return result
}

// matchesQuery expects an already lower-cased query.
func matchesQuery(image ImageRecord, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(image.Alt), lowerQuery)
}

// Categories returns the category names in catalog order.
func (f FilteredCategories) Categories() []string {
	names := make([]string, len(f.names))
	copy(names, f.names)
	return names
}

// Images returns the matching photos of a category.
func (f FilteredCategories) Images(category string) []ImageRecord {
	images := make([]ImageRecord, len(f.images[category]))
	copy(images, f.images[category])
	return images
}

// Has reports whether the category exists, regardless of whether anything matched.
func (f FilteredCategories) Has(category string) bool {
	_, ok := f.images[category]
	return ok
}

// Len returns the number of categories.
func (f FilteredCategories) Len() int {
	return len(f.names)
}

// TotalMatches returns the number of matching photos over all categories.
func (f FilteredCategories) TotalMatches() int {
	total := 0
	for _, images := range f.images {
		total += len(images)
	}
	return total
}
