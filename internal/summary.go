package internal

import (
	"fmt"
	"sort"
)

// CategoryCount is one line of the gallery list.
type CategoryCount struct {
	Category string
	Count    int
}

func (cc CategoryCount) String() string {
	return fmt.Sprintf("%s – %d photo(s)", cc.Category, cc.Count)
}

// ByCount sorts category counts from the smallest to the largest category.
type ByCount []CategoryCount

func (a ByCount) Len() int           { return len(a) }
func (a ByCount) Less(i, j int) bool { return a[i].Count < a[j].Count }
func (a ByCount) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }

// Summarize counts the photos of every category in catalog order.
// The counts are taken from the whole catalog, the gallery filter does not apply.
func Summarize(catalog *Catalog) []CategoryCount {
	names := catalog.Categories()
	counts := make([]CategoryCount, len(names))
	for i, name := range names {
		counts[i] = CategoryCount{Category: name, Count: catalog.Count(name)}
	}
	return counts
}

// SortedByCount returns a copy of counts, smallest category first. Categories of equal size keep
// their catalog order.
func SortedByCount(counts []CategoryCount) []CategoryCount {
	sorted := make([]CategoryCount, len(counts))
	copy(sorted, counts)
	sort.Stable(ByCount(sorted))
	return sorted
}

// TotalPhotos sums up all counts.
func TotalPhotos(counts []CategoryCount) int {
	total := 0
	for _, count := range counts {
		total += count.Count
	}
	return total
}
