// Package internal provides the photo catalog, the gallery filter, the view state and all
// supporting program logic which is shared by the TUI and the print app.
package internal

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Errors used when building or loading a Catalog.
var (
	ErrEmptyCategoryName  = errors.New("empty category name")
	ErrDuplicateCategory  = errors.New("duplicate category")
	ErrCatalogNotMapping  = errors.New("catalog is not a mapping of category to photos")
	ErrInvalidImageRecord = errors.New("invalid image record")
)

// ImageRecord describes a single photograph.
type ImageRecord struct {
	Src string `yaml:"src"` // resource path, resolved against the photo root
	Alt string `yaml:"alt"` // caption, also used as search key
}

// CategoryEntry is one category with its photos, in display order.
type CategoryEntry struct {
	Name   string
	Images []ImageRecord
}

// Catalog maps category names to photos. Categories keep their insertion order, which is the
// order of the gallery tabs. A Catalog is never mutated after construction.
type Catalog struct {
	names  []string
	images map[string][]ImageRecord
}

// NewCatalog builds a catalog from the given entries.
func NewCatalog(entries ...CategoryEntry) (*Catalog, error) {
	catalog := Catalog{
		names:  make([]string, 0, len(entries)),
		images: make(map[string][]ImageRecord, len(entries)),
	}

	for _, entry := range entries {
		if entry.Name == "" {
			return nil, fmt.Errorf("newCatalog: %w", ErrEmptyCategoryName)
		}
		if _, exists := catalog.images[entry.Name]; exists {
			return nil, fmt.Errorf("newCatalog: %w: %s", ErrDuplicateCategory, entry.Name)
		}

		images := make([]ImageRecord, len(entry.Images))
		copy(images, entry.Images)

		catalog.names = append(catalog.names, entry.Name)
		catalog.images[entry.Name] = images
	}

	return &catalog, nil
}

// DefaultCatalog returns the built-in portfolio.
func DefaultCatalog() *Catalog {
	catalog, err := NewCatalog(
		CategoryEntry{Name: "Commercial", Images: []ImageRecord{
			{Src: "/planes/commercial1.jpg", Alt: "Boeing 747"},
			{Src: "/planes/commercial2.jpg", Alt: "Airbus A320"},
		}},
		CategoryEntry{Name: "Military", Images: []ImageRecord{
			{Src: "/planes/military1.jpg", Alt: "F-22 Raptor"},
			{Src: "/planes/military2.jpg", Alt: "F-16 Falcon"},
		}},
		CategoryEntry{Name: "Private", Images: []ImageRecord{
			{Src: "/planes/private1.jpg", Alt: "Gulfstream G650"},
			{Src: "/planes/private2.jpg", Alt: "Cessna Citation"},
		}},
	)
	if err != nil {
		panic(err) // static data, can only fail on a programming error
	}

	return catalog
}

// Categories returns the category names in display order.
func (c *Catalog) Categories() []string {
	if c == nil {
		return []string{}
	}

	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// Images returns the photos of the given category in display order.
// Unknown categories have no photos.
func (c *Catalog) Images(category string) []ImageRecord {
	if c == nil {
		return []ImageRecord{}
	}

	images := make([]ImageRecord, len(c.images[category]))
	copy(images, c.images[category])
	return images
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// Count returns the number of photos in the given category.
func (c *Catalog) Count(category string) int {
	if c == nil {
		return 0
	}
	return len(c.images[category])
}

// LoadCatalogFile reads a YAML catalog from disk.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, readErr := os.ReadFile(path) //nolint:gosec // path is provided by the user
	if readErr != nil {
		return nil, fmt.Errorf("loadCatalogFile: failed to read %s: %w", path, readErr)
	}

	catalog, parseErr := ParseCatalogYAML(data)
	if parseErr != nil {
		return nil, fmt.Errorf("loadCatalogFile: %s: %w", path, parseErr)
	}

	return catalog, nil
}

// ParseCatalogYAML parses a catalog of the form
//
//	Commercial:
//	  - src: /planes/commercial1.jpg
//	    alt: Boeing 747
//
// The document is decoded node by node, so the category order of the file is kept.
func ParseCatalogYAML(data []byte) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parseCatalogYAML: %w", err)
	}

	// An empty document is an empty catalog.
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return NewCatalog()
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parseCatalogYAML: %w (line %d)", ErrCatalogNotMapping, root.Line)
	}

	entries := make([]CategoryEntry, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]

		var images []ImageRecord
		if err := valueNode.Decode(&images); err != nil {
			return nil, fmt.Errorf(
				"parseCatalogYAML: %w in category %q: %w", ErrInvalidImageRecord, keyNode.Value, err)
		}
		for idx, image := range images {
			if image.Src == "" || image.Alt == "" {
				return nil, fmt.Errorf(
					"parseCatalogYAML: %w: category %q entry %d needs src and alt",
					ErrInvalidImageRecord,
					keyNode.Value,
					idx)
			}
		}

		entries = append(entries, CategoryEntry{Name: keyNode.Value, Images: images})
	}

	catalog, err := NewCatalog(entries...)
	if err != nil {
		return nil, fmt.Errorf("parseCatalogYAML: %w", err)
	}
	return catalog, nil
}
