package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioCatalog(t *testing.T) *Catalog {
	t.Helper()

	catalog, err := NewCatalog(
		CategoryEntry{Name: "Commercial", Images: []ImageRecord{
			{Src: "/planes/commercial1.jpg", Alt: "Boeing 747"},
			{Src: "/planes/commercial2.jpg", Alt: "Airbus A320"},
		}},
		CategoryEntry{Name: "Military", Images: []ImageRecord{
			{Src: "/planes/military1.jpg", Alt: "F-22 Raptor"},
		}},
	)
	require.NoError(t, err)
	return catalog
}

func TestComputeFilteredCategories(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  map[string][]string
	}{
		{
			name:  "substring across word boundary",
			query: "a3",
			want: map[string][]string{
				"Commercial": {"Airbus A320"},
				"Military":   {},
			},
		},
		{
			name:  "empty query keeps everything",
			query: "",
			want: map[string][]string{
				"Commercial": {"Boeing 747", "Airbus A320"},
				"Military":   {"F-22 Raptor"},
			},
		},
		{
			name:  "mixed case query",
			query: "rAPTOR",
			want: map[string][]string{
				"Commercial": {},
				"Military":   {"F-22 Raptor"},
			},
		},
		{
			name:  "no match anywhere",
			query: "concorde",
			want: map[string][]string{
				"Commercial": {},
				"Military":   {},
			},
		},
		{
			name:  "shared letter keeps order",
			query: "b",
			want: map[string][]string{
				"Commercial": {"Boeing 747", "Airbus A320"},
				"Military":   {},
			},
		},
	}

	catalog := scenarioCatalog(t)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := ComputeFilteredCategories(catalog, test.query)

			assert.Equal(t, catalog.Categories(), got.Categories())
			for category, wantAlts := range test.want {
				gotAlts := []string{}
				for _, image := range got.Images(category) {
					gotAlts = append(gotAlts, image.Alt)
				}
				assert.Equal(t, wantAlts, gotAlts, "category %s", category)
			}
		})
	}
}

func TestFilterIdentityOnEmptyQuery(t *testing.T) {
	catalog := DefaultCatalog()
	got := ComputeFilteredCategories(catalog, "")

	require.Equal(t, catalog.Categories(), got.Categories())
	for _, category := range catalog.Categories() {
		assert.Equal(t, catalog.Images(category), got.Images(category))
	}
	assert.Equal(t, 6, got.TotalMatches())
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	catalog := DefaultCatalog()

	lower := ComputeFilteredCategories(catalog, "boeing")
	upper := ComputeFilteredCategories(catalog, "BOEING")

	assert.Equal(t, lower, upper)
	assert.Equal(t, 1, lower.TotalMatches())
}

func TestFilterKeepsEveryCategory(t *testing.T) {
	catalog := DefaultCatalog()

	for _, query := range []string{"", "f-", "zzz", " ", "7"} {
		got := ComputeFilteredCategories(catalog, query)
		assert.Equal(t, catalog.Len(), got.Len(), "query %q", query)
		for _, category := range catalog.Categories() {
			assert.True(t, got.Has(category), "query %q lost %s", query, category)
		}
	}
}

// Every kept photo matches, every dropped photo does not, and kept photos are an ordered
// subsequence of the category.
func TestFilterIsOrderedSubsequence(t *testing.T) {
	catalog := DefaultCatalog()

	for _, query := range []string{"", "a", "F-1", "on", "CESSNA", "4", "x"} {
		got := ComputeFilteredCategories(catalog, query)
		for _, category := range catalog.Categories() {
			kept := got.Images(category)
			next := 0
			for _, image := range catalog.Images(category) {
				matches := strings.Contains(strings.ToLower(image.Alt), strings.ToLower(query))
				if next < len(kept) && kept[next] == image {
					assert.True(t, matches, "query %q kept %q", query, image.Alt)
					next++
					continue
				}
				assert.False(t, matches, "query %q dropped %q", query, image.Alt)
			}
			assert.Equal(t, len(kept), next, "query %q: kept photos out of order in %s", query, category)
		}
	}
}

func TestFilterEmptyAndNilCatalog(t *testing.T) {
	empty, err := NewCatalog()
	require.NoError(t, err)

	assert.Zero(t, ComputeFilteredCategories(empty, "a").Len())
	assert.Zero(t, ComputeFilteredCategories(nil, "a").Len())
}
