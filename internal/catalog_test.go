package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	assert.Equal(t, []string{"Commercial", "Military", "Private"}, catalog.Categories())
	assert.Equal(t, 3, catalog.Len())
	assert.Equal(t, []ImageRecord{
		{Src: "/planes/military1.jpg", Alt: "F-22 Raptor"},
		{Src: "/planes/military2.jpg", Alt: "F-16 Falcon"},
	}, catalog.Images("Military"))
	assert.Equal(t, 2, catalog.Count("Private"))
}

func TestCatalogIsImmutable(t *testing.T) {
	catalog := DefaultCatalog()

	names := catalog.Categories()
	names[0] = "Changed"
	images := catalog.Images("Commercial")
	images[0].Alt = "Changed"

	assert.Equal(t, "Commercial", catalog.Categories()[0])
	assert.Equal(t, "Boeing 747", catalog.Images("Commercial")[0].Alt)
}

func TestCatalogUnknownCategory(t *testing.T) {
	catalog := DefaultCatalog()

	assert.Empty(t, catalog.Images("Helicopters"))
	assert.Zero(t, catalog.Count("Helicopters"))
}

func TestNilCatalog(t *testing.T) {
	var catalog *Catalog

	assert.Empty(t, catalog.Categories())
	assert.Empty(t, catalog.Images("Commercial"))
	assert.Zero(t, catalog.Len())
}

func TestNewCatalogErrors(t *testing.T) {
	tests := []struct {
		name    string
		entries []CategoryEntry
		want    error
	}{
		{
			name:    "empty name",
			entries: []CategoryEntry{{Name: ""}},
			want:    ErrEmptyCategoryName,
		},
		{
			name:    "duplicate",
			entries: []CategoryEntry{{Name: "Military"}, {Name: "Military"}},
			want:    ErrDuplicateCategory,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewCatalog(test.entries...)
			assert.ErrorIs(t, err, test.want)
		})
	}
}

func TestNewCatalogEmpty(t *testing.T) {
	catalog, err := NewCatalog()
	require.NoError(t, err)
	assert.Zero(t, catalog.Len())
	assert.Empty(t, catalog.Categories())
}

func TestParseCatalogYAMLKeepsOrder(t *testing.T) {
	data := []byte(`
Zeppelins:
  - src: /planes/zeppelin.jpg
    alt: LZ 129
Airliners:
  - src: /planes/a380.jpg
    alt: Airbus A380
  - src: /planes/b787.jpg
    alt: Boeing 787
Gliders: []
`)

	catalog, err := ParseCatalogYAML(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"Zeppelins", "Airliners", "Gliders"}, catalog.Categories())
	assert.Equal(t, []ImageRecord{
		{Src: "/planes/a380.jpg", Alt: "Airbus A380"},
		{Src: "/planes/b787.jpg", Alt: "Boeing 787"},
	}, catalog.Images("Airliners"))
	assert.Empty(t, catalog.Images("Gliders"))
}

func TestParseCatalogYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{
			name: "sequence at top level",
			data: "- src: a.jpg\n  alt: A\n",
			want: ErrCatalogNotMapping,
		},
		{
			name: "photos are not a list",
			data: "Military: F-22\n",
			want: ErrInvalidImageRecord,
		},
		{
			name: "missing caption",
			data: "Military:\n  - src: /planes/military1.jpg\n",
			want: ErrInvalidImageRecord,
		},
		{
			name: "duplicate category",
			data: "Military: []\nMilitary: []\n",
			want: ErrDuplicateCategory,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseCatalogYAML([]byte(test.data))
			assert.ErrorIs(t, err, test.want)
		})
	}
}

func TestParseCatalogYAMLEmptyDocument(t *testing.T) {
	catalog, err := ParseCatalogYAML([]byte(""))
	require.NoError(t, err)
	assert.Zero(t, catalog.Len())
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Private:\n  - src: /planes/p.jpg\n    alt: Pilatus PC-12\n"), 0o600))

	catalog, err := LoadCatalogFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Private"}, catalog.Categories())

	_, err = LoadCatalogFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
