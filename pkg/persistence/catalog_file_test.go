package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleka07/movie-api/pkg/model"
)

const sampleCatalog = `movies:
  - id: "789"
    title: "A Quiet Place"
  - id: "123"
    title: "Top Gun: Maverick"
`

func TestParseCatalogKeepsOrder(t *testing.T) {
	c, err := ParseCatalog([]byte(sampleCatalog))
	require.NoError(t, err)

	assert.Equal(t, []model.Movie{
		{ID: "789", Title: "A Quiet Place"},
		{ID: "123", Title: "Top Gun: Maverick"},
	}, c.All())
}

func TestParseCatalogErrors(t *testing.T) {
	_, err := ParseCatalog([]byte("movies: []\n"))
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	_, err = ParseCatalog([]byte("movies:\n  - id: \"1\"\n"))
	assert.ErrorIs(t, err, ErrInvalidMovie)

	_, err = ParseCatalog([]byte("movies: [unterminated\n"))
	assert.Error(t, err)
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0644))

	c, err := LoadCatalogFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	_, err = LoadCatalogFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
