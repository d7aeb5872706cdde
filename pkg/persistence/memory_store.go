// pkg/persistence/memory_store.go
package persistence

import (
	"context"

	"github.com/aleka07/movie-api/pkg/model"
)

var _ MovieStore = (*MemoryMovieStore)(nil)

// MemoryMovieStore serves a frozen catalogue from memory.
type MemoryMovieStore struct {
	catalog model.Catalog
}

// NewMemoryMovieStore wraps an already built catalogue.
func NewMemoryMovieStore(catalog model.Catalog) *MemoryMovieStore {
	return &MemoryMovieStore{catalog: catalog}
}

// ListAllMovies returns a copy of the catalogue. It never fails.
func (s *MemoryMovieStore) ListAllMovies(_ context.Context) ([]model.Movie, error) {
	return s.catalog.All(), nil
}

// Close is a no-op; there is nothing to release.
func (s *MemoryMovieStore) Close() {}
