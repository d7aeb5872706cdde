// pkg/persistence/store.go
package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/aleka07/movie-api/pkg/model"
)

var (
	ErrEmptyCatalog = errors.New("catalog has no movies")
	ErrInvalidMovie = errors.New("invalid movie")
	ErrDuplicateID  = errors.New("duplicate movie id")
)

// MovieStore is the read-only view of the catalogue the API handlers depend on.
type MovieStore interface {
	// ListAllMovies returns every movie in catalogue order.
	ListAllMovies(ctx context.Context) ([]model.Movie, error)

	// Close releases any resources held by the store.
	Close()
}

// BuildCatalog validates movies coming from a seed source and freezes them.
// Every movie needs a non-empty id and title, and ids must be unique.
func BuildCatalog(movies []model.Movie) (model.Catalog, error) {
	if len(movies) == 0 {
		return model.Catalog{}, ErrEmptyCatalog
	}

	seen := make(map[string]struct{}, len(movies))
	for i, m := range movies {
		if m.ID == "" {
			return model.Catalog{}, fmt.Errorf("%w: entry %d has an empty id", ErrInvalidMovie, i)
		}
		if m.Title == "" {
			return model.Catalog{}, fmt.Errorf("%w: movie '%s' has an empty title", ErrInvalidMovie, m.ID)
		}
		if _, ok := seen[m.ID]; ok {
			return model.Catalog{}, fmt.Errorf("%w: '%s'", ErrDuplicateID, m.ID)
		}
		seen[m.ID] = struct{}{}
	}

	return model.NewCatalog(movies), nil
}
