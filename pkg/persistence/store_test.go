package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleka07/movie-api/pkg/model"
)

func TestBuildCatalog(t *testing.T) {
	tests := []struct {
		name    string
		movies  []model.Movie
		wantErr error
	}{
		{name: "default movies", movies: model.DefaultMovies()},
		{name: "nil", movies: nil, wantErr: ErrEmptyCatalog},
		{name: "empty id", movies: []model.Movie{{ID: "", Title: "x"}}, wantErr: ErrInvalidMovie},
		{name: "empty title", movies: []model.Movie{{ID: "1", Title: ""}}, wantErr: ErrInvalidMovie},
		{
			name:    "duplicate id",
			movies:  []model.Movie{{ID: "1", Title: "a"}, {ID: "1", Title: "b"}},
			wantErr: ErrDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := BuildCatalog(tt.movies)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, c.Len())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.movies, c.All())
		})
	}
}

func TestMemoryMovieStore(t *testing.T) {
	store := NewMemoryMovieStore(model.DefaultCatalog())
	defer store.Close()

	first, err := store.ListAllMovies(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 3)

	first[0].Title = "mutated"

	second, err := store.ListAllMovies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.DefaultMovies(), second)
}
