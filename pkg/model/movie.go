// pkg/model/movie.go
package model

// Movie is the single entity served by the API.
type Movie struct {
	ID    string `json:"id" yaml:"id"`       // Opaque identifier, unique within a Catalog
	Title string `json:"title" yaml:"title"` // Display name
}

// Catalog is the ordered, read-only sequence of movies a process serves.
// It is built once at startup and never mutated afterwards, so it is safe
// to share between concurrent requests without locking.
type Catalog struct {
	movies []Movie
}

// NewCatalog freezes a copy of movies in the given order.
// Callers wanting validation should go through persistence.BuildCatalog.
func NewCatalog(movies []Movie) Catalog {
	frozen := make([]Movie, len(movies))
	copy(frozen, movies)
	return Catalog{movies: frozen}
}

// All returns the movies in insertion order. The slice is a copy.
func (c Catalog) All() []Movie {
	out := make([]Movie, len(c.movies))
	copy(out, c.movies)
	return out
}

// Len reports the number of movies in the catalog.
func (c Catalog) Len() int {
	return len(c.movies)
}

// DefaultMovies is the built-in catalogue used when no seed source is configured.
func DefaultMovies() []Movie {
	return []Movie{
		{ID: "123", Title: "Top Gun: Maverick"},
		{ID: "456", Title: "Sonic the Hedgehog"},
		{ID: "789", Title: "A Quiet Place"},
	}
}

// DefaultCatalog returns the built-in catalogue, frozen.
func DefaultCatalog() Catalog {
	return NewCatalog(DefaultMovies())
}
