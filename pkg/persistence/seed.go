// pkg/persistence/seed.go
package persistence

import (
	"context"

	"github.com/aleka07/movie-api/pkg/model"
)

// Seed sources reported by SeedCatalog.
const (
	SourceBuiltin  = "builtin"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// SeedOptions picks the catalogue seed source. DatabaseDSN takes priority
// over Path; with neither set the built-in movies are served.
type SeedOptions struct {
	Path        string
	DatabaseDSN string
	Table       string
}

// SeedCatalog builds the catalogue a process will serve for its lifetime
// and reports which source it came from.
func SeedCatalog(ctx context.Context, opts SeedOptions) (model.Catalog, string, error) {
	switch {
	case opts.DatabaseDSN != "":
		c, err := LoadCatalogFromPostgres(ctx, opts.DatabaseDSN, opts.Table)
		return c, SourcePostgres, err
	case opts.Path != "":
		c, err := LoadCatalogFile(opts.Path)
		return c, SourceFile, err
	default:
		return model.DefaultCatalog(), SourceBuiltin, nil
	}
}
