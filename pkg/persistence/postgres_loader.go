// pkg/persistence/postgres_loader.go
package persistence

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aleka07/movie-api/pkg/model"
)

// DefaultCatalogTable is the table read when none is configured.
const DefaultCatalogTable = "movies"

// CatalogSchema creates a table LoadCatalogFromPostgres can read.
// position fixes the order movies are served in.
const CatalogSchema = `
CREATE TABLE IF NOT EXISTS movies (
    position INTEGER PRIMARY KEY,
    id       TEXT NOT NULL UNIQUE,
    title    TEXT NOT NULL
)`

// catalogQuery builds the single SELECT used to seed the catalogue.
// table may be schema qualified ("public.movies"); each part is quoted separately.
func catalogQuery(table string) (string, []interface{}, error) {
	if table == "" {
		table = DefaultCatalogTable
	}
	ident := pgx.Identifier(strings.Split(table, "."))
	return sq.Select("id", "title").
		From(ident.Sanitize()).
		OrderBy("position ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// LoadCatalogFromPostgres reads the catalogue once and disconnects.
// The returned catalogue is frozen; the database is not consulted again
// for the lifetime of the process.
func LoadCatalogFromPostgres(ctx context.Context, dsn, table string) (model.Catalog, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("unable to create connection pool: %w", err)
	}
	defer pool.Close() // Seeding is one-shot, nothing stays connected

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return model.Catalog{}, fmt.Errorf("unable to ping database: %w", err)
	}

	query, args, err := catalogQuery(table)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("failed to build catalog query: %w", err)
	}

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("failed to query movies: %w", err)
	}
	defer rows.Close()

	movies := []model.Movie{}
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(&m.ID, &m.Title); err != nil {
			return model.Catalog{}, fmt.Errorf("failed to scan movie row: %w", err)
		}
		movies = append(movies, m)
	}
	// Check for errors encountered during iteration
	if err := rows.Err(); err != nil {
		return model.Catalog{}, fmt.Errorf("error iterating movie rows: %w", err)
	}

	return BuildCatalog(movies)
}
