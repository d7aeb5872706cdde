// pkg/persistence/catalog_file.go
package persistence

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aleka07/movie-api/pkg/model"
)

// catalogDocument is the on-disk layout of a catalogue file:
//
//	movies:
//	  - id: "123"
//	    title: "Top Gun: Maverick"
type catalogDocument struct {
	Movies []model.Movie `yaml:"movies"`
}

// LoadCatalogFile reads a YAML catalogue from path and validates it.
func LoadCatalogFile(path string) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a YAML catalogue document, keeping entry order.
func ParseCatalog(data []byte) (model.Catalog, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return model.Catalog{}, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return BuildCatalog(doc.Movies)
}
