package bootstrap

import (
	"fmt"
	"os"

	"github.com/mumeireplit/vending/internal/vending/domain"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Items []seedItem `yaml:"items"`
}

type seedItem struct {
	Name  string `yaml:"name"`
	Price uint32 `yaml:"price"`
	Stock int    `yaml:"stock"`
}

// DefaultCatalog mirrors the machine's launch lineup.
func DefaultCatalog() []domain.Item {
	return []domain.Item{
		{Name: "Cola", Price: 120, Stock: 5},
		{Name: "Tea", Price: 100, Stock: 5},
		{Name: "Water", Price: 80, Stock: 5},
	}
}

// LoadCatalogSeed reads the YAML seed file and validates every entry the
// same way the admin create path does.
func LoadCatalogSeed(path string) ([]domain.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog seed: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog seed: %w", err)
	}

	items := make([]domain.Item, 0, len(file.Items))
	for _, entry := range file.Items {
		item, err := domain.NewItem(entry.Name, entry.Price, entry.Stock)
		if err != nil {
			return nil, fmt.Errorf("invalid catalog seed entry %q: %w", entry.Name, err)
		}

		items = append(items, item)
	}

	return items, nil
}
