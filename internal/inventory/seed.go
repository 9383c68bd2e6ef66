package inventory

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jcmexdev/cafe-console/internal/inventory/domain"
)

// seedFile is the YAML layout of a menu file:
//
//	items:
//	  - name: Coffee
//	    price: "3.00"
//	    stock: 50
type seedFile struct {
	Items []seedItem `yaml:"items"`
}

type seedItem struct {
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
	Stock int    `yaml:"stock"`
}

// LoadSeed reads a menu seed from a YAML file.
func LoadSeed(path string) ([]domain.MenuItem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("inventory: read seed %q: %w", path, err)
	}
	return ParseSeed(raw)
}

func ParseSeed(raw []byte) ([]domain.MenuItem, error) {
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("inventory: parse seed: %w", err)
	}
	if len(f.Items) == 0 {
		return nil, fmt.Errorf("inventory: seed has no items")
	}

	items := make([]domain.MenuItem, 0, len(f.Items))
	for _, it := range f.Items {
		price, err := decimal.NewFromString(it.Price)
		if err != nil {
			return nil, fmt.Errorf("inventory: price of %q: %w", it.Name, err)
		}
		items = append(items, domain.MenuItem{Name: it.Name, Price: price, Stock: it.Stock})
	}
	return items, nil
}
