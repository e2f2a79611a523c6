package catalog

import (
	_ "embed"
	"encoding/json"
	"os"
	"sort"

	"neonmart/internal/logging"
)

//go:embed products.json
var defaultCatalog []byte

// Store holds the loaded catalog. A missing or malformed source degrades to
// an empty catalog; downstream components treat that as a valid empty result,
// never as a fatal error.
type Store struct {
	products []Product
}

// Load builds a store from raw JSON. Malformed input yields an empty store.
func Load(data []byte) *Store {
	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		logging.Catalog("catalog source malformed, starting empty: %v", err)
		return &Store{}
	}
	logging.Catalog("catalog loaded: %d products", len(products))
	return &Store{products: products}
}

// LoadDefault builds a store from the catalog embedded in the binary.
func LoadDefault() *Store {
	return Load(defaultCatalog)
}

// LoadFile builds a store from a JSON file on disk. An unreadable file
// yields an empty store.
func LoadFile(path string) *Store {
	data, err := os.ReadFile(path)
	if err != nil {
		logging.Catalog("catalog file unreadable, starting empty: %v", err)
		return &Store{}
	}
	return Load(data)
}

// Products returns a copy of the full product list in catalog order.
func (s *Store) Products() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Len returns the number of products in the catalog.
func (s *Store) Len() int {
	return len(s.products)
}

// Categories returns the closed category set present in the catalog,
// sorted alphabetically. The "all" sentinel is a query concern, not a
// catalog one, so it is not included here.
func (s *Store) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			cats = append(cats, p.Category)
		}
	}
	sort.Strings(cats)
	return cats
}
