// Package catalog holds the immutable product catalog and the pure query
// engine that filters and sorts it. The catalog is loaded exactly once at
// startup and is read-only for the life of the process.
package catalog

// Product is a single catalog record. Products are identified by ID and are
// never mutated after load; the cart copies whole values when snapshotting.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	Badge       string  `json:"badge,omitempty"`
	Description string  `json:"desc"`
}

// HasBadge reports whether the product carries a promotional label.
func (p Product) HasBadge() bool {
	return p.Badge != ""
}
