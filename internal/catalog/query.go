package catalog

import (
	"sort"
	"strings"
)

// CategoryAll is the sentinel meaning "no category filter".
const CategoryAll = "all"

// SortMode selects the ordering applied after filtering.
type SortMode int

const (
	SortNone SortMode = iota // preserve catalog order
	SortPriceAsc
	SortPriceDesc
)

// String returns the wire/flag name for the sort mode.
func (m SortMode) String() string {
	switch m {
	case SortPriceAsc:
		return "price-asc"
	case SortPriceDesc:
		return "price-desc"
	default:
		return "none"
	}
}

// ParseSortMode maps a flag value to a SortMode. Unknown values fall back
// to SortNone.
func ParseSortMode(s string) SortMode {
	switch s {
	case "price-asc":
		return SortPriceAsc
	case "price-desc":
		return SortPriceDesc
	default:
		return SortNone
	}
}

// QueryState is the transient search/filter/sort selection. Zero value means
// no search term, all categories, catalog order.
type QueryState struct {
	Term     string
	Category string
	Sort     SortMode
}

// DefaultQueryState returns the selection every session starts with.
func DefaultQueryState() QueryState {
	return QueryState{Category: CategoryAll}
}

// Query filters and sorts products according to state. It is pure: the input
// slice is never mutated, and identical arguments always produce an identical
// sequence. Filtering keeps catalog order; sorting is stable, so equal prices
// keep their filtered relative order.
func Query(products []Product, state QueryState) []Product {
	term := strings.ToLower(state.Term)
	category := state.Category
	if category == "" {
		category = CategoryAll
	}

	var result []Product
	for _, p := range products {
		if category != CategoryAll && p.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		result = append(result, p)
	}

	switch state.Sort {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	}

	return result
}
