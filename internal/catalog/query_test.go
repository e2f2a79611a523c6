package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureProducts() []Product {
	return []Product{
		{ID: 1, Name: "Pro Wireless Earbuds", Category: "Earbuds", Price: 29.99,
			Description: "Noise-canceling in-ear buds with 24h battery life and fast charging."},
		{ID: 2, Name: "Bass Boom Speaker", Category: "Speakers", Price: 49.99,
			Description: "Waterproof portable speaker with deep bass and Bluetooth 5.3."},
		{ID: 3, Name: "Studio Headphones", Category: "Headphones", Price: 50.00,
			Description: "Over-ear professional grade headphones with flat response."},
	}
}

func TestQueryDefaultStatePreservesCatalogOrder(t *testing.T) {
	products := fixtureProducts()
	result := Query(products, DefaultQueryState())

	require.Len(t, result, 3)
	for i, p := range result {
		assert.Equal(t, products[i].ID, p.ID)
	}
}

func TestQueryPriceDescending(t *testing.T) {
	// Scenario from the storefront contract: speaker before earbuds.
	products := []Product{
		{ID: 1, Name: "Pro Wireless Earbuds", Category: "Earbuds", Price: 29.99},
		{ID: 2, Name: "Bass Boom Speaker", Category: "Speakers", Price: 49.99},
	}
	result := Query(products, QueryState{Category: CategoryAll, Sort: SortPriceDesc})

	require.Len(t, result, 2)
	assert.Equal(t, "Bass Boom Speaker", result[0].Name)
	assert.Equal(t, "Pro Wireless Earbuds", result[1].Name)
}

func TestQuerySortedAdjacentPairs(t *testing.T) {
	products := fixtureProducts()

	asc := Query(products, QueryState{Category: CategoryAll, Sort: SortPriceAsc})
	for i := 1; i < len(asc); i++ {
		assert.LessOrEqual(t, asc[i-1].Price, asc[i].Price)
	}

	desc := Query(products, QueryState{Category: CategoryAll, Sort: SortPriceDesc})
	for i := 1; i < len(desc); i++ {
		assert.GreaterOrEqual(t, desc[i-1].Price, desc[i].Price)
	}
}

func TestQueryStableSortKeepsFilterOrderForEqualPrices(t *testing.T) {
	products := []Product{
		{ID: 1, Name: "A", Category: "Earbuds", Price: 10},
		{ID: 2, Name: "B", Category: "Earbuds", Price: 10},
		{ID: 3, Name: "C", Category: "Earbuds", Price: 5},
	}
	result := Query(products, QueryState{Category: CategoryAll, Sort: SortPriceAsc})

	require.Len(t, result, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{result[0].ID, result[1].ID, result[2].ID})
}

func TestQueryCaseInsensitiveSearchMatchesNameOrDescription(t *testing.T) {
	products := fixtureProducts()

	byName := Query(products, QueryState{Term: "BASS", Category: CategoryAll})
	require.Len(t, byName, 1)
	assert.Equal(t, 2, byName[0].ID)

	byDesc := Query(products, QueryState{Term: "noise-canceling", Category: CategoryAll})
	require.Len(t, byDesc, 1)
	assert.Equal(t, 1, byDesc[0].ID)
}

func TestQueryCategoryFilter(t *testing.T) {
	products := fixtureProducts()

	result := Query(products, QueryState{Category: "Speakers"})
	require.Len(t, result, 1)
	assert.Equal(t, "Bass Boom Speaker", result[0].Name)

	// A category with no products is a valid empty result, not an error.
	empty := Query(products, QueryState{Category: "Wearables"})
	assert.Empty(t, empty)
}

func TestQueryIdempotent(t *testing.T) {
	products := fixtureProducts()
	state := QueryState{Term: "ear", Category: CategoryAll, Sort: SortPriceAsc}

	first := Query(products, state)
	second := Query(products, state)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("query not deterministic (-first +second):\n%s", diff)
	}
}

func TestQueryDoesNotMutateInput(t *testing.T) {
	products := fixtureProducts()
	original := fixtureProducts()

	Query(products, QueryState{Category: CategoryAll, Sort: SortPriceDesc})

	if diff := cmp.Diff(original, products); diff != "" {
		t.Fatalf("input catalog mutated:\n%s", diff)
	}
}

func TestQueryEmptyCatalog(t *testing.T) {
	assert.Empty(t, Query(nil, DefaultQueryState()))
}

func TestParseSortMode(t *testing.T) {
	assert.Equal(t, SortPriceAsc, ParseSortMode("price-asc"))
	assert.Equal(t, SortPriceDesc, ParseSortMode("price-desc"))
	assert.Equal(t, SortNone, ParseSortMode("none"))
	assert.Equal(t, SortNone, ParseSortMode("garbage"))
}
