// internal/refine/filter_test.go
package refine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equipscout/equipscout-backend/internal/models"
)

func neutralFixtureFilters() Filters {
	return NewFilters(NewDiscovery(nil).Discover(fixtureProducts()))
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestNeutralFiltersAreIdentity(t *testing.T) {
	products := fixtureProducts()

	result := Apply(products, neutralFixtureFilters())

	assert.Equal(t, products, result)
}

func TestFilterNeverAddsRecords(t *testing.T) {
	products := fixtureProducts()
	filters := neutralFixtureFilters()
	filters.Keyword = "combi"

	result := Apply(products, filters)

	assert.LessOrEqual(t, len(result), len(products))
}

func TestBrandExactMatch(t *testing.T) {
	filters := neutralFixtureFilters()
	filters.Brand = "Hobart"

	result := Apply(fixtureProducts(), filters)

	assert.Equal(t, []string{"p2"}, ids(result))
}

func TestKeywordMatchesModelSubstringCaseInsensitively(t *testing.T) {
	filters := neutralFixtureFilters()
	filters.Keyword = "combi"

	result := Apply(fixtureProducts(), filters)

	assert.Equal(t, []string{"p1"}, ids(result))
}

func TestKeywordMatchesSpecValuesButNotKeys(t *testing.T) {
	filters := neutralFixtureFilters()

	// "electric" appears as a spec value on p1
	filters.Keyword = "ELECTRIC"
	assert.Equal(t, []string{"p1"}, ids(Apply(fixtureProducts(), filters)))

	// "capacity" is only a spec key, never searched
	filters.Keyword = "capacity"
	assert.Empty(t, Apply(fixtureProducts(), filters))
}

func TestSpecFacetFilter(t *testing.T) {
	filters := neutralFixtureFilters()
	filters.Specs["Power Source"] = "Gas"

	result := Apply(fixtureProducts(), filters)

	assert.Equal(t, []string{"p3"}, ids(result))
}

func TestCountryMultiSelect(t *testing.T) {
	products := []models.Product{
		{ID: "de", Specs: models.SpecMap{models.SpecCountryOfOrigin: "Germany"}},
		{ID: "nowhere", Specs: models.SpecMap{}},
	}
	vocab := NewDiscovery(nil).Discover(products)

	filters := NewFilters(vocab)
	filters.Countries = []string{"Germany"}
	assert.Equal(t, []string{"de"}, ids(Apply(products, filters)))

	// Empty selection means no constraint, not "match none".
	filters.Countries = nil
	assert.Equal(t, []string{"de", "nowhere"}, ids(Apply(products, filters)))
}

func TestConditionMultiSelect(t *testing.T) {
	filters := neutralFixtureFilters()
	filters.Conditions = []string{"Used", "Refurbished"}

	result := Apply(fixtureProducts(), filters)

	assert.Equal(t, []string{"p2"}, ids(result))
}

func TestPriceWindowNeverExcludesUnknownPrice(t *testing.T) {
	filters := neutralFixtureFilters()
	filters.PriceMin = 10000
	filters.PriceMax = 12000

	result := Apply(fixtureProducts(), filters)

	// p1 (15200.5) and p3 (8999.99) fall outside the window; the
	// unpriced p2 always passes.
	assert.Equal(t, []string{"p2"}, ids(result))
}

func TestDisabledPriceWindowPassesEverything(t *testing.T) {
	products := []models.Product{
		{ID: "a", Price: 0},
		{ID: "b", Price: 0},
	}
	filters := NewFilters(NewDiscovery(nil).Discover(products))

	assert.Len(t, Apply(products, filters), 2)
}

func TestPriceClampAtInputTime(t *testing.T) {
	filters := neutralFixtureFilters()
	require.Equal(t, 8999.0, filters.PriceMin)
	require.Equal(t, 15201.0, filters.PriceMax)

	// min may never reach max
	filters.SetPriceMin(20000)
	assert.Equal(t, 15200.0, filters.PriceMin)

	// max may never drop to min
	filters.SetPriceMax(0)
	assert.Equal(t, 15201.0, filters.PriceMax)

	// both stay inside the discovered bounds
	filters.SetPriceMin(-5)
	assert.Equal(t, 8999.0, filters.PriceMin)
	filters.SetPriceMax(99999)
	assert.Equal(t, 15201.0, filters.PriceMax)
}

func TestConjunctionOfPredicates(t *testing.T) {
	filters := neutralFixtureFilters()
	filters.Supplier = "KitchenPro"
	filters.Conditions = []string{"New"}
	filters.Keyword = "gas"

	result := Apply(fixtureProducts(), filters)

	assert.Equal(t, []string{"p3"}, ids(result))
}
