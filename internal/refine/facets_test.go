// internal/refine/facets_test.go
package refine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equipscout/equipscout-backend/internal/models"
)

func fixtureProducts() []models.Product {
	return []models.Product{
		{
			ID: "p1", Brand: "Rational", Model: "iCombi Pro", Price: 15200.5, Currency: "USD",
			Supplier: "KitchenPro", Condition: "New",
			Specs: models.SpecMap{
				"Capacity":          "10 trays",
				"Power Source":      "Electric",
				"Country of Origin": "Germany",
			},
		},
		{
			ID: "p2", Brand: "Hobart", Model: "AM16", Price: 0, Currency: "USD",
			Supplier: "GulfEquip", Condition: "Used",
			Specs: models.SpecMap{
				"Capacity":          "16 racks/hour",
				"Installation":      "Floor",
				"Country of Origin": "USA",
			},
		},
		{
			ID: "p3", Brand: "Electrolux", Model: "SkyLine", Price: 8999.99, Currency: "EUR",
			Supplier: "KitchenPro", Condition: "New",
			Specs: models.SpecMap{
				"Power Source": "Gas",
				"Noise Level":  "62 dB",
			},
		},
	}
}

func TestDiscoverIsIdempotent(t *testing.T) {
	discovery := NewDiscovery(nil)
	products := fixtureProducts()

	first := discovery.Discover(products)
	second := discovery.Discover(products)

	assert.Equal(t, first, second)
}

func TestDiscoverSingleSelectFacets(t *testing.T) {
	vocab := NewDiscovery(nil).Discover(fixtureProducts())

	assert.Equal(t, []string{"All", "Electrolux", "Hobart", "Rational"}, vocab.Brands)
	assert.Equal(t, []string{"All", "AM16", "SkyLine", "iCombi Pro"}, vocab.Models)
	assert.Equal(t, []string{"All", "GulfEquip", "KitchenPro"}, vocab.Suppliers)
}

func TestDiscoverWatchedSpecKeysOnly(t *testing.T) {
	vocab := NewDiscovery(nil).Discover(fixtureProducts())

	require.Contains(t, vocab.Specs, "Capacity")
	require.Contains(t, vocab.Specs, "Power Source")
	require.Contains(t, vocab.Specs, "Installation")

	// Free-form keys outside the allowlist never become facets.
	assert.NotContains(t, vocab.Specs, "Noise Level")
	// Country of Origin backs its own multi-select, not a spec facet.
	assert.NotContains(t, vocab.Specs, models.SpecCountryOfOrigin)

	assert.Equal(t, []string{"All", "10 trays", "16 racks/hour"}, vocab.Specs["Capacity"])
	assert.Equal(t, []string{"All", "Electric", "Gas"}, vocab.Specs["Power Source"])
}

func TestDiscoverInjectableSpecKeys(t *testing.T) {
	vocab := NewDiscovery([]string{"Noise Level"}).Discover(fixtureProducts())

	assert.Equal(t, []string{"Noise Level"}, vocab.SpecKeys)
	assert.Equal(t, []string{"All", "62 dB"}, vocab.Specs["Noise Level"])
	assert.NotContains(t, vocab.Specs, "Capacity")
}

func TestDiscoverCountriesAndConditions(t *testing.T) {
	vocab := NewDiscovery(nil).Discover(fixtureProducts())

	assert.Equal(t, []string{"Germany", "USA"}, vocab.Countries)
	assert.Equal(t, []string{"New", "Used"}, vocab.Conditions)
}

func TestDiscoverPriceBounds(t *testing.T) {
	vocab := NewDiscovery(nil).Discover(fixtureProducts())

	// floor(8999.99) .. ceil(15200.5), zero prices ignored
	assert.Equal(t, 8999.0, vocab.PriceMin)
	assert.Equal(t, 15201.0, vocab.PriceMax)
	assert.True(t, vocab.PriceRangeEnabled())
}

func TestDiscoverNoPositivePricesDisablesRange(t *testing.T) {
	products := []models.Product{
		{ID: "a", Brand: "X", Price: 0},
		{ID: "b", Brand: "Y", Price: 0},
	}

	vocab := NewDiscovery(nil).Discover(products)

	assert.Zero(t, vocab.PriceMin)
	assert.Zero(t, vocab.PriceMax)
	assert.False(t, vocab.PriceRangeEnabled())
}

func TestDiscoverEmptyCollection(t *testing.T) {
	vocab := NewDiscovery(nil).Discover(nil)

	assert.Equal(t, []string{"All"}, vocab.Brands)
	assert.Empty(t, vocab.SpecKeys)
	assert.False(t, vocab.PriceRangeEnabled())
}
