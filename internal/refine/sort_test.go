// internal/refine/sort_test.go
package refine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/equipscout/equipscout-backend/internal/models"
)

func pricedProducts() []models.Product {
	return []models.Product{
		{ID: "a", Price: 100, Currency: "USD"},
		{ID: "b", Price: 0, Currency: "USD"},
		{ID: "c", Price: 50, Currency: "USD"},
	}
}

func TestPriceLowToHighPutsUnknownPriceLast(t *testing.T) {
	result := SortProducts(pricedProducts(), models.SortPriceLowToHigh)

	assert.Equal(t, []string{"c", "a", "b"}, ids(result))
}

func TestPriceHighToLowIsRawDescending(t *testing.T) {
	result := SortProducts(pricedProducts(), models.SortPriceHighToLow)

	assert.Equal(t, []string{"a", "c", "b"}, ids(result))
}

func TestBrandAlphaIgnoresCase(t *testing.T) {
	products := []models.Product{
		{ID: "r", Brand: "rational"},
		{ID: "e", Brand: "Electrolux"},
		{ID: "h", Brand: "Hobart"},
	}

	result := SortProducts(products, models.SortBrandAlpha)

	assert.Equal(t, []string{"e", "h", "r"}, ids(result))
}

func TestSortIsStableForEqualKeys(t *testing.T) {
	products := []models.Product{
		{ID: "first", Price: 500},
		{ID: "second", Price: 500},
		{ID: "third", Price: 500},
		{ID: "cheap", Price: 10},
	}

	result := SortProducts(products, models.SortPriceLowToHigh)

	assert.Equal(t, []string{"cheap", "first", "second", "third"}, ids(result))
}

func TestSortLeavesInputUntouched(t *testing.T) {
	products := pricedProducts()

	SortProducts(products, models.SortPriceLowToHigh)

	assert.Equal(t, []string{"a", "b", "c"}, ids(products))
}

func TestUnknownSortKeyKeepsOrder(t *testing.T) {
	result := SortProducts(pricedProducts(), models.SortKey("bogus"))

	assert.Equal(t, []string{"a", "b", "c"}, ids(result))
}
