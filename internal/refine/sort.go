// internal/refine/sort.go
package refine

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/equipscout/equipscout-backend/internal/models"
)

// SortProducts returns an ordered copy of products; the input is untouched.
// The sort is stable so ties keep their relative input order and repeated
// resorting does not shuffle equal keys.
func SortProducts(products []models.Product, key models.SortKey) []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)

	switch key {
	case models.SortPriceLowToHigh:
		// Unknown price is "worst", not zero: unpriced products always
		// sort after every positively priced one.
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i].Price, out[j].Price
			if a == 0 && b > 0 {
				return false
			}
			if b == 0 && a > 0 {
				return true
			}
			return a < b
		})
	case models.SortPriceHighToLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price > out[j].Price
		})
	case models.SortBrandAlpha:
		// Collators are not safe for concurrent use, so each sort gets
		// its own.
		collator := collate.New(language.English, collate.Loose)
		sort.SliceStable(out, func(i, j int) bool {
			return collator.CompareString(out[i].Brand, out[j].Brand) < 0
		})
	}

	return out
}
