// internal/refine/facets.go
package refine

import (
	"math"
	"sort"

	"github.com/equipscout/equipscout-backend/internal/models"
)

// AllSentinel is the "no constraint" option prefixed to every single-select
// facet list.
const AllSentinel = "All"

// DefaultSpecKeys is the allowlist of spec keys that become facet filters.
// Arbitrary free-form keys from the provider are deliberately not turned
// into filters; that would produce an unbounded, noisy facet list.
// Country of Origin is excluded here because it backs its own multi-select.
var DefaultSpecKeys = []string{"Capacity", "Installation", "Power Source", "Controls"}

// Vocabulary is the complete set of facets and price bounds derivable from
// one product collection. It is recomputed in full whenever the collection
// changes and never patched incrementally.
type Vocabulary struct {
	Brands     []string            `json:"brands"`
	Models     []string            `json:"models"`
	Suppliers  []string            `json:"suppliers"`
	SpecKeys   []string            `json:"spec_keys"`
	Specs      map[string][]string `json:"specs"`
	Countries  []string            `json:"countries"`
	Conditions []string            `json:"conditions"`
	PriceMin   float64             `json:"price_min"`
	PriceMax   float64             `json:"price_max"`
}

// PriceRangeEnabled reports whether the collection produced a usable price
// window. With no positively priced product the bounds are 0..0 and the
// price filter has no window to narrow.
func (v Vocabulary) PriceRangeEnabled() bool {
	return v.PriceMax > 0
}

// Discovery derives facet vocabularies. The watched spec keys are
// injectable so the derivation rule is testable in isolation.
type Discovery struct {
	specKeys []string
}

func NewDiscovery(specKeys []string) *Discovery {
	if len(specKeys) == 0 {
		specKeys = DefaultSpecKeys
	}
	keys := make([]string, len(specKeys))
	copy(keys, specKeys)
	return &Discovery{specKeys: keys}
}

// Discover scans products and builds the vocabulary in one pass per facet.
// It is a pure function of its input: same collection, same vocabulary.
func (d *Discovery) Discover(products []models.Product) Vocabulary {
	vocab := Vocabulary{
		Brands:    withAllSentinel(distinct(products, func(p models.Product) string { return p.Brand })),
		Models:    withAllSentinel(distinct(products, func(p models.Product) string { return p.Model })),
		Suppliers: withAllSentinel(distinct(products, func(p models.Product) string { return p.Supplier })),
		Countries: distinct(products, func(p models.Product) string {
			return p.Specs.Get(models.SpecCountryOfOrigin)
		}),
		Conditions: distinct(products, func(p models.Product) string { return p.Condition }),
		Specs:      make(map[string][]string),
	}

	for _, key := range d.specKeys {
		values := distinct(products, func(p models.Product) string { return p.Specs.Get(key) })
		if len(values) == 0 {
			// A key no product carries contributes nothing.
			continue
		}
		vocab.SpecKeys = append(vocab.SpecKeys, key)
		vocab.Specs[key] = withAllSentinel(values)
	}

	vocab.PriceMin, vocab.PriceMax = priceBounds(products)
	return vocab
}

// distinct collects the sorted set of non-empty values produced by get.
func distinct(products []models.Product, get func(models.Product) string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, p := range products {
		value := get(p)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		values = append(values, value)
	}
	sort.Strings(values)
	return values
}

func withAllSentinel(values []string) []string {
	return append([]string{AllSentinel}, values...)
}

// priceBounds computes floor(min)/ceil(max) over strictly positive prices.
func priceBounds(products []models.Product) (float64, float64) {
	min, max := 0.0, 0.0
	found := false
	for _, p := range products {
		if p.Price <= 0 {
			continue
		}
		if !found || p.Price < min {
			min = p.Price
		}
		if !found || p.Price > max {
			max = p.Price
		}
		found = true
	}
	if !found {
		return 0, 0
	}
	return math.Floor(min), math.Ceil(max)
}
