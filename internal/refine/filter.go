// internal/refine/filter.go
package refine

import (
	"strings"

	"github.com/equipscout/equipscout-backend/internal/models"
)

// Filters is the per-session refinement state over one result set. The
// zero value is not usable; build it from a vocabulary with NewFilters so
// the price window starts at the discovered bounds.
type Filters struct {
	Keyword    string            `json:"keyword"`
	Brand      string            `json:"brand"`
	Model      string            `json:"model"`
	Supplier   string            `json:"supplier"`
	Specs      map[string]string `json:"specs"`
	Countries  []string          `json:"countries"`
	Conditions []string          `json:"conditions"`
	PriceMin   float64           `json:"price_min"`
	PriceMax   float64           `json:"price_max"`

	// Discovered bounds, kept for clamping user price input.
	boundMin float64
	boundMax float64
}

// NewFilters returns the neutral "match everything" state for vocab:
// every single-select on the All sentinel, empty keyword and multi-selects,
// price window at the full discovered bounds.
func NewFilters(vocab Vocabulary) Filters {
	specs := make(map[string]string, len(vocab.SpecKeys))
	for _, key := range vocab.SpecKeys {
		specs[key] = AllSentinel
	}
	return Filters{
		Brand:    AllSentinel,
		Model:    AllSentinel,
		Supplier: AllSentinel,
		Specs:    specs,
		PriceMin: vocab.PriceMin,
		PriceMax: vocab.PriceMax,
		boundMin: vocab.PriceMin,
		boundMax: vocab.PriceMax,
	}
}

// SetPriceMin clamps at input time so min never exceeds max-1 and never
// leaves the discovered bounds.
func (f *Filters) SetPriceMin(value float64) {
	if value > f.PriceMax-1 {
		value = f.PriceMax - 1
	}
	if value < f.boundMin {
		value = f.boundMin
	}
	f.PriceMin = value
}

// SetPriceMax clamps at input time so max never drops below min+1 and
// never leaves the discovered bounds.
func (f *Filters) SetPriceMax(value float64) {
	if value < f.PriceMin+1 {
		value = f.PriceMin + 1
	}
	if value > f.boundMax {
		value = f.boundMax
	}
	f.PriceMax = value
}

// Apply reduces products to the subset satisfying every active predicate,
// preserving the relative order of the input. Predicates are a conjunction
// evaluated in a fixed order: exact-match fields, keyword, per-spec-key
// filters, country multi-select, condition multi-select, price window.
func Apply(products []models.Product, f Filters) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matches(p, f) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p models.Product, f Filters) bool {
	if !matchesExact(p.Brand, f.Brand) {
		return false
	}
	if !matchesExact(p.Model, f.Model) {
		return false
	}
	if !matchesExact(p.Supplier, f.Supplier) {
		return false
	}
	if !matchesKeyword(p, f.Keyword) {
		return false
	}
	for key, value := range f.Specs {
		if value != AllSentinel && value != "" && p.Specs.Get(key) != value {
			return false
		}
	}
	if len(f.Countries) > 0 && !contains(f.Countries, p.Specs.Get(models.SpecCountryOfOrigin)) {
		return false
	}
	if len(f.Conditions) > 0 && !contains(f.Conditions, p.Condition) {
		return false
	}
	return matchesPrice(p.Price, f)
}

func matchesExact(value, filter string) bool {
	return filter == "" || filter == AllSentinel || value == filter
}

// matchesKeyword does a case-insensitive substring match against brand,
// model, and spec values. Spec keys are deliberately not searched.
func matchesKeyword(p models.Product, keyword string) bool {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Brand), keyword) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Model), keyword) {
		return true
	}
	for _, value := range p.Specs {
		if strings.Contains(strings.ToLower(value), keyword) {
			return true
		}
	}
	return false
}

// matchesPrice never excludes the unknown-price sentinel, and treats a
// zero max as a disabled window (no positively priced product existed).
func matchesPrice(price float64, f Filters) bool {
	if price == 0 {
		return true
	}
	if f.PriceMax <= 0 {
		return true
	}
	return price >= f.PriceMin && price <= f.PriceMax
}

func contains(values []string, value string) bool {
	if value == "" {
		return false
	}
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
