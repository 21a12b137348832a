// internal/refine/controller.go
package refine

import (
	"sync"

	"github.com/equipscout/equipscout-backend/internal/models"
)

// Controller owns the refinement state for one result set: the raw
// products, the derived vocabulary, the current filters, and the sort key.
//
// Two triggers drive it. A new raw collection (SetProducts) rebuilds the
// vocabulary unconditionally and resets the filters to neutral; any
// filter or sort mutation recomputes the visible collection on the next
// Visible call. Recomputation is pure and total: it never fails and
// yields an empty slice, not an error, when nothing matches.
type Controller struct {
	mu        sync.Mutex
	discovery *Discovery
	products  []models.Product
	citations []models.Citation
	vocab     Vocabulary
	filters   Filters
	sortKey   models.SortKey
}

// FilterUpdate carries a partial filter mutation; nil fields are left
// untouched. Price values are clamped on the way in.
type FilterUpdate struct {
	Keyword    *string           `json:"keyword,omitempty"`
	Brand      *string           `json:"brand,omitempty"`
	Model      *string           `json:"model,omitempty"`
	Supplier   *string           `json:"supplier,omitempty"`
	Specs      map[string]string `json:"specs,omitempty"`
	Countries  *[]string         `json:"countries,omitempty"`
	Conditions *[]string         `json:"conditions,omitempty"`
	PriceMin   *float64          `json:"price_min,omitempty"`
	PriceMax   *float64          `json:"price_max,omitempty"`
}

func NewController(discovery *Discovery) *Controller {
	if discovery == nil {
		discovery = NewDiscovery(nil)
	}
	c := &Controller{
		discovery: discovery,
		sortKey:   models.SortPriceLowToHigh,
	}
	c.vocab = discovery.Discover(nil)
	c.filters = NewFilters(c.vocab)
	return c
}

// SetProducts adopts a new raw collection wholesale: the previous
// collection, vocabulary, and filter state are discarded, never merged.
func (c *Controller) SetProducts(products []models.Product, citations []models.Citation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.products = make([]models.Product, len(products))
	copy(c.products, products)
	c.citations = models.SanitizeCitations(citations)
	c.vocab = c.discovery.Discover(c.products)
	c.filters = NewFilters(c.vocab)
}

// UpdateFilters applies the non-nil fields of update. Spec filters for
// keys outside the discovered vocabulary are ignored.
func (c *Controller) UpdateFilters(update FilterUpdate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if update.Keyword != nil {
		c.filters.Keyword = *update.Keyword
	}
	if update.Brand != nil {
		c.filters.Brand = *update.Brand
	}
	if update.Model != nil {
		c.filters.Model = *update.Model
	}
	if update.Supplier != nil {
		c.filters.Supplier = *update.Supplier
	}
	for key, value := range update.Specs {
		if _, ok := c.filters.Specs[key]; ok {
			c.filters.Specs[key] = value
		}
	}
	if update.Countries != nil {
		c.filters.Countries = append([]string{}, (*update.Countries)...)
	}
	if update.Conditions != nil {
		c.filters.Conditions = append([]string{}, (*update.Conditions)...)
	}
	if update.PriceMin != nil {
		c.filters.SetPriceMin(*update.PriceMin)
	}
	if update.PriceMax != nil {
		c.filters.SetPriceMax(*update.PriceMax)
	}
}

// ResetFilters returns the filters to neutral without touching products.
func (c *Controller) ResetFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters = NewFilters(c.vocab)
}

// SetSortKey switches the sort strategy; unknown keys are ignored.
func (c *Controller) SetSortKey(key models.SortKey) {
	if !models.ValidSortKey(key) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sortKey = key
}

// Visible recomputes the visible collection: filter, then sort.
func (c *Controller) Visible() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return SortProducts(Apply(c.products, c.filters), c.sortKey)
}

// Products returns the raw collection backing this session.
func (c *Controller) Products() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Controller) Citations() []models.Citation {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Citation, len(c.citations))
	copy(out, c.citations)
	return out
}

func (c *Controller) Vocabulary() Vocabulary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.vocab
}

func (c *Controller) Filters() Filters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters.clone()
}

func (c *Controller) SortKey() models.SortKey {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sortKey
}

func (f Filters) clone() Filters {
	out := f
	out.Specs = make(map[string]string, len(f.Specs))
	for key, value := range f.Specs {
		out.Specs[key] = value
	}
	out.Countries = append([]string{}, f.Countries...)
	out.Conditions = append([]string{}, f.Conditions...)
	return out
}
