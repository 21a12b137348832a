// internal/models/product.go
package models

// Product is a single equipment listing returned by the search provider.
// Records are immutable once received and replaced wholesale by the next
// search. Price 0 is the sentinel for "price not listed".
type Product struct {
	ID          string  `json:"id"`
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	ImageURL    string  `json:"imageUrl"`
	Supplier    string  `json:"supplier"`
	ProductURL  string  `json:"productUrl"`
	Specs       SpecMap `json:"specs"`
	Condition   string  `json:"condition"`
	Description string  `json:"description,omitempty"`
}

// SpecCountryOfOrigin is the spec key backing the country multi-select
// filter. It is excluded from the generic per-spec facet list.
const SpecCountryOfOrigin = "Country of Origin"

// Citation points at a web source the provider grounded a result set on.
type Citation struct {
	Web *CitationWeb `json:"web,omitempty"`
}

type CitationWeb struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// SanitizeCitations drops entries without a usable web reference.
func SanitizeCitations(citations []Citation) []Citation {
	out := make([]Citation, 0, len(citations))
	for _, c := range citations {
		if c.Web != nil && c.Web.URI != "" {
			out = append(out, c)
		}
	}
	return out
}
