// internal/models/search.go
package models

// SearchQuery is the structured request sent to the search provider.
// It mirrors the search form: everything is optional except the result cap.
type SearchQuery struct {
	Keyword          string   `json:"keyword"`
	Brand            string   `json:"brand"`
	Model            string   `json:"model"`
	Category         string   `json:"category"`
	Countries        []string `json:"countries"`
	PriceMin         string   `json:"price_min"`
	PriceMax         string   `json:"price_max"`
	Condition        string   `json:"condition"`
	Currency         string   `json:"currency" validate:"omitempty,alpha,len=3"`
	SupplierWebsites string   `json:"supplier_websites"`
	ItemsPerPage     int      `json:"items_per_page" validate:"omitempty,oneof=10 20 50 100"`
}

// AnyValue is the form sentinel for "no constraint" on category/condition.
const AnyValue = "Any"

// Static form vocabularies. The result-set facets are derived from each
// response; these only populate the search form itself.
var (
	Categories = []string{AnyValue, "Cooking", "Refrigeration", "Dishwashing", "Laundry", "Preparation"}

	Conditions = []string{AnyValue, "New", "Used", "Refurbished"}

	Countries = []string{
		"Saudi Arabia",
		"UAE",
		"Bahrain",
		"Kuwait",
		"Oman",
		"Qatar",
		"China",
		"Germany",
		"France",
		"Italy",
		"Spain",
		"UK",
		"USA",
		"GCC",
		"Europe",
		"Asia",
	}

	Currencies = []string{"USD", "EUR", "GBP", "AED", "SAR"}

	ItemsPerPageOptions = []int{10, 20, 50, 100}
)

// DefaultCurrencyRates maps a currency code to its rate against USD.
// Rates are a fixed table; live rate fetching is out of scope.
var DefaultCurrencyRates = map[string]float64{
	"USD": 1,
	"EUR": 1.08,
	"GBP": 1.27,
	"AED": 0.27,
	"SAR": 0.27,
}
