// internal/services/search_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/equipscout/equipscout-backend/internal/models"
	"github.com/equipscout/equipscout-backend/internal/utils"
)

// SearchService turns a structured query into a provider prompt, runs the
// search, and normalizes whatever comes back. Upstream malformation is
// recovered locally and surfaced as zero results, never as an error.
type SearchService struct {
	db     *gorm.DB
	client *ProviderClient
}

type SearchResult struct {
	Products  []models.Product  `json:"products"`
	Citations []models.Citation `json:"citations"`
}

func NewSearchService(db *gorm.DB, client *ProviderClient) *SearchService {
	return &SearchService{
		db:     db,
		client: client,
	}
}

// Search executes query against the provider. The only error it returns
// is a validation failure on the query itself; provider failures and
// unparseable responses degrade to an empty result.
func (s *SearchService) Search(ctx context.Context, query models.SearchQuery) (*SearchResult, error) {
	if err := utils.ValidateStruct(&query); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if query.ItemsPerPage == 0 {
		query.ItemsPerPage = 20
	}
	if query.Currency == "" {
		query.Currency = "USD"
	}

	start := time.Now()
	text, citations, err := s.client.Generate(ctx, buildSearchPrompt(query), true)
	if err != nil {
		logrus.WithError(err).Warn("Search provider call failed")
		s.logSearch(query, 0, time.Since(start))
		return &SearchResult{Products: []models.Product{}}, nil
	}

	products := decodeProducts(text)
	s.logSearch(query, len(products), time.Since(start))

	return &SearchResult{
		Products:  products,
		Citations: citations,
	}, nil
}

func buildSearchPrompt(query models.SearchQuery) string {
	var b strings.Builder
	b.WriteString("You are an expert in commercial kitchen and laundry equipment. Search the web for products matching the following criteria:\n")

	if query.Keyword != "" {
		fmt.Fprintf(&b, "- Keyword: %s\n", query.Keyword)
	}
	if query.Brand != "" {
		fmt.Fprintf(&b, "- Brand: %s\n", query.Brand)
	}
	if query.Model != "" {
		fmt.Fprintf(&b, "- Model: %s\n", query.Model)
	}
	if query.Category != "" && query.Category != models.AnyValue {
		fmt.Fprintf(&b, "- Category: %s\n", query.Category)
	}
	if len(query.Countries) > 0 {
		fmt.Fprintf(&b, "- Countries/Regions: %s\n", strings.Join(query.Countries, ", "))
	}
	if query.PriceMin != "" || query.PriceMax != "" {
		min, max := query.PriceMin, query.PriceMax
		if min == "" {
			min = "any"
		}
		if max == "" {
			max = "any"
		}
		fmt.Fprintf(&b, "- Price Range: %s to %s %s\n", min, max, query.Currency)
	}
	if query.Condition != "" && query.Condition != models.AnyValue {
		fmt.Fprintf(&b, "- Condition: %s\n", query.Condition)
	}
	if query.SupplierWebsites != "" {
		fmt.Fprintf(&b, "\nPrioritize or exclusively search within these supplier websites:\n%s\n", query.SupplierWebsites)
	}

	fmt.Fprintf(&b, `
Return a maximum of %d results.
The results MUST be a JSON array string. Do not include any text, explanation, or markdown formatting before or after the JSON array.
Each object in the array must have these keys: 'id' (a unique string), 'brand', 'model', 'price' (a number, or 0 if not found), 'currency' (e.g., '%s'), 'imageUrl' (a valid direct image URL), 'supplier', 'productUrl', 'specs' (an object with key-value pairs like 'Power', 'Capacity', 'Dimensions'), and 'condition' ('New', 'Used', or 'Refurbished').
If an image is not found, use a placeholder URL from picsum.photos.
`, query.ItemsPerPage, query.Currency)

	return b.String()
}

// decodeProducts extracts the JSON payload from the provider text and
// decodes it. Anything unparseable yields zero products.
func decodeProducts(text string) []models.Product {
	payload := extractJSONPayload(text)
	if payload == "" {
		return []models.Product{}
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(payload), &products); err != nil {
		logrus.WithError(err).Warn("Search provider returned non-JSON payload")
		return []models.Product{}
	}

	// Selection sets are keyed by id; a record arriving without one gets
	// a generated stand-in.
	for i := range products {
		if products[i].ID == "" {
			products[i].ID = uuid.NewString()
		}
	}

	return products
}

// extractJSONPayload strips markdown code fences and cuts the text down
// to the outermost JSON array or object.
func extractJSONPayload(text string) string {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")

	firstBracket := strings.Index(cleaned, "[")
	firstBrace := strings.Index(cleaned, "{")

	start := -1
	switch {
	case firstBracket == -1:
		start = firstBrace
	case firstBrace == -1:
		start = firstBracket
	case firstBrace < firstBracket:
		start = firstBrace
	default:
		start = firstBracket
	}
	if start == -1 {
		return ""
	}

	lastBracket := strings.LastIndex(cleaned, "]")
	lastBrace := strings.LastIndex(cleaned, "}")
	end := lastBracket
	if lastBrace > end {
		end = lastBrace
	}
	if end == -1 || end < start {
		return ""
	}

	return strings.TrimSpace(cleaned[start : end+1])
}

func (s *SearchService) logSearch(query models.SearchQuery, results int, took time.Duration) {
	if s.db == nil {
		return
	}
	entry := &models.SearchLog{
		Keyword:     query.Keyword,
		Category:    query.Category,
		Countries:   query.Countries,
		ResultCount: results,
		DurationMs:  took.Milliseconds(),
	}
	go func() {
		if err := s.db.Create(entry).Error; err != nil {
			logrus.WithError(err).Error("Failed to record search log")
		}
	}()
}
