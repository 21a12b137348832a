// internal/services/search_service_test.go
package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equipscout/equipscout-backend/internal/config"
	"github.com/equipscout/equipscout-backend/internal/models"
)

func TestExtractJSONPayload(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare array",
			input:    `[{"brand":"Rational"}]`,
			expected: `[{"brand":"Rational"}]`,
		},
		{
			name:     "fenced array",
			input:    "```json\n[{\"brand\":\"Rational\"}]\n```",
			expected: `[{"brand":"Rational"}]`,
		},
		{
			name:     "prose around the payload",
			input:    "Here are the results:\n[{\"brand\":\"Hobart\"}]\nLet me know if you need more.",
			expected: `[{"brand":"Hobart"}]`,
		},
		{
			name:     "object payload",
			input:    "```json\n{\"brand\":\"Hobart\"}\n```",
			expected: `{"brand":"Hobart"}`,
		},
		{
			name:     "no json at all",
			input:    "Sorry, I could not find any matching products.",
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractJSONPayload(tt.input))
		})
	}
}

func TestDecodeProducts(t *testing.T) {
	t.Run("fenced payload decodes", func(t *testing.T) {
		text := "```json\n[{\"id\":\"p1\",\"brand\":\"Rational\",\"model\":\"iCombi Pro\",\"price\":15200.5,\"currency\":\"USD\"}]\n```"

		products := decodeProducts(text)
		require.Len(t, products, 1)
		assert.Equal(t, "p1", products[0].ID)
		assert.Equal(t, "Rational", products[0].Brand)
		assert.Equal(t, 15200.5, products[0].Price)
	})

	t.Run("garbage yields zero products", func(t *testing.T) {
		assert.Empty(t, decodeProducts("not even close to json"))
		assert.Empty(t, decodeProducts("[{\"brand\": truncated"))
	})

	t.Run("missing ids are generated", func(t *testing.T) {
		text := `[{"brand":"Hobart"},{"id":"p2","brand":"Electrolux"}]`

		products := decodeProducts(text)
		require.Len(t, products, 2)
		assert.NotEmpty(t, products[0].ID)
		assert.Equal(t, "p2", products[1].ID)
	})

	t.Run("numeric spec values are tolerated", func(t *testing.T) {
		text := `[{"id":"p1","brand":"Rational","specs":{"Capacity":10,"Power Source":"Electric"}}]`

		products := decodeProducts(text)
		require.Len(t, products, 1)
		assert.Equal(t, "10", products[0].Specs.Get("Capacity"))
		assert.Equal(t, "Electric", products[0].Specs.Get("Power Source"))
	})
}

func TestBuildSearchPrompt(t *testing.T) {
	query := models.SearchQuery{
		Keyword:      "combi oven",
		Brand:        "Rational",
		Category:     "Cooking",
		Countries:    []string{"Germany", "UAE"},
		PriceMin:     "5000",
		Currency:     "USD",
		Condition:    "New",
		ItemsPerPage: 20,
	}

	prompt := buildSearchPrompt(query)

	assert.Contains(t, prompt, "Keyword: combi oven")
	assert.Contains(t, prompt, "Brand: Rational")
	assert.Contains(t, prompt, "Category: Cooking")
	assert.Contains(t, prompt, "Countries/Regions: Germany, UAE")
	assert.Contains(t, prompt, "Price Range: 5000 to any USD")
	assert.Contains(t, prompt, "Condition: New")
	assert.Contains(t, prompt, "Return a maximum of 20 results")
}

func TestBuildSearchPromptSkipsAnySentinels(t *testing.T) {
	query := models.SearchQuery{
		Category:  models.AnyValue,
		Condition: models.AnyValue,
	}

	prompt := buildSearchPrompt(query)

	assert.NotContains(t, prompt, "Category:")
	assert.NotContains(t, prompt, "Condition:")
}

func newMockProvider(t *testing.T, responseText string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		body := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{
					"content": map[string]interface{}{
						"parts": []map[string]string{{"text": responseText}},
					},
				},
			},
		}
		assert.NoError(t, json.NewEncoder(w).Encode(body))
	}))
}

func TestSearchDegradesOnProviderFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	service := NewSearchService(nil, NewProviderClient(config.ProviderConfig{
		BaseURL:     server.URL,
		SearchModel: "test-model",
		Timeout:     5,
	}))

	result, err := service.Search(context.Background(), models.SearchQuery{Keyword: "oven"})
	require.NoError(t, err)
	assert.Empty(t, result.Products)
}

func TestSearchDecodesProviderResults(t *testing.T) {
	server := newMockProvider(t, "```json\n[{\"id\":\"p1\",\"brand\":\"Rational\",\"model\":\"iCombi Pro\",\"price\":15200.5,\"currency\":\"USD\"}]\n```")
	defer server.Close()

	service := NewSearchService(nil, NewProviderClient(config.ProviderConfig{
		BaseURL:     server.URL,
		SearchModel: "test-model",
		Timeout:     5,
	}))

	result, err := service.Search(context.Background(), models.SearchQuery{Keyword: "combi oven"})
	require.NoError(t, err)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "Rational", result.Products[0].Brand)
}

func TestSearchRejectsInvalidQuery(t *testing.T) {
	service := NewSearchService(nil, NewProviderClient(config.ProviderConfig{Timeout: 5}))

	_, err := service.Search(context.Background(), models.SearchQuery{Currency: "DOLLARS"})
	assert.Error(t, err)
}
