// internal/services/provider_client.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/equipscout/equipscout-backend/internal/config"
	"github.com/equipscout/equipscout-backend/internal/models"
)

// ProviderClient talks to the generative search provider over its REST
// API. The provider is an opaque collaborator: it takes a prompt and
// returns text plus optional grounding citations, and any of that may be
// missing or malformed.
type ProviderClient struct {
	httpClient *http.Client
	config     config.ProviderConfig
}

func NewProviderClient(cfg config.ProviderConfig) *ProviderClient {
	return &ProviderClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		config: cfg,
	}
}

type generateRequest struct {
	Contents         []providerContent `json:"contents"`
	Tools            []providerTool    `json:"tools,omitempty"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type providerContent struct {
	Role  string         `json:"role,omitempty"`
	Parts []providerPart `json:"parts"`
}

type providerPart struct {
	Text string `json:"text"`
}

type providerTool struct {
	GoogleSearch *struct{} `json:"google_search,omitempty"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []providerPart `json:"parts"`
		} `json:"content"`
		GroundingMetadata struct {
			GroundingChunks json.RawMessage `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
}

// Generate sends prompt to the configured model and returns the response
// text plus any grounding citations. Citation payloads that fail to decode
// are treated as empty, never as an error.
func (c *ProviderClient) Generate(ctx context.Context, prompt string, withSearch bool) (string, []models.Citation, error) {
	reqBody := generateRequest{
		Contents: []providerContent{
			{Parts: []providerPart{{Text: prompt}}},
		},
		GenerationConfig: &generationConfig{Temperature: c.config.Temperature},
	}
	if withSearch {
		reqBody.Tools = []providerTool{{GoogleSearch: &struct{}{}}}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode provider request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent",
		c.config.BaseURL, c.config.SearchModel)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", nil, fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", nil, fmt.Errorf("failed to decode provider response: %w", err)
	}

	if len(decoded.Candidates) == 0 {
		return "", nil, nil
	}

	candidate := decoded.Candidates[0]
	var text string
	for _, part := range candidate.Content.Parts {
		text += part.Text
	}

	return text, decodeCitations(candidate.GroundingMetadata.GroundingChunks), nil
}

// decodeCitations tolerates missing or malformed grounding data.
func decodeCitations(raw json.RawMessage) []models.Citation {
	if len(raw) == 0 {
		return nil
	}
	var citations []models.Citation
	if err := json.Unmarshal(raw, &citations); err != nil {
		return nil
	}
	return models.SanitizeCitations(citations)
}
