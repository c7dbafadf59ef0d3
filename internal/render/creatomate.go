package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Client talks to the Creatomate render API
type Client struct {
	apiKey     string
	templateID string
	httpClient *http.Client
}

// NewClient creates a Creatomate client
func NewClient(apiKey, templateID string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("creatomate API key is required")
	}

	return &Client{
		apiKey:     apiKey,
		templateID: templateID,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// RenderResult is the provider's answer for one render request
type RenderResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	URL    string `json:"url"`
	Ref    string `json:"ref"` // our client reference
}

// StartRender submits one blueprint for rendering. Renders are
// asynchronous on the provider side; the returned status is usually
// "planned" or "rendering".
func (c *Client) StartRender(ctx context.Context, source map[string]interface{}) (*RenderResult, error) {
	ref := uuid.NewString()

	body := map[string]interface{}{
		"source":   source,
		"metadata": ref,
	}
	if c.templateID != "" && source == nil {
		body = map[string]interface{}{
			"template_id": c.templateID,
			"metadata":    ref,
		}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.creatomate.com/v1/renders", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("creatomate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("creatomate returned %d: %s", resp.StatusCode, string(raw))
	}

	// The API answers with an array of render objects
	var renders []RenderResult
	if err := json.NewDecoder(resp.Body).Decode(&renders); err != nil {
		return nil, fmt.Errorf("creatomate response decode failed: %w", err)
	}
	if len(renders) == 0 {
		return nil, fmt.Errorf("creatomate returned no renders")
	}

	result := renders[0]
	result.Ref = ref
	return &result, nil
}
