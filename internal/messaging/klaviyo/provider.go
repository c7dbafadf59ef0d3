package klaviyo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wrapcommand/wrapcommandai/internal/messaging"
)

// Config holds Klaviyo credentials
type Config struct {
	APIKey string
	ListID string
}

// Provider pushes campaign email into Klaviyo as a tracked event, which a
// Klaviyo flow then fans out to the list.
type Provider struct {
	cfg        Config
	httpClient *http.Client
}

// NewProvider creates a Klaviyo campaign provider
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("klaviyo API key is required")
	}

	return &Provider{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Code returns the provider code
func (p *Provider) Code() string { return "klaviyo" }

// Name returns the provider name
func (p *Provider) Name() string { return "Klaviyo Campaigns" }

// Channel returns the channel this provider serves
func (p *Provider) Channel() messaging.Channel { return messaging.ChannelEmail }

// Send records a campaign event for the recipient profile
func (p *Provider) Send(ctx context.Context, msg *messaging.Message) (*messaging.SendResult, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"data": map[string]interface{}{
			"type": "event",
			"attributes": map[string]interface{}{
				"metric": map[string]interface{}{
					"data": map[string]interface{}{
						"type":       "metric",
						"attributes": map[string]string{"name": "Campaign Email"},
					},
				},
				"profile": map[string]interface{}{
					"data": map[string]interface{}{
						"type":       "profile",
						"attributes": map[string]string{"email": msg.To},
					},
				},
				"properties": map[string]string{
					"subject": msg.Subject,
					"body":    msg.Body,
					"list_id": p.cfg.ListID,
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://a.klaviyo.com/api/events/", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Klaviyo-API-Key "+p.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("revision", "2024-10-15")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("klaviyo request failed: %w", err)
	}
	defer resp.Body.Close()

	// Klaviyo answers 202 with an empty body on success
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("klaviyo returned %d: %s", resp.StatusCode, string(body))
	}

	return &messaging.SendResult{SentAt: time.Now()}, nil
}
