package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/wrapcommand/wrapcommandai/internal/messaging"
)

// Config holds Resend credentials
type Config struct {
	APIKey    string
	FromEmail string
}

// Provider sends transactional email through the Resend API
type Provider struct {
	cfg        Config
	httpClient *http.Client
}

// NewProvider creates a Resend email provider
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("resend API key is required")
	}
	if cfg.FromEmail == "" {
		return nil, fmt.Errorf("resend from email is required")
	}

	return &Provider{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Code returns the provider code
func (p *Provider) Code() string { return "resend" }

// Name returns the provider name
func (p *Provider) Name() string { return "Resend Email" }

// Channel returns the channel this provider serves
func (p *Provider) Channel() messaging.Channel { return messaging.ChannelEmail }

// Send dispatches one email
func (p *Provider) Send(ctx context.Context, msg *messaging.Message) (*messaging.SendResult, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"from":    p.cfg.FromEmail,
		"to":      []string{msg.To},
		"subject": msg.Subject,
		"html":    msg.Body,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.resend.com/emails", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("resend request failed: %w", err)
	}
	defer resp.Body.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("resend response decode failed: %w", err)
	}

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("resend returned %d: %v", resp.StatusCode, raw["message"])
	}

	id, _ := raw["id"].(string)
	return &messaging.SendResult{
		ProviderID:  id,
		RawResponse: raw,
		SentAt:      time.Now(),
	}, nil
}
