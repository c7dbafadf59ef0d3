package twilio

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/wrapcommand/wrapcommandai/internal/messaging"
)

// Config holds Twilio credentials
type Config struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

// Provider sends SMS through the Twilio Messages API
type Provider struct {
	cfg        Config
	httpClient *http.Client
}

// NewProvider creates a Twilio SMS provider
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.AccountSID == "" || cfg.AuthToken == "" {
		return nil, fmt.Errorf("twilio account SID and auth token are required")
	}
	if cfg.FromNumber == "" {
		return nil, fmt.Errorf("twilio from number is required")
	}

	return &Provider{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Code returns the provider code
func (p *Provider) Code() string { return "twilio" }

// Name returns the provider name
func (p *Provider) Name() string { return "Twilio SMS" }

// Channel returns the channel this provider serves
func (p *Provider) Channel() messaging.Channel { return messaging.ChannelSMS }

// Send dispatches one SMS
func (p *Provider) Send(ctx context.Context, msg *messaging.Message) (*messaging.SendResult, error) {
	endpoint := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json", p.cfg.AccountSID)

	form := url.Values{}
	form.Set("To", msg.To)
	form.Set("From", p.cfg.FromNumber)
	form.Set("Body", msg.Body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(p.cfg.AccountSID, p.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("twilio request failed: %w", err)
	}
	defer resp.Body.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("twilio response decode failed: %w", err)
	}

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("twilio returned %d: %v", resp.StatusCode, raw["message"])
	}

	sid, _ := raw["sid"].(string)
	return &messaging.SendResult{
		ProviderID:  sid,
		RawResponse: raw,
		SentAt:      time.Now(),
	}, nil
}
