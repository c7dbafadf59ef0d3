package messaging

import (
	"context"
	"time"
)

// Channel is the delivery channel a provider serves
type Channel string

const (
	ChannelSMS   Channel = "sms"
	ChannelEmail Channel = "email"
)

// Message contains everything needed to dispatch one outbound message
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject,omitempty"` // email only
	Body    string `json:"body"`
}

// SendResult contains the result from the messaging provider
type SendResult struct {
	ProviderID  string                 `json:"providerId"`  // Provider-side message ID
	RawResponse map[string]interface{} `json:"rawResponse,omitempty"`
	SentAt      time.Time              `json:"sentAt"`
}

// ProviderInterface defines the contract for all messaging providers.
// A clean abstraction that allows plugging in different channels without
// the campaign handlers knowing which SaaS is behind them.
type ProviderInterface interface {
	// Code returns the unique code for this provider (e.g., "twilio", "resend")
	Code() string

	// Name returns the human-readable name of the provider
	Name() string

	// Channel returns the delivery channel this provider serves
	Channel() Channel

	// Send dispatches a single message
	Send(ctx context.Context, msg *Message) (*SendResult, error)
}
