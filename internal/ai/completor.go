package ai

import "context"

// Completor is the capability the rest of the app depends on. Pricing,
// campaign, and ad logic stay unit-testable by injecting a fake; only the
// Gemini client actually talks to the network.
type Completor interface {
	// Complete sends a prompt and returns the raw response text.
	Complete(ctx context.Context, prompt string) (string, error)
}
