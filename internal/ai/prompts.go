package ai

import "fmt"

// QuoteMessagePrompt builds the prompt for the conversational quote
// summary. The result is cosmetic: callers must fall back to a template
// string on any failure rather than block the quote.
func QuoteMessagePrompt(year int, make, model, wrapType string, low, high float64) string {
	return fmt.Sprintf(`You write short, friendly messages for a vehicle wrap shop.
Write ONE sentence summarizing this quote for the customer. No greetings, no sign-off.

Vehicle: %d %s %s
Wrap type: %s
Estimated price range: $%.0f - $%.0f`, year, make, model, wrapType, low, high)
}

// EmailCampaignPrompt builds the prompt for an email campaign.
// The model must answer with a JSON object: {"subject": "...", "body": "..."}.
func EmailCampaignPrompt(topic, audience, tone string) string {
	return fmt.Sprintf(`You write marketing emails for a vehicle wrap shop.
Return ONLY a JSON object with the shape {"subject": "...", "body": "..."}.
No markdown fences, no commentary.

Topic: %s
Audience: %s
Tone: %s`, topic, audience, tone)
}

// SMSCampaignPrompt builds the prompt for a short SMS blast.
func SMSCampaignPrompt(topic string) string {
	return fmt.Sprintf(`You write SMS marketing for a vehicle wrap shop.
Write ONE text message under 160 characters about: %s
Plain text only, include no links.`, topic)
}

// AdVariationsPrompt asks for n short ad headlines as a JSON array of
// strings. Output goes through SanitizeJSON before parsing.
func AdVariationsPrompt(product string, n int) string {
	return fmt.Sprintf(`You write video ad copy for a vehicle wrap shop.
Return ONLY a JSON array of %d strings, each a punchy headline under 60
characters promoting: %s
No markdown fences, no commentary.`, n, product)
}
