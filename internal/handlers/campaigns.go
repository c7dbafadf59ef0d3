package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/wrapcommand/wrapcommandai/internal/ai"
	"github.com/wrapcommand/wrapcommandai/internal/messaging"
	"github.com/wrapcommand/wrapcommandai/internal/models"
	"github.com/wrapcommand/wrapcommandai/internal/utils"
)

// EmailCampaignRequest is the input for AI-generated email campaigns
type EmailCampaignRequest struct {
	Topic     string `json:"topic"`
	Audience  string `json:"audience"`
	Tone      string `json:"tone"`
	Recipient string `json:"recipient"`
	// Provider selects "resend" or "klaviyo"; empty means generate only
	Provider string `json:"provider"`
}

// SMSCampaignRequest is the input for AI-generated SMS blasts
type SMSCampaignRequest struct {
	Topic     string `json:"topic"`
	Recipient string `json:"recipient"`
}

type emailDraft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// emailCampaign generates campaign copy and optionally dispatches it
func (r *Router) emailCampaign(w http.ResponseWriter, req *http.Request) {
	var in EmailCampaignRequest
	if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if in.Topic == "" {
		respondError(w, http.StatusBadRequest, "topic is required")
		return
	}
	if r.completor == nil {
		respondError(w, http.StatusServiceUnavailable, "AI provider not configured")
		return
	}

	ctx, cancel := context.WithTimeout(req.Context(), 30*time.Second)
	defer cancel()

	raw, err := r.completor.Complete(ctx, ai.EmailCampaignPrompt(in.Topic, in.Audience, in.Tone))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// AI answers are supposed to be bare JSON but often arrive fenced
	var draft emailDraft
	if err := json.Unmarshal([]byte(utils.SanitizeJSON(raw)), &draft); err != nil {
		log.Printf("campaign draft parse failed: %v", err)
		draft = emailDraft{Subject: in.Topic, Body: raw}
	}

	campaign := models.Campaign{
		Channel:   models.CampaignChannelEmail,
		Provider:  in.Provider,
		Subject:   draft.Subject,
		Body:      draft.Body,
		Recipient: in.Recipient,
		Status:    "draft",
	}

	if in.Provider != "" && in.Recipient != "" {
		r.dispatchCampaign(ctx, &campaign)
	}

	if err := r.db.Create(&campaign).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to save campaign")
		return
	}

	respondJSON(w, http.StatusCreated, campaign)
}

// smsCampaign generates a short SMS blast and sends it through Twilio
func (r *Router) smsCampaign(w http.ResponseWriter, req *http.Request) {
	var in SMSCampaignRequest
	if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if in.Topic == "" || in.Recipient == "" {
		respondError(w, http.StatusBadRequest, "topic and recipient are required")
		return
	}
	if r.completor == nil {
		respondError(w, http.StatusServiceUnavailable, "AI provider not configured")
		return
	}

	ctx, cancel := context.WithTimeout(req.Context(), 30*time.Second)
	defer cancel()

	body, err := r.completor.Complete(ctx, ai.SMSCampaignPrompt(in.Topic))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	campaign := models.Campaign{
		Channel:   models.CampaignChannelSMS,
		Provider:  "twilio",
		Body:      body,
		Recipient: in.Recipient,
		Status:    "draft",
	}
	r.dispatchCampaign(ctx, &campaign)

	if err := r.db.Create(&campaign).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to save campaign")
		return
	}

	respondJSON(w, http.StatusCreated, campaign)
}

// dispatchCampaign sends a campaign through its provider and records the
// outcome on the campaign row. Send failures mark the row failed but are
// not surfaced as request errors; the draft is still saved.
func (r *Router) dispatchCampaign(ctx context.Context, c *models.Campaign) {
	provider, err := r.providers.Get(c.Provider)
	if err != nil {
		log.Printf("campaign dispatch: %v", err)
		c.Status = "failed"
		return
	}

	_, err = provider.Send(ctx, &messaging.Message{
		To:      c.Recipient,
		Subject: c.Subject,
		Body:    c.Body,
	})
	if err != nil {
		log.Printf("campaign dispatch via %s failed: %v", c.Provider, err)
		c.Status = "failed"
		return
	}

	c.Sent = true
	c.Status = "sent"
}

// listCampaigns returns all campaigns, newest first
func (r *Router) listCampaigns(w http.ResponseWriter, req *http.Request) {
	var campaigns []models.Campaign
	if err := r.db.Order("created_at DESC").Find(&campaigns).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch campaigns")
		return
	}
	respondJSON(w, http.StatusOK, campaigns)
}
