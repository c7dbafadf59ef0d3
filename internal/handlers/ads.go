package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/wrapcommand/wrapcommandai/internal/ai"
	"github.com/wrapcommand/wrapcommandai/internal/models"
	"github.com/wrapcommand/wrapcommandai/internal/render"
	"github.com/wrapcommand/wrapcommandai/internal/utils"
)

// AdVariationsRequest is the input for bulk ad-video generation
type AdVariationsRequest struct {
	Product   string `json:"product"`
	Count     int    `json:"count"`
	VideoURL  string `json:"video_url"`
	PriceText string `json:"price_text"`
}

// adVariations generates N ad headlines and submits one render per
// headline. Partial failure is the normal case: the response carries an
// ok/error per variation and the campaign row records whatever resolved.
func (r *Router) adVariations(w http.ResponseWriter, req *http.Request) {
	var in AdVariationsRequest
	if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if in.Product == "" {
		respondError(w, http.StatusBadRequest, "product is required")
		return
	}
	if in.Count <= 0 {
		in.Count = 3
	}
	if in.Count > 10 {
		in.Count = 10
	}
	if r.completor == nil {
		respondError(w, http.StatusServiceUnavailable, "AI provider not configured")
		return
	}
	if r.renderer == nil {
		respondError(w, http.StatusServiceUnavailable, "Render provider not configured")
		return
	}

	ctx, cancel := context.WithTimeout(req.Context(), 2*time.Minute)
	defer cancel()

	raw, err := r.completor.Complete(ctx, ai.AdVariationsPrompt(in.Product, in.Count))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var headlines []string
	if err := json.Unmarshal([]byte(utils.SanitizeJSON(raw)), &headlines); err != nil {
		log.Printf("ad headline parse failed, using product name: %v", err)
		headlines = []string{in.Product}
	}
	if len(headlines) > in.Count {
		headlines = headlines[:in.Count]
	}

	results := render.RenderVariations(ctx, r.renderer, render.BlueprintInput{
		Subline:   in.Product,
		VideoURL:  in.VideoURL,
		PriceText: in.PriceText,
	}, headlines, r.cfg.Creatomate.MaxConcurrent)

	okCount := 0
	for _, res := range results {
		if res.OK {
			okCount++
		}
	}

	status := "sent"
	if okCount == 0 {
		status = "failed"
	} else if okCount < len(results) {
		status = "partial"
	}

	variations, _ := json.Marshal(results)
	campaign := models.Campaign{
		Channel:    models.CampaignChannelVideo,
		Provider:   "creatomate",
		Subject:    in.Product,
		Variations: variations,
		Sent:       okCount > 0,
		Status:     status,
	}
	if err := r.db.Create(&campaign).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to save campaign")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"campaign_id": campaign.ID,
		"status":      status,
		"results":     results,
	})
}
