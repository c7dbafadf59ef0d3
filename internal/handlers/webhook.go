package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/wrapcommand/wrapcommandai/internal/services/woo"
	"github.com/wrapcommand/wrapcommandai/internal/stage"
)

// wooWebhook receives WooCommerce order webhooks. Two shapes arrive here:
// form-encoded test pings Woo sends when a webhook is first saved, and
// JSON order payloads for real deliveries. Anything else is treated as a
// JSON parse attempt. Upserts are idempotent via the woo_id unique index,
// so replayed deliveries are harmless.
func (r *Router) wooWebhook(w http.ResponseWriter, req *http.Request) {
	if secret := r.cfg.Woo.WebhookSecret; secret != "" {
		if req.Header.Get("X-WC-Webhook-Token") != secret {
			respondError(w, http.StatusUnauthorized, "Invalid webhook token")
			return
		}
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	// Woo's "save webhook" ping is form-encoded with just a webhook_id
	contentType := req.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/x-www-form-urlencoded") {
		form, err := url.ParseQuery(string(body))
		if err == nil && form.Get("webhook_id") != "" {
			log.Printf("🔔 Woo webhook ping received (webhook_id=%s)", form.Get("webhook_id"))
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
			return
		}
		respondError(w, http.StatusBadRequest, "Unrecognized form payload")
		return
	}

	var order woo.WooOrder
	if err := json.Unmarshal(body, &order); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid webhook payload")
		return
	}
	if order.ID == 0 {
		respondError(w, http.StatusBadRequest, "Webhook payload missing order id")
		return
	}

	if r.wooSvc == nil {
		respondError(w, http.StatusServiceUnavailable, "Woo sync not configured")
		return
	}

	saved, changed, err := r.wooSvc.ApplyWooOrder(&order)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to apply order update")
		return
	}

	newStage := stage.Derive(order.Status)
	if changed {
		// Old stage is rederivable from nothing at this point; the sync
		// service already fired OnStageChange with the real transition
		log.Printf("📦 Order %s moved to %s", saved.OrderNumber, newStage)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"stage":  newStage,
	})
}
