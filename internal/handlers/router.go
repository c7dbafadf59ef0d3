package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/wrapcommand/wrapcommandai/internal/ai"
	"github.com/wrapcommand/wrapcommandai/internal/config"
	"github.com/wrapcommand/wrapcommandai/internal/database"
	"github.com/wrapcommand/wrapcommandai/internal/events"
	"github.com/wrapcommand/wrapcommandai/internal/messaging"
	"github.com/wrapcommand/wrapcommandai/internal/middleware"
	"github.com/wrapcommand/wrapcommandai/internal/render"
	"github.com/wrapcommand/wrapcommandai/internal/services/woo"
	ws "github.com/wrapcommand/wrapcommandai/internal/websocket"
)

// Router wraps the mux router and the app's wiring
type Router struct {
	*mux.Router
	db  *database.DB
	cfg *config.Config

	completor ai.Completor
	providers *messaging.Registry
	renderer  render.Renderer
	wooSvc    *woo.SyncService
	hub       *ws.Hub
	producer  *events.Producer
}

// NewRouter creates a new HTTP router with all routes
func NewRouter(db *database.DB, cfg *config.Config) *Router {
	r := &Router{
		Router:    mux.NewRouter(),
		db:        db,
		cfg:       cfg,
		providers: messaging.NewRegistry(),
	}

	// Health check endpoint
	r.HandleFunc("/health", r.healthCheck).Methods("GET")

	// Auth routes
	auth := r.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.login).Methods("POST")
	auth.HandleFunc("/register", r.register).Methods("POST")
	auth.HandleFunc("/logout", r.logout).Methods("POST")

	// Public customer tracking
	r.HandleFunc("/track/{orderNumber}", r.trackOrder).Methods("GET")

	// WooCommerce webhook (authenticated by shared secret, not JWT)
	r.HandleFunc("/webhooks/woo", r.wooWebhook).Methods("POST")

	// Dashboard live updates
	r.HandleFunc("/ws", r.serveWs).Methods("GET")

	// API routes (protected)
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	api.HandleFunc("/status", r.getStatus).Methods("GET")

	api.HandleFunc("/orders", r.listOrders).Methods("GET")
	api.HandleFunc("/orders", r.createOrder).Methods("POST")
	api.HandleFunc("/orders/{id}", r.getOrder).Methods("GET")
	api.HandleFunc("/orders/{id}", r.updateOrder).Methods("PUT")
	api.HandleFunc("/orders/{id}", r.deleteOrder).Methods("DELETE")
	api.HandleFunc("/orders/{id}/timeline", r.orderTimeline).Methods("GET")
	api.HandleFunc("/orders/{id}/warnings", r.orderWarnings).Methods("GET")

	api.HandleFunc("/quotes", r.listQuotes).Methods("GET")
	api.HandleFunc("/quotes/generate", r.generateQuote).Methods("POST")
	api.HandleFunc("/quotes/{id}", r.getQuote).Methods("GET")
	api.HandleFunc("/quotes/{id}/convert", r.convertQuote).Methods("POST")
	api.HandleFunc("/quotes/{id}/pdf", r.quotePDF).Methods("GET")

	api.HandleFunc("/campaigns", r.listCampaigns).Methods("GET")
	api.HandleFunc("/campaigns/email", r.emailCampaign).Methods("POST")
	api.HandleFunc("/campaigns/sms", r.smsCampaign).Methods("POST")
	api.HandleFunc("/ads/variations", r.adVariations).Methods("POST")

	return r
}

// SetCompletor injects the AI text-completion capability
func (r *Router) SetCompletor(c ai.Completor) { r.completor = c }

// SetRenderer injects the video render client
func (r *Router) SetRenderer(c render.Renderer) { r.renderer = c }

// SetWooService registers the Woo sync service for webhook upserts
func (r *Router) SetWooService(s *woo.SyncService) { r.wooSvc = s }

// SetHub registers the dashboard websocket hub
func (r *Router) SetHub(h *ws.Hub) { r.hub = h }

// SetEventProducer registers the order-event producer
func (r *Router) SetEventProducer(p *events.Producer) { r.producer = p }

// Providers exposes the messaging provider registry for wiring
func (r *Router) Providers() *messaging.Registry { return r.providers }

// serveWs upgrades a dashboard connection
func (r *Router) serveWs(w http.ResponseWriter, req *http.Request) {
	if r.hub == nil {
		respondError(w, http.StatusServiceUnavailable, "Live updates not available")
		return
	}
	ws.ServeWs(r.hub, w, req)
}

// healthCheck returns the health status of the API
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// getStatus returns the current status
func (r *Router) getStatus(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "running",
		"dashboards": r.hubCount(),
	})
}

func (r *Router) hubCount() int {
	if r.hub == nil {
		return 0
	}
	return r.hub.Count()
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
