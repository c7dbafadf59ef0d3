package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/wrapcommand/wrapcommandai/internal/ai"
	"github.com/wrapcommand/wrapcommandai/internal/models"
	"github.com/wrapcommand/wrapcommandai/internal/pricing"
	"github.com/wrapcommand/wrapcommandai/internal/printer"
)

// GenerateQuoteRequest is the input for AI-assisted quoting
type GenerateQuoteRequest struct {
	VehicleYear   int     `json:"vehicle_year"`
	VehicleMake   string  `json:"vehicle_make"`
	VehicleModel  string  `json:"vehicle_model"`
	WrapType      string  `json:"wrap_type"`
	ProductName   string  `json:"product_name"`
	SqftOverride  float64 `json:"sqft_override"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone string  `json:"customer_phone"`
}

// generateQuote prices a wrap job and persists the quote
func (r *Router) generateQuote(w http.ResponseWriter, req *http.Request) {
	var in GenerateQuoteRequest
	if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if in.VehicleYear == 0 || in.VehicleMake == "" || in.VehicleModel == "" {
		respondError(w, http.StatusBadRequest, "vehicle_year, vehicle_make and vehicle_model are required")
		return
	}

	rates := pricing.Rates{
		PricePerSqft: r.cfg.Pricing.PricePerSqft,
		LaborRate:    r.cfg.Pricing.LaborRate,
		Markup:       r.cfg.Pricing.Markup,
	}
	result := pricing.ComputeQuote(pricing.Input{
		VehicleYear:  in.VehicleYear,
		VehicleMake:  in.VehicleMake,
		VehicleModel: in.VehicleModel,
		WrapType:     in.WrapType,
		SqftOverride: in.SqftOverride,
	}, rates)

	quote := models.Quote{
		VehicleYear:   in.VehicleYear,
		VehicleMake:   in.VehicleMake,
		VehicleModel:  in.VehicleModel,
		VehicleClass:  string(result.Class),
		WrapType:      in.WrapType,
		ProductName:   in.ProductName,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		Sqft:          result.Sqft,
		LaborHours:    result.LaborHours,
		MaterialCost:  result.MaterialCost,
		LaborCost:     result.LaborCost,
		Total:         result.Total,
		PriceLow:      result.PriceLow,
		PriceHigh:     result.PriceHigh,
		Message:       r.quoteMessage(req.Context(), &in, result),
	}

	if err := r.db.Create(&quote).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to save quote")
		return
	}

	respondJSON(w, http.StatusCreated, quote)
}

// quoteMessage asks the completor for the conversational summary. The
// message is cosmetic: any failure falls back to a deterministic template
// so quoting never blocks on the AI provider.
func (r *Router) quoteMessage(ctx context.Context, in *GenerateQuoteRequest, res pricing.Result) string {
	fallback := fmt.Sprintf(
		"Your %d %s %s qualifies for a %s wrap in the $%.0f-$%.0f range. Let's make it stand out!",
		in.VehicleYear, in.VehicleMake, in.VehicleModel, in.WrapType, res.PriceLow, res.PriceHigh,
	)

	if r.completor == nil {
		return fallback
	}

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	msg, err := r.completor.Complete(ctx, ai.QuoteMessagePrompt(
		in.VehicleYear, in.VehicleMake, in.VehicleModel, in.WrapType, res.PriceLow, res.PriceHigh,
	))
	if err != nil || msg == "" {
		log.Printf("quote message generation failed, using fallback: %v", err)
		return fallback
	}
	return msg
}

// listQuotes returns all quotes, newest first
func (r *Router) listQuotes(w http.ResponseWriter, req *http.Request) {
	var quotes []models.Quote
	if err := r.db.Order("created_at DESC").Find(&quotes).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch quotes")
		return
	}
	respondJSON(w, http.StatusOK, quotes)
}

// getQuote returns a single quote by ID
func (r *Router) getQuote(w http.ResponseWriter, req *http.Request) {
	quote, ok := r.findQuote(w, req)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, quote)
}

// quotePDF renders the printable quote sheet
func (r *Router) quotePDF(w http.ResponseWriter, req *http.Request) {
	quote, ok := r.findQuote(w, req)
	if !ok {
		return
	}

	pdf, err := printer.GenerateQuotePDF(printer.QuoteSheetConfig{
		ShopName: "WrapCommandAI",
		BaseURL:  r.cfg.BaseURL,
	}, quote)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=quote-%d.pdf", quote.ID))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

// findQuote loads the quote addressed by the {id} path var, which may be
// the numeric row ID or the public UUID.
func (r *Router) findQuote(w http.ResponseWriter, req *http.Request) (*models.Quote, bool) {
	vars := mux.Vars(req)

	var quote models.Quote
	var err error
	if id, perr := strconv.ParseUint(vars["id"], 10, 32); perr == nil {
		err = r.db.First(&quote, id).Error
	} else {
		err = r.db.Where("public_id = ?", vars["id"]).First(&quote).Error
	}
	if err != nil {
		respondError(w, http.StatusNotFound, "Quote not found")
		return nil, false
	}
	return &quote, true
}
