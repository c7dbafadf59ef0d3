package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/wrapcommand/wrapcommandai/internal/models"
	"gorm.io/gorm"
)

// ConvertQuoteRequest is the input for quote-to-order conversion
type ConvertQuoteRequest struct {
	PaymentMethod string `json:"payment_method"`
	PaymentNotes  string `json:"payment_notes"`
}

// ConvertQuoteResponse reports the records the conversion produced
type ConvertQuoteResponse struct {
	OrderNumber          string `json:"order_number"`
	ShopflowOrderID      uint   `json:"shopflow_order_id"`
	ApproveflowProjectID uint   `json:"approveflow_project_id,omitempty"`
	IsDesignProduct      bool   `json:"is_design_product"`
}

// designProductKeywords flag catalog items that need the design-approval
// workflow before production.
var designProductKeywords = []string{"design", "custom graphic", "livery", "proof"}

func isDesignProduct(productName string) bool {
	name := strings.ToLower(productName)
	for _, kw := range designProductKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// convertQuote converts a quote into a production order, plus an
// ApproveFlow project when the product needs design approval. One-shot:
// the whole flow runs in a transaction and the unique index on
// orders.quote_id closes the race two near-simultaneous calls would
// otherwise win together. Double conversion answers 409.
func (r *Router) convertQuote(w http.ResponseWriter, req *http.Request) {
	quote, ok := r.findQuote(w, req)
	if !ok {
		return
	}

	var in ConvertQuoteRequest
	if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if quote.ConvertedToOrder {
		respondError(w, http.StatusConflict, "Quote has already been converted")
		return
	}

	design := isDesignProduct(quote.ProductName)

	var order models.Order
	var project models.Project

	err := r.db.Transaction(func(tx *gorm.DB) error {
		quoteID := quote.ID
		order = models.Order{
			QuoteID:         &quoteID,
			WooStatus:       "pending",
			CustomerName:    quote.CustomerName,
			CustomerEmail:   quote.CustomerEmail,
			CustomerPhone:   quote.CustomerPhone,
			VehicleYear:     quote.VehicleYear,
			VehicleMake:     quote.VehicleMake,
			VehicleModel:    quote.VehicleModel,
			WrapType:        quote.WrapType,
			ProductName:     quote.ProductName,
			IsDesignProduct: design,
			PaymentMethod:   in.PaymentMethod,
			PaymentNotes:    in.PaymentNotes,
			Total:           quote.Total,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if design {
			project = models.Project{
				OrderID:       order.ID,
				CustomerName:  quote.CustomerName,
				CustomerEmail: quote.CustomerEmail,
				ProductName:   quote.ProductName,
			}
			if err := tx.Create(&project).Error; err != nil {
				return err
			}
		}

		return tx.Model(quote).Updates(map[string]interface{}{
			"converted_to_order": true,
			"is_paid":            true,
		}).Error
	})
	if err != nil {
		// A unique violation on quote_id means the other caller won
		if strings.Contains(err.Error(), "duplicate key") || strings.Contains(err.Error(), "unique constraint") {
			respondError(w, http.StatusConflict, "Quote has already been converted")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to convert quote")
		return
	}

	resp := ConvertQuoteResponse{
		OrderNumber:     order.OrderNumber,
		ShopflowOrderID: order.ID,
		IsDesignProduct: design,
	}
	if design {
		resp.ApproveflowProjectID = project.ID
	}

	respondJSON(w, http.StatusOK, resp)
}
