package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/wrapcommand/wrapcommandai/internal/models"
	"github.com/wrapcommand/wrapcommandai/internal/stage"
)

// orderView decorates an order with its derived stage for staff screens
type orderView struct {
	models.Order
	Stage            stage.Stage `json:"stage"`
	StageDescription string      `json:"stage_description"`
	Warnings         []string    `json:"warnings,omitempty"`
}

func staffView(o *models.Order) orderView {
	st := stage.Derive(o.WooStatus)
	return orderView{
		Order:            *o,
		Stage:            st,
		StageDescription: stage.Description(st),
		Warnings:         stage.DetectMissing(o),
	}
}

// listOrders returns all orders, newest first
func (r *Router) listOrders(w http.ResponseWriter, req *http.Request) {
	var orders []models.Order
	q := r.db.Order("created_at DESC")

	if status := req.URL.Query().Get("status"); status != "" {
		q = q.Where("woo_status = ?", status)
	}

	if err := q.Find(&orders).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	views := make([]orderView, 0, len(orders))
	for i := range orders {
		views = append(views, staffView(&orders[i]))
	}
	respondJSON(w, http.StatusOK, views)
}

// getOrder returns a single order by ID
func (r *Router) getOrder(w http.ResponseWriter, req *http.Request) {
	order, ok := r.findOrder(w, req)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, staffView(order))
}

// createOrder creates a manual order (walk-in, phone)
func (r *Router) createOrder(w http.ResponseWriter, req *http.Request) {
	var order models.Order
	if err := json.NewDecoder(req.Body).Decode(&order); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if order.WooStatus == "" {
		order.WooStatus = "pending"
	}

	if err := r.db.Create(&order).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	respondJSON(w, http.StatusCreated, staffView(&order))
}

// updateOrder updates an existing order
func (r *Router) updateOrder(w http.ResponseWriter, req *http.Request) {
	order, ok := r.findOrder(w, req)
	if !ok {
		return
	}

	oldStage := stage.Derive(order.WooStatus)

	if err := json.NewDecoder(req.Body).Decode(order); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := r.db.Save(order).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update order")
		return
	}

	if newStage := stage.Derive(order.WooStatus); newStage != oldStage {
		r.notifyStageChange(order, oldStage, newStage)
	}

	respondJSON(w, http.StatusOK, staffView(order))
}

// deleteOrder soft-deletes an order
func (r *Router) deleteOrder(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	if err := r.db.Delete(&models.Order{}, id).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete order")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Order deleted successfully",
	})
}

// orderTimeline returns the staff timeline for an order
func (r *Router) orderTimeline(w http.ResponseWriter, req *http.Request) {
	order, ok := r.findOrder(w, req)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"order_number": order.OrderNumber,
		"stage":        stage.Derive(order.WooStatus),
		"timeline":     stage.BuildTimeline(order),
	})
}

// orderWarnings returns the stuck-order warnings for an order
func (r *Router) orderWarnings(w http.ResponseWriter, req *http.Request) {
	order, ok := r.findOrder(w, req)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"order_number": order.OrderNumber,
		"warnings":     stage.DetectMissing(order),
	})
}

// trackOrder is the public customer-safe view. Internal stage names never
// leave this handler; only the coarse label and customer timeline do.
func (r *Router) trackOrder(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	var order models.Order
	if err := r.db.Where("order_number = ?", vars["orderNumber"]).First(&order).Error; err != nil {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}

	st := stage.Derive(order.WooStatus)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"order_number": order.OrderNumber,
		"label":        stage.CustomerLabel(st),
		"description":  stage.CustomerDescription(st),
		"timeline":     stage.BuildCustomerTimeline(&order),
	})
}

// findOrder loads the order addressed by the {id} path var
func (r *Router) findOrder(w http.ResponseWriter, req *http.Request) (*models.Order, bool) {
	vars := mux.Vars(req)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return nil, false
	}

	var order models.Order
	if err := r.db.First(&order, id).Error; err != nil {
		respondError(w, http.StatusNotFound, "Order not found")
		return nil, false
	}
	return &order, true
}
