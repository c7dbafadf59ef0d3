package handlers

import (
	"time"

	"github.com/wrapcommand/wrapcommandai/internal/events"
	"github.com/wrapcommand/wrapcommandai/internal/models"
	"github.com/wrapcommand/wrapcommandai/internal/stage"
)

// notifyStageChange fans one observed stage transition out to the
// dashboard websocket and the audit event stream. Both sinks are
// best-effort; neither blocks or fails the request that triggered it.
func (r *Router) notifyStageChange(order *models.Order, oldStage, newStage stage.Stage) {
	if r.hub != nil {
		r.hub.BroadcastJSON(map[string]interface{}{
			"type":         "order_stage_changed",
			"order_number": order.OrderNumber,
			"stage":        newStage,
			"label":        stage.CustomerLabel(newStage),
		})
	}

	r.producer.PublishStageChange(events.OrderEvent{
		OrderNumber: order.OrderNumber,
		OldStage:    oldStage,
		NewStage:    newStage,
		At:          time.Now(),
	})
}
