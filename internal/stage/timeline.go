package stage

import (
	"time"

	"github.com/wrapcommand/wrapcommandai/internal/models"
)

// TimelineEvent is a synthesized milestone. There is no persisted event
// log: the timeline is rebuilt from the order's current stage and its two
// timestamps on every call. All completed milestones after the first share
// the order's updated_at, which is the only transition time actually known.
type TimelineEvent struct {
	Label     string    `json:"label"`
	Timestamp time.Time `json:"timestamp"`
	Completed bool      `json:"completed"`
	Active    bool      `json:"active"`
}

// customerMilestones lists the customer-visible milestones in canonical
// order, each with the set of internal stages at or after that milestone.
var customerMilestones = []struct {
	label  string
	stages map[Stage]bool
}{
	{"Order Received", stageSet(
		StageOrderReceived, StageFilesReceived, StageFileError, StageMissingFile,
		StageInDesign, StageAwaitingApproval, StageDesignComplete,
		StagePrintProduction, StageReadyForPickup, StageShipped,
		StageRefunded, StageFailed,
	)},
	{"Files Received", stageSet(
		StageFilesReceived, StageInDesign, StageAwaitingApproval,
		StageDesignComplete, StagePrintProduction, StageReadyForPickup,
		StageShipped,
	)},
	{"Preparing for Print", stageSet(
		StageInDesign, StageAwaitingApproval, StageDesignComplete,
		StagePrintProduction, StageReadyForPickup, StageShipped,
	)},
	{"In Production", stageSet(
		StagePrintProduction, StageReadyForPickup, StageShipped,
	)},
	{"Ready for Pickup", stageSet(StageReadyForPickup)},
	{"Shipped", stageSet(StageShipped)},
}

func stageSet(stages ...Stage) map[Stage]bool {
	set := make(map[Stage]bool, len(stages))
	for _, s := range stages {
		set[s] = true
	}
	return set
}

// BuildCustomerTimeline derives the customer-safe milestone timeline for
// an order. Only milestones the order has reached are included; the last
// one is marked active, the rest completed.
func BuildCustomerTimeline(o *models.Order) []TimelineEvent {
	current := Derive(o.WooStatus)

	var events []TimelineEvent
	for _, m := range customerMilestones {
		if !m.stages[current] {
			continue
		}
		events = append(events, TimelineEvent{
			Label:     m.label,
			Timestamp: o.UpdatedAt,
			Completed: true,
		})
	}

	if len(events) > 0 {
		events[0].Timestamp = o.CreatedAt
		last := &events[len(events)-1]
		last.Active = true
		last.Completed = false
	}

	return events
}

// BuildTimeline derives the staff timeline: every internal stage up to and
// including the current one, in linear order. Refunded and failed orders
// show only the received milestone plus their terminal stage.
func BuildTimeline(o *models.Order) []TimelineEvent {
	current := Derive(o.WooStatus)

	if current == StageRefunded || current == StageFailed {
		return []TimelineEvent{
			{Label: string(StageOrderReceived), Timestamp: o.CreatedAt, Completed: true},
			{Label: string(current), Timestamp: o.UpdatedAt, Active: true},
		}
	}

	rank := Rank(current)
	var events []TimelineEvent
	for i, s := range Stages {
		if i > rank || s == StageRefunded || s == StageFailed {
			break
		}
		// Error stages only appear when the order is actually in one
		if (s == StageFileError || s == StageMissingFile) && s != current {
			continue
		}
		ev := TimelineEvent{
			Label:     string(s),
			Timestamp: o.UpdatedAt,
			Completed: true,
		}
		if i == 0 {
			ev.Timestamp = o.CreatedAt
		}
		if s == current {
			ev.Active = true
			ev.Completed = false
		}
		events = append(events, ev)
	}
	return events
}
