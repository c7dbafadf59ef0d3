package stage

import (
	"errors"
	"log"
)

// Stage is the canonical, shop-facing order stage. Values are stable:
// they appear in stored records and API responses, so renaming one is a
// breaking change.
type Stage string

const (
	StageOrderReceived    Stage = "order_received"
	StageFilesReceived    Stage = "files_received"
	StageFileError        Stage = "file_error"
	StageMissingFile      Stage = "missing_file"
	StageInDesign         Stage = "in_design"
	StageAwaitingApproval Stage = "awaiting_approval"
	StageDesignComplete   Stage = "design_complete"
	StagePrintProduction  Stage = "print_production"
	StageReadyForPickup   Stage = "ready_for_pickup"
	StageShipped          Stage = "shipped"
	StageRefunded         Stage = "refunded"
	StageFailed           Stage = "failed"
)

// Stages is the fixed linear ordering used by Next.
var Stages = []Stage{
	StageOrderReceived,
	StageFilesReceived,
	StageFileError,
	StageMissingFile,
	StageInDesign,
	StageAwaitingApproval,
	StageDesignComplete,
	StagePrintProduction,
	StageReadyForPickup,
	StageShipped,
	StageRefunded,
	StageFailed,
}

// wooToStage maps WooCommerce order statuses (built-in and the wrap-shop
// custom ones) to internal stages.
var wooToStage = map[string]Stage{
	"pending":           StageOrderReceived,
	"on-hold":           StageOrderReceived,
	"processing":        StageFilesReceived,
	"files-received":    StageFilesReceived,
	"file-error":        StageFileError,
	"missing-file":      StageMissingFile,
	"in-design":         StageInDesign,
	"awaiting-approval": StageAwaitingApproval,
	"design-complete":   StageDesignComplete,
	"print-production":  StagePrintProduction,
	"ready-for-pickup":  StageReadyForPickup,
	"shipped":           StageShipped,
	"completed":         StageShipped,
	"refunded":          StageRefunded,
	"cancelled":         StageFailed,
	"failed":            StageFailed,
}

var (
	// ErrTerminalStage is returned by Next when the stage is the last one.
	ErrTerminalStage = errors.New("stage is terminal")
	// ErrUnknownStage is returned by Next when the stage is not in Stages.
	ErrUnknownStage = errors.New("unknown stage")
)

// FromWooStatus looks up the internal stage for a WooCommerce status.
// The second return is false when the status is not in the mapping table,
// so callers can surface unmapped statuses instead of losing them.
func FromWooStatus(status string) (Stage, bool) {
	s, ok := wooToStage[status]
	return s, ok
}

// Derive returns the internal stage for a WooCommerce status, defaulting
// to order_received for unmapped input. Unmapped statuses are logged so a
// new Woo status shows up in operator logs rather than vanishing.
func Derive(status string) Stage {
	s, ok := wooToStage[status]
	if !ok {
		log.Printf("⚠️ stage: unmapped woo status %q, defaulting to %s", status, StageOrderReceived)
		return StageOrderReceived
	}
	return s
}

// Next returns the successor of s in the fixed linear ordering.
// It distinguishes the two conditions that both used to read as "no next
// stage": ErrTerminalStage for the last stage, ErrUnknownStage for a value
// that is not part of the enumeration.
func Next(s Stage) (Stage, error) {
	for i, st := range Stages {
		if st == s {
			if i == len(Stages)-1 {
				return "", ErrTerminalStage
			}
			return Stages[i+1], nil
		}
	}
	return "", ErrUnknownStage
}

// Rank returns the position of s in the linear ordering, or -1 if unknown.
func Rank(s Stage) int {
	for i, st := range Stages {
		if st == s {
			return i
		}
	}
	return -1
}

// Description returns the shop-facing description of a stage.
func Description(s Stage) string {
	if d, ok := stageDescriptions[s]; ok {
		return d
	}
	return "Job is in progress."
}

var stageDescriptions = map[Stage]string{
	StageOrderReceived:    "Order received and queued for intake.",
	StageFilesReceived:    "Customer files received and checked in.",
	StageFileError:        "A customer file failed preflight and needs attention.",
	StageMissingFile:      "Waiting on one or more customer files.",
	StageInDesign:         "Design work in progress.",
	StageAwaitingApproval: "Proof sent, waiting on customer approval.",
	StageDesignComplete:   "Design approved and locked for print.",
	StagePrintProduction:  "Wrap is printing and laminating.",
	StageReadyForPickup:   "Wrap is finished and ready for pickup.",
	StageShipped:          "Order shipped to the customer.",
	StageRefunded:         "Order refunded.",
	StageFailed:           "Order failed or was cancelled.",
}
