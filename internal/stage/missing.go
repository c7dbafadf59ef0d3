package stage

import "github.com/wrapcommand/wrapcommandai/internal/models"

// DetectMissing checks an order for the known stuck conditions and returns
// human-readable warnings. The checks are independent and not exhaustive:
// an order stuck for a reason not listed here produces no warning.
func DetectMissing(o *models.Order) []string {
	var warnings []string

	if !o.HasFiles {
		warnings = append(warnings, "No customer files received")
	}

	if Derive(o.WooStatus) == StageInDesign && !o.ProofSent {
		warnings = append(warnings, "Order is in design but no proof has been sent")
	}

	if o.AwaitingReply {
		warnings = append(warnings, "Waiting on a customer email response")
	}

	return warnings
}
