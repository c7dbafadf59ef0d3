package stage

// Customer-safe projection. The customer view is deliberately coarser than
// the internal stages: the three design sub-stages collapse into one label
// so a customer never sees "awaiting_approval" and reads it as something
// they are on the hook for.

const (
	customerFallbackLabel       = "In Progress"
	customerFallbackDescription = "Job is in progress."
)

var customerLabels = map[Stage]string{
	StageOrderReceived:    "Order Received",
	StageFilesReceived:    "Files Received",
	StageFileError:        "Action Needed",
	StageMissingFile:      "Action Needed",
	StageInDesign:         "Preparing for Print",
	StageAwaitingApproval: "Preparing for Print",
	StageDesignComplete:   "Preparing for Print",
	StagePrintProduction:  "In Production",
	StageReadyForPickup:   "Ready for Pickup",
	StageShipped:          "Shipped",
	StageRefunded:         "Refunded",
	StageFailed:           "Order Issue",
}

var customerDescriptions = map[Stage]string{
	StageOrderReceived:    "We received your order and our team is getting started.",
	StageFilesReceived:    "Your files are in and look good so far.",
	StageFileError:        "We hit a snag with one of your files. We'll reach out shortly.",
	StageMissingFile:      "We're missing a file from you. Check your email for details.",
	StageInDesign:         "Our design team is preparing your wrap for print.",
	StageAwaitingApproval: "Our design team is preparing your wrap for print.",
	StageDesignComplete:   "Our design team is preparing your wrap for print.",
	StagePrintProduction:  "Your wrap is on the printer right now.",
	StageReadyForPickup:   "Your wrap is done. Come grab it!",
	StageShipped:          "Your order is on the way.",
	StageRefunded:         "Your order has been refunded.",
	StageFailed:           "Something went wrong with your order. We'll be in touch.",
}

// CustomerLabel returns the customer-facing label for a stage. Total: any
// stage missing from the table gets the generic fallback, never an internal
// stage name.
func CustomerLabel(s Stage) string {
	if l, ok := customerLabels[s]; ok {
		return l
	}
	return customerFallbackLabel
}

// CustomerDescription returns the customer-facing description. When the
// next stage is known, it is appended as a "what happens next" hint.
func CustomerDescription(s Stage) string {
	d, ok := customerDescriptions[s]
	if !ok {
		return customerFallbackDescription
	}

	next, err := Next(s)
	if err != nil {
		return d
	}
	if hint, ok := customerNextHints[next]; ok {
		return d + " " + hint
	}
	return d
}

// customerNextHints are optional one-liners about the upcoming milestone.
// Sparse on purpose: only transitions worth telling the customer about.
var customerNextHints = map[Stage]string{
	StagePrintProduction: "Printing is up next.",
	StageReadyForPickup:  "Pickup notification is up next.",
	StageShipped:         "Shipping is up next.",
}
