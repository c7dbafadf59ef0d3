package stage

import (
	"errors"
	"testing"
)

func TestFromWooStatus_MappedStatuses(t *testing.T) {
	cases := []struct {
		status string
		want   Stage
	}{
		{"pending", StageOrderReceived},
		{"on-hold", StageOrderReceived},
		{"processing", StageFilesReceived},
		{"files-received", StageFilesReceived},
		{"file-error", StageFileError},
		{"missing-file", StageMissingFile},
		{"in-design", StageInDesign},
		{"awaiting-approval", StageAwaitingApproval},
		{"design-complete", StageDesignComplete},
		{"print-production", StagePrintProduction},
		{"ready-for-pickup", StageReadyForPickup},
		{"shipped", StageShipped},
		{"completed", StageShipped},
		{"refunded", StageRefunded},
		{"cancelled", StageFailed},
		{"failed", StageFailed},
	}

	for _, tc := range cases {
		got, ok := FromWooStatus(tc.status)
		if !ok {
			t.Errorf("FromWooStatus(%q): expected mapped status", tc.status)
			continue
		}
		if got != tc.want {
			t.Errorf("FromWooStatus(%q) = %s, want %s", tc.status, got, tc.want)
		}
	}
}

func TestFromWooStatus_Unmapped(t *testing.T) {
	for _, status := range []string{"", "wc-whatever", "PENDING", "draft"} {
		if _, ok := FromWooStatus(status); ok {
			t.Errorf("FromWooStatus(%q): expected unmapped", status)
		}
	}
}

func TestDerive_UnmappedDefaultsToOrderReceived(t *testing.T) {
	if got := Derive("some-new-plugin-status"); got != StageOrderReceived {
		t.Errorf("Derive default = %s, want %s", got, StageOrderReceived)
	}
}

// Walking Next from the first stage must visit every stage exactly once
// before hitting the terminal error.
func TestNext_WalksEveryStageOnce(t *testing.T) {
	seen := map[Stage]bool{}
	current := StageOrderReceived
	seen[current] = true

	for {
		next, err := Next(current)
		if err != nil {
			if !errors.Is(err, ErrTerminalStage) {
				t.Fatalf("Next(%s) unexpected error: %v", current, err)
			}
			break
		}
		if seen[next] {
			t.Fatalf("Next revisited stage %s", next)
		}
		seen[next] = true
		current = next
	}

	if len(seen) != len(Stages) {
		t.Errorf("walk visited %d stages, want %d", len(seen), len(Stages))
	}
	if current != StageFailed {
		t.Errorf("walk ended at %s, want %s", current, StageFailed)
	}
}

func TestNext_UnknownStage(t *testing.T) {
	if _, err := Next(Stage("bogus")); !errors.Is(err, ErrUnknownStage) {
		t.Errorf("Next(bogus) error = %v, want ErrUnknownStage", err)
	}
}

func TestCustomerLabel_TotalOverAllStages(t *testing.T) {
	for _, s := range Stages {
		if CustomerLabel(s) == "" {
			t.Errorf("CustomerLabel(%s) is empty", s)
		}
	}
	if got := CustomerLabel(Stage("bogus")); got != "In Progress" {
		t.Errorf("CustomerLabel fallback = %q, want %q", got, "In Progress")
	}
}

func TestCustomerLabel_NeverExposesInternalNames(t *testing.T) {
	for _, s := range Stages {
		if CustomerLabel(s) == string(s) {
			t.Errorf("CustomerLabel(%s) leaks the internal stage value", s)
		}
	}
}

func TestCustomerLabel_DesignStagesCollapse(t *testing.T) {
	design := []Stage{StageInDesign, StageAwaitingApproval, StageDesignComplete}
	for _, s := range design {
		if got := CustomerLabel(s); got != "Preparing for Print" {
			t.Errorf("CustomerLabel(%s) = %q, want %q", s, got, "Preparing for Print")
		}
	}
}

func TestCustomerDescription_Fallback(t *testing.T) {
	if got := CustomerDescription(Stage("bogus")); got != "Job is in progress." {
		t.Errorf("CustomerDescription fallback = %q", got)
	}
}
