package stage

import (
	"testing"
	"time"

	"github.com/wrapcommand/wrapcommandai/internal/models"
)

func testOrder(status string) *models.Order {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 3, 8, 16, 30, 0, 0, time.UTC)
	return &models.Order{
		OrderNumber: "WC20240301-TEST",
		WooStatus:   status,
		CreatedAt:   created,
		UpdatedAt:   updated,
	}
}

func TestBuildCustomerTimeline_PrintProduction(t *testing.T) {
	o := testOrder("print-production")
	events := BuildCustomerTimeline(o)

	wantLabels := []string{"Order Received", "Files Received", "Preparing for Print", "In Production"}
	if len(events) != len(wantLabels) {
		t.Fatalf("got %d events, want %d", len(events), len(wantLabels))
	}
	for i, ev := range events {
		if ev.Label != wantLabels[i] {
			t.Errorf("event %d label = %q, want %q", i, ev.Label, wantLabels[i])
		}
	}

	// First milestone carries created_at; everything later shares updated_at
	if !events[0].Timestamp.Equal(o.CreatedAt) {
		t.Errorf("first event timestamp = %v, want created_at", events[0].Timestamp)
	}
	for _, ev := range events[1:] {
		if !ev.Timestamp.Equal(o.UpdatedAt) {
			t.Errorf("event %q timestamp = %v, want updated_at", ev.Label, ev.Timestamp)
		}
	}

	// Last event is the only active one
	for i, ev := range events {
		wantActive := i == len(events)-1
		if ev.Active != wantActive {
			t.Errorf("event %q active = %v, want %v", ev.Label, ev.Active, wantActive)
		}
		if ev.Completed == wantActive {
			t.Errorf("event %q completed = %v, want %v", ev.Label, ev.Completed, !wantActive)
		}
	}
}

func TestBuildCustomerTimeline_NewOrder(t *testing.T) {
	events := BuildCustomerTimeline(testOrder("pending"))
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Label != "Order Received" || !events[0].Active {
		t.Errorf("unexpected first event: %+v", events[0])
	}
}

func TestBuildCustomerTimeline_ShippedSkipsPickup(t *testing.T) {
	events := BuildCustomerTimeline(testOrder("shipped"))
	for _, ev := range events {
		if ev.Label == "Ready for Pickup" {
			t.Error("shipped order should not show the pickup milestone")
		}
	}
	last := events[len(events)-1]
	if last.Label != "Shipped" || !last.Active {
		t.Errorf("last event = %+v, want active Shipped", last)
	}
}

func TestBuildCustomerTimeline_NeverExposesInternalStages(t *testing.T) {
	for status := range map[string]bool{"in-design": true, "awaiting-approval": true, "shipped": true, "refunded": true} {
		for _, ev := range BuildCustomerTimeline(testOrder(status)) {
			for _, internal := range Stages {
				if ev.Label == string(internal) {
					t.Errorf("customer timeline for %q leaks internal stage %q", status, internal)
				}
			}
		}
	}
}

func TestBuildTimeline_Refunded(t *testing.T) {
	events := BuildTimeline(testOrder("refunded"))
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Label != string(StageOrderReceived) {
		t.Errorf("first event = %q", events[0].Label)
	}
	if events[1].Label != string(StageRefunded) || !events[1].Active {
		t.Errorf("terminal event = %+v", events[1])
	}
}

func TestBuildTimeline_SkipsErrorStagesWhenNotCurrent(t *testing.T) {
	events := BuildTimeline(testOrder("print-production"))
	for _, ev := range events {
		if ev.Label == string(StageFileError) || ev.Label == string(StageMissingFile) {
			t.Errorf("timeline includes error stage %q for a healthy order", ev.Label)
		}
	}
}

func TestBuildTimeline_CurrentErrorStageIncluded(t *testing.T) {
	events := BuildTimeline(testOrder("missing-file"))
	last := events[len(events)-1]
	if last.Label != string(StageMissingFile) || !last.Active {
		t.Errorf("last event = %+v, want active missing_file", last)
	}
}

func TestDetectMissing(t *testing.T) {
	cases := []struct {
		name  string
		order *models.Order
		want  int
	}{
		{"clean order", &models.Order{WooStatus: "processing", HasFiles: true}, 0},
		{"no files", &models.Order{WooStatus: "pending"}, 1},
		{"in design without proof", &models.Order{WooStatus: "in-design", HasFiles: true}, 1},
		{"everything stuck", &models.Order{WooStatus: "in-design", AwaitingReply: true}, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DetectMissing(tc.order)
			if len(got) != tc.want {
				t.Errorf("DetectMissing = %v, want %d warnings", got, tc.want)
			}
		})
	}
}
