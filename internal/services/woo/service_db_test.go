package woo

import (
	"fmt"
	"io"
	"path/filepath"
	"testing"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"github.com/wrapcommand/wrapcommandai/internal/database"
	"github.com/wrapcommand/wrapcommandai/internal/models"
	"github.com/wrapcommand/wrapcommandai/internal/stage"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Distinct from the handlers package's test port so the packages can run
// in parallel.
const testDBPort = 5562

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	base := t.TempDir()
	pg := embeddedpostgres.NewDatabase(embeddedpostgres.DefaultConfig().
		Port(testDBPort).
		DataPath(filepath.Join(base, "data")).
		RuntimePath(filepath.Join(base, "runtime")).
		Username("postgres").
		Password("postgres").
		Database("woo_test").
		Logger(io.Discard))
	if err := pg.Start(); err != nil {
		t.Fatalf("failed to start embedded postgres: %v", err)
	}
	t.Cleanup(func() { _ = pg.Stop() })

	dsn := fmt.Sprintf(
		"host=localhost port=%d user=postgres password=postgres dbname=woo_test sslmode=disable",
		testDBPort,
	)
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	db := &database.DB{DB: gdb}
	if err := db.AutoMigrate(&models.Order{}); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}
	return db
}

// A replayed delivery must collapse onto the existing row, and the
// stage-change callback must fire exactly once, on the real transition.
func TestApplyWooOrder_ReplayCollapsesToOneRow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSyncService(db, Config{})

	var transitions []StageChange
	svc.OnStageChange = func(c StageChange) { transitions = append(transitions, c) }

	wo := &WooOrder{
		ID:     501,
		Number: "501",
		Status: "processing",
		Total:  "4200.00",
		Billing: WooBilling{
			FirstName: "Dana",
			LastName:  "Reyes",
			Email:     "dana@example.com",
		},
	}

	// First delivery: new row, no prior stage to transition from
	if _, changed, err := svc.ApplyWooOrder(wo); err != nil {
		t.Fatalf("first apply failed: %v", err)
	} else if changed {
		t.Error("first apply reported a stage change")
	}

	// Replay of the same payload: same row, same stage, no callback
	if _, changed, err := svc.ApplyWooOrder(wo); err != nil {
		t.Fatalf("replay failed: %v", err)
	} else if changed {
		t.Error("replay reported a stage change")
	}
	if len(transitions) != 0 {
		t.Fatalf("callback fired %d times before any transition", len(transitions))
	}

	// Real status move: callback fires once with both stages
	wo.Status = "in-design"
	saved, changed, err := svc.ApplyWooOrder(wo)
	if err != nil {
		t.Fatalf("status update failed: %v", err)
	}
	if !changed {
		t.Error("status update did not report a stage change")
	}
	if len(transitions) != 1 {
		t.Fatalf("callback fired %d times, want 1", len(transitions))
	}
	if transitions[0].OldStage != stage.StageFilesReceived || transitions[0].NewStage != stage.StageInDesign {
		t.Errorf("transition = %s -> %s, want files_received -> in_design",
			transitions[0].OldStage, transitions[0].NewStage)
	}

	var rows int64
	if err := db.Model(&models.Order{}).Where("woo_id = ?", wo.ID).Count(&rows).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if rows != 1 {
		t.Errorf("got %d rows for woo_id %d, want 1", rows, wo.ID)
	}

	var stored models.Order
	if err := db.Where("woo_id = ?", wo.ID).First(&stored).Error; err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if stored.WooStatus != "in-design" {
		t.Errorf("stored status = %q, want in-design", stored.WooStatus)
	}
	if stored.OrderNumber != saved.OrderNumber {
		t.Errorf("stored order number %q != applied %q", stored.OrderNumber, saved.OrderNumber)
	}
}
