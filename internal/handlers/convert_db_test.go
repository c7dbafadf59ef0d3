package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"github.com/stretchr/testify/assert"
	"github.com/wrapcommand/wrapcommandai/internal/config"
	"github.com/wrapcommand/wrapcommandai/internal/database"
	"github.com/wrapcommand/wrapcommandai/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Distinct from the woo package's test port so the packages can run in
// parallel.
const testDBPort = 5561

// setupTestDB starts a throwaway embedded Postgres and migrates the full
// schema into it. Each test gets its own instance and data dir.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	base := t.TempDir()
	pg := embeddedpostgres.NewDatabase(embeddedpostgres.DefaultConfig().
		Port(testDBPort).
		DataPath(filepath.Join(base, "data")).
		RuntimePath(filepath.Join(base, "runtime")).
		Username("postgres").
		Password("postgres").
		Database("wrapcommand_test").
		Logger(io.Discard))
	if err := pg.Start(); err != nil {
		t.Fatalf("failed to start embedded postgres: %v", err)
	}
	t.Cleanup(func() { _ = pg.Stop() })

	dsn := fmt.Sprintf(
		"host=localhost port=%d user=postgres password=postgres dbname=wrapcommand_test sslmode=disable",
		testDBPort,
	)
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	db := &database.DB{DB: gdb}
	if err := db.AutoMigrate(
		&models.UserAuth{},
		&models.Order{},
		&models.Quote{},
		&models.Project{},
		&models.Campaign{},
	); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}
	return db
}

func convertRequest(t *testing.T, router *Router, quoteID uint) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST",
		fmt.Sprintf("/api/quotes/%d/convert", quoteID),
		strings.NewReader(`{"payment_method":"card"}`))
	req.Header.Set("Authorization", "Bearer "+staffToken(t, "test-secret"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestConvertQuote_DesignProductCreatesProject(t *testing.T) {
	db := setupTestDB(t)
	router := NewRouter(db, &config.Config{JWTSecret: "test-secret"})

	quote := models.Quote{
		VehicleYear:  2023,
		VehicleMake:  "Ford",
		VehicleModel: "Bronco",
		ProductName:  "Custom Design Wrap",
		CustomerName: "Dana Reyes",
		Total:        6393,
	}
	assert.NoError(t, db.Create(&quote).Error)

	w := convertRequest(t, router, quote.ID)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp ConvertQuoteResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsDesignProduct)
	assert.NotZero(t, resp.ShopflowOrderID)
	assert.NotZero(t, resp.ApproveflowProjectID)
	assert.NotEmpty(t, resp.OrderNumber)

	var order models.Order
	assert.NoError(t, db.First(&order, resp.ShopflowOrderID).Error)
	assert.NotNil(t, order.QuoteID)
	assert.Equal(t, quote.ID, *order.QuoteID)
	assert.True(t, order.IsDesignProduct)
	assert.Equal(t, quote.Total, order.Total)

	var project models.Project
	assert.NoError(t, db.First(&project, resp.ApproveflowProjectID).Error)
	assert.Equal(t, order.ID, project.OrderID)
	assert.Equal(t, models.ProjectStatusOpen, project.Status)

	var updated models.Quote
	assert.NoError(t, db.First(&updated, quote.ID).Error)
	assert.True(t, updated.ConvertedToOrder)
	assert.True(t, updated.IsPaid)
}

func TestConvertQuote_NonDesignProductOrderOnly(t *testing.T) {
	db := setupTestDB(t)
	router := NewRouter(db, &config.Config{JWTSecret: "test-secret"})

	quote := models.Quote{
		VehicleYear:  2022,
		VehicleMake:  "Toyota",
		VehicleModel: "Camry",
		ProductName:  "Matte Black Wrap",
		Total:        4200,
	}
	assert.NoError(t, db.Create(&quote).Error)

	w := convertRequest(t, router, quote.ID)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp ConvertQuoteResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.IsDesignProduct)
	assert.NotZero(t, resp.ShopflowOrderID)
	assert.Zero(t, resp.ApproveflowProjectID)

	var projects int64
	assert.NoError(t, db.Model(&models.Project{}).Count(&projects).Error)
	assert.Zero(t, projects)
}

func TestConvertQuote_DoubleConversionConflicts(t *testing.T) {
	db := setupTestDB(t)
	router := NewRouter(db, &config.Config{JWTSecret: "test-secret"})

	quote := models.Quote{
		VehicleYear:  2023,
		VehicleMake:  "Ford",
		VehicleModel: "F-150",
		ProductName:  "Commercial Fleet Wrap",
		Total:        5100,
	}
	assert.NoError(t, db.Create(&quote).Error)

	first := convertRequest(t, router, quote.ID)
	assert.Equal(t, http.StatusOK, first.Code)

	second := convertRequest(t, router, quote.ID)
	assert.Equal(t, http.StatusConflict, second.Code)

	var orders int64
	assert.NoError(t, db.Model(&models.Order{}).Where("quote_id = ?", quote.ID).Count(&orders).Error)
	assert.Equal(t, int64(1), orders)
}

// Even when the converted flag has not been written yet, an existing order
// holding the quote_id makes the conversion land on the unique index and
// answer 409 instead of 500.
func TestConvertQuote_UniqueIndexClosesRace(t *testing.T) {
	db := setupTestDB(t)
	router := NewRouter(db, &config.Config{JWTSecret: "test-secret"})

	quote := models.Quote{
		VehicleYear:  2021,
		VehicleMake:  "Ram",
		VehicleModel: "1500",
		ProductName:  "Gloss Wrap",
		Total:        4800,
	}
	assert.NoError(t, db.Create(&quote).Error)

	quoteID := quote.ID
	rival := models.Order{QuoteID: &quoteID, WooStatus: "pending"}
	assert.NoError(t, db.Create(&rival).Error)

	w := convertRequest(t, router, quote.ID)
	assert.Equal(t, http.StatusConflict, w.Code)

	// The transaction rolled back: no project, flag untouched
	var projects int64
	assert.NoError(t, db.Model(&models.Project{}).Count(&projects).Error)
	assert.Zero(t, projects)

	var unchanged models.Quote
	assert.NoError(t, db.First(&unchanged, quote.ID).Error)
	assert.False(t, unchanged.ConvertedToOrder)
}
