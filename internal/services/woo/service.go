package woo

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/wrapcommand/wrapcommandai/internal/database"
	"github.com/wrapcommand/wrapcommandai/internal/models"
	"github.com/wrapcommand/wrapcommandai/internal/stage"
	"gorm.io/datatypes"
	"gorm.io/gorm/clause"
)

// StageChange describes one observed order stage transition
type StageChange struct {
	Order    *models.Order
	OldStage stage.Stage
	NewStage stage.Stage
	At       time.Time
}

// SyncService mirrors WooCommerce orders into the local database on a
// ticker. WooCommerce stays the system of record; this keeps the admin
// dashboard warm and feeds stage-change notifications.
type SyncService struct {
	client *Client
	db     *database.DB
	cfg    Config
	stop   chan struct{}

	// OnStageChange fires after an upsert that moved an order to a new
	// stage. Optional; used for websocket broadcasts and audit events.
	OnStageChange func(StageChange)
}

// Config holds WooCommerce connection settings
type Config struct {
	StoreURL       string
	ConsumerKey    string
	ConsumerSecret string
	SyncInterval   int // in minutes
}

// NewSyncService creates a new synchronization service
func NewSyncService(db *database.DB, cfg Config) *SyncService {
	return &SyncService{
		client: NewClient(cfg.StoreURL, cfg.ConsumerKey, cfg.ConsumerSecret),
		db:     db,
		cfg:    cfg,
		stop:   make(chan struct{}),
	}
}

// Start begins the background synchronization loop
func (s *SyncService) Start() {
	if s.cfg.StoreURL == "" {
		log.Println("Woo Sync disabled: WOO_STORE_URL not configured")
		return
	}

	go func() {
		log.Println("📡 Woo Sync Service started")

		// Initial sync delay
		time.Sleep(5 * time.Second)
		s.runSync()

		interval := time.Duration(s.cfg.SyncInterval) * time.Minute
		if s.cfg.SyncInterval <= 0 {
			interval = 15 * time.Minute
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.runSync()
			case <-s.stop:
				log.Println("🛑 Woo Sync Service stopped")
				return
			}
		}
	}()
}

// Stop halts the service
func (s *SyncService) Stop() {
	close(s.stop)
}

// runSync pulls recently modified orders and upserts them locally
func (s *SyncService) runSync() {
	log.Println("🔄 Woo: Syncing orders...")

	// Watermark: the newest updated_at we have locally
	var last models.Order
	var since time.Time
	if err := s.db.Where("woo_id IS NOT NULL").Order("updated_at DESC").First(&last).Error; err == nil {
		since = last.UpdatedAt
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	orders, err := s.client.ListOrders(ctx, since, 100)
	if err != nil {
		log.Printf("❌ Woo Sync Error: %v", err)
		return
	}

	count := 0
	for i := range orders {
		if _, _, err := s.ApplyWooOrder(&orders[i]); err != nil {
			log.Printf("Failed to save woo order %d: %v", orders[i].ID, err)
		} else {
			count++
		}
	}

	if count > 0 {
		log.Printf("✅ Woo: Updated %d orders", count)
	}
}

// ApplyWooOrder maps a Woo order onto the local mirror row and upserts it.
// The unique index on woo_id makes this idempotent: a replayed webhook or
// an overlapping sync tick lands on the same row. Returns the saved order
// and whether the derived stage changed.
func (s *SyncService) ApplyWooOrder(wo *WooOrder) (*models.Order, bool, error) {
	newStage := stage.Derive(wo.Status)

	// Previous stage, if we have the order already
	oldStage := stage.Stage("")
	var existing models.Order
	if err := s.db.Where("woo_id = ?", wo.ID).First(&existing).Error; err == nil {
		oldStage = stage.Derive(existing.WooStatus)
	}

	order := mapWooOrder(wo)
	if err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "woo_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"woo_status", "customer_name", "customer_email", "customer_phone",
			"product_name", "total", "metadata", "updated_at",
		}),
	}).Create(order).Error; err != nil {
		return nil, false, err
	}

	changed := oldStage != "" && oldStage != newStage
	if changed && s.OnStageChange != nil {
		s.OnStageChange(StageChange{
			Order:    order,
			OldStage: oldStage,
			NewStage: newStage,
			At:       time.Now(),
		})
	}
	return order, changed, nil
}

// mapWooOrder converts a Woo API order into the local mirror row
func mapWooOrder(wo *WooOrder) *models.Order {
	total, _ := strconv.ParseFloat(wo.Total, 64)

	productName := ""
	if len(wo.Items) > 0 {
		productName = wo.Items[0].Name
	}

	meta, _ := json.Marshal(wo.MetaData)

	orderNumber := wo.Number
	if orderNumber == "" {
		orderNumber = strconv.FormatInt(wo.ID, 10)
	}

	wooID := wo.ID
	return &models.Order{
		OrderNumber:   "WC-" + orderNumber,
		WooID:         &wooID,
		WooStatus:     wo.Status,
		CustomerName:  wo.Billing.FirstName + " " + wo.Billing.LastName,
		CustomerEmail: wo.Billing.Email,
		CustomerPhone: wo.Billing.Phone,
		ProductName:   productName,
		Total:         total,
		Metadata:      datatypes.JSON(meta),
	}
}
