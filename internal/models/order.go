package models

import (
	"math/rand"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order mirrors a WooCommerce order into the local database.
// WooCommerce stays the system of record: the current stage is always
// derived from WooStatus, never stored.
type Order struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OrderNumber string `gorm:"uniqueIndex;not null" json:"order_number"`

	// External system of record. The unique index on WooID is what makes
	// duplicate webhook deliveries collapse into a single row.
	WooID     *int64 `gorm:"uniqueIndex" json:"woo_id,omitempty"`
	WooStatus string `gorm:"index" json:"woo_status"`

	// Originating quote, if this order came through conversion.
	// Unique so a quote can only ever convert once.
	QuoteID *uint `gorm:"uniqueIndex" json:"quote_id,omitempty"`

	// Customer information
	CustomerName  string `gorm:"index" json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`

	// Vehicle information
	VehicleYear  int    `json:"vehicle_year"`
	VehicleMake  string `json:"vehicle_make"`
	VehicleModel string `json:"vehicle_model"`
	WrapType     string `json:"wrap_type"`

	// Product
	ProductName     string `json:"product_name"`
	IsDesignProduct bool   `gorm:"default:false" json:"is_design_product"`

	// Files and design workflow
	Files         datatypes.JSON `json:"files"`
	HasFiles      bool           `gorm:"default:false" json:"has_files"`
	ProofSent     bool           `gorm:"default:false" json:"proof_sent"`
	AwaitingReply bool           `gorm:"default:false" json:"awaiting_reply"`

	// Payment
	PaymentMethod string  `json:"payment_method"`
	PaymentNotes  string  `gorm:"type:text" json:"payment_notes"`
	Total         float64 `json:"total"`

	Notes    string         `gorm:"type:text" json:"notes"`
	Metadata datatypes.JSON `json:"metadata"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Order model
func (Order) TableName() string {
	return "orders"
}

// BeforeCreate generates order number before creating
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.OrderNumber == "" {
		o.OrderNumber = generateNumber("WC")
	}
	return nil
}

// generateNumber creates a unique human-readable record number
func generateNumber(prefix string) string {
	return prefix + time.Now().Format("20060102") + "-" + randomString(4)
}

// randomString generates a random string of given length
func randomString(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
