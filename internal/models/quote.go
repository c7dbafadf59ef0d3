package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Quote is a priced wrap estimate for a specific vehicle.
// A quote converts into an Order at most once; the flag here is advisory,
// the real guard is the unique index on orders.quote_id.
type Quote struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	PublicID string `gorm:"uniqueIndex;not null" json:"public_id"`

	// Vehicle descriptor
	VehicleYear  int    `json:"vehicle_year"`
	VehicleMake  string `json:"vehicle_make"`
	VehicleModel string `json:"vehicle_model"`
	VehicleClass string `gorm:"index" json:"vehicle_class"`
	WrapType     string `json:"wrap_type"`

	// Product (used for design-product detection on conversion)
	ProductName string `json:"product_name"`

	// Customer
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`

	// Computed pricing figures
	Sqft         float64 `json:"sqft"`
	LaborHours   float64 `json:"labor_hours"`
	MaterialCost float64 `json:"material_cost"`
	LaborCost    float64 `json:"labor_cost"`
	Total        float64 `json:"total"`
	PriceLow     float64 `json:"price_low"`
	PriceHigh    float64 `json:"price_high"`

	// AI-generated marketing message (cosmetic; may be the fallback template)
	Message string `gorm:"type:text" json:"message"`

	IsPaid           bool `gorm:"default:false" json:"is_paid"`
	ConvertedToOrder bool `gorm:"default:false;index" json:"converted_to_order"`

	Metadata datatypes.JSON `json:"metadata"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Quote model
func (Quote) TableName() string {
	return "quotes"
}

// BeforeCreate assigns the public quote ID
func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	if q.PublicID == "" {
		q.PublicID = uuid.NewString()
	}
	return nil
}
