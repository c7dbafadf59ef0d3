package models

import (
	"time"

	"gorm.io/gorm"
)

// ProjectStatus defines possible ApproveFlow project statuses
type ProjectStatus string

const (
	ProjectStatusOpen     ProjectStatus = "open"     // Awaiting first design upload
	ProjectStatusInReview ProjectStatus = "in_review" // Proof sent, waiting on customer
	ProjectStatusApproved ProjectStatus = "approved"  // Customer signed off
	ProjectStatusClosed   ProjectStatus = "closed"    // Archived
)

// Project is an ApproveFlow design-approval record, created when a
// design-product quote converts into an order.
type Project struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	ProjectNumber string        `gorm:"uniqueIndex;not null" json:"project_number"`
	OrderID       uint          `gorm:"uniqueIndex;not null" json:"order_id"`
	Status        ProjectStatus `gorm:"default:open;index" json:"status"`

	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	ProductName   string `json:"product_name"`

	Notes string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Order *Order `gorm:"foreignKey:OrderID" json:"order,omitempty"`
}

// TableName specifies the table name for Project model
func (Project) TableName() string {
	return "projects"
}

// BeforeCreate generates project number before creating
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ProjectNumber == "" {
		p.ProjectNumber = generateNumber("AF")
	}
	return nil
}
