package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CampaignChannel defines the delivery channel for a campaign
type CampaignChannel string

const (
	CampaignChannelEmail CampaignChannel = "email"
	CampaignChannelSMS   CampaignChannel = "sms"
	CampaignChannelVideo CampaignChannel = "video"
)

// Campaign records a generated marketing campaign and its dispatch result
type Campaign struct {
	ID      uint            `gorm:"primaryKey" json:"id"`
	Channel CampaignChannel `gorm:"not null;index" json:"channel"`

	// Provider code the campaign was dispatched through ("resend",
	// "klaviyo", "twilio"), empty if generated only
	Provider string `gorm:"index" json:"provider"`

	Subject string `json:"subject"`
	Body    string `gorm:"type:text" json:"body"`

	Recipient string `json:"recipient"`

	// For video/ad campaigns: render results per variation
	Variations datatypes.JSON `json:"variations"`

	Sent   bool   `gorm:"default:false" json:"sent"`
	Status string `gorm:"default:draft" json:"status"` // draft | sent | failed | partial

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Campaign model
func (Campaign) TableName() string {
	return "campaigns"
}
