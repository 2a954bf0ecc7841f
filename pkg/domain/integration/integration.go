package integration

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PlatformShopify = "shopify"
	PlatformTikTok  = "tiktok"

	StatusConnected = "connected"
	StatusError     = "error"
)

// Integration is a user's connection to an e-commerce platform, used to sync
// product price and inventory.
type Integration struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	Platform     string     `json:"platform" gorm:"not null"`
	ShopDomain   string     `json:"shop_domain" gorm:"not null"`
	AccessToken  string     `json:"-" gorm:"not null"`
	Status       string     `json:"status" gorm:"not null;default:connected"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (i *Integration) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.Status == "" {
		i.Status = StatusConnected
	}
	return i.Validate()
}

func (i *Integration) BeforeUpdate(tx *gorm.DB) error {
	i.UpdatedAt = time.Now()
	return nil
}

func (i *Integration) Validate() error {
	if i.UserID == uuid.Nil {
		return fmt.Errorf("user id is required")
	}
	if i.Platform != PlatformShopify && i.Platform != PlatformTikTok {
		return fmt.Errorf("invalid platform: %s", i.Platform)
	}
	if i.ShopDomain == "" {
		return fmt.Errorf("shop domain is required")
	}
	if i.AccessToken == "" {
		return fmt.Errorf("access token is required")
	}
	return nil
}

func (i *Integration) TableName() string {
	return "integrations"
}
