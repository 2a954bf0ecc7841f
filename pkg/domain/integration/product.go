package integration

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a catalog row mirrored from the remote platform during a sync.
// (integration_id, external_id) is the natural key used for upserts.
type Product struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	IntegrationID uuid.UUID `json:"integration_id" gorm:"type:uuid;not null;uniqueIndex:idx_integration_external"`
	ExternalID    string    `json:"external_id" gorm:"not null;uniqueIndex:idx_integration_external"`
	Title         string    `json:"title"`
	PriceCents    int64     `json:"price_cents"`
	Currency      string    `json:"currency"`
	Inventory     int       `json:"inventory"`
	SyncedAt      time.Time `json:"synced_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return p.Validate()
}

func (p *Product) Validate() error {
	if p.IntegrationID == uuid.Nil {
		return fmt.Errorf("integration id is required")
	}
	if p.ExternalID == "" {
		return fmt.Errorf("external id is required")
	}
	return nil
}

func (p *Product) TableName() string {
	return "products"
}
