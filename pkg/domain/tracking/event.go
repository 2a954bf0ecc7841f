package tracking

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event is one checkpoint on a shipment's timeline.
type Event struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID `json:"shipment_id" gorm:"type:uuid;not null;index"`
	Status     string    `json:"status" gorm:"not null"`
	Message    string    `json:"message"`
	Location   string    `json:"location,omitempty"`
	OccurredAt time.Time `json:"occurred_at" gorm:"not null;index"`
	CreatedAt  time.Time `json:"created_at"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now()
	}
	return e.Validate()
}

func (e *Event) Validate() error {
	if e.ShipmentID == uuid.Nil {
		return fmt.Errorf("shipment id is required")
	}
	if e.Status == "" {
		return fmt.Errorf("status is required")
	}
	return nil
}

func (e *Event) TableName() string {
	return "tracking_events"
}
