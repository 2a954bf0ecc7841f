package shipment

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending   = "pending"
	StatusInTransit = "in_transit"
	StatusDelivered = "delivered"
	StatusException = "exception"
)

// Shipment is a tracked parcel owned by one user. All repository access is
// scoped by UserID.
type Shipment struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	CarrierID      uuid.UUID `json:"carrier_id" gorm:"type:uuid;not null"`
	TrackingNumber string    `json:"tracking_number" gorm:"not null;index:idx_user_tracking_number"`
	Title          string    `json:"title"`
	Status         string    `json:"status" gorm:"not null;default:pending"`
	Origin         string    `json:"origin,omitempty"`
	Destination    string    `json:"destination,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (s *Shipment) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Status == "" {
		s.Status = StatusPending
	}
	return s.Validate()
}

func (s *Shipment) BeforeUpdate(tx *gorm.DB) error {
	s.UpdatedAt = time.Now()
	return s.Validate()
}

func (s *Shipment) Validate() error {
	if s.UserID == uuid.Nil {
		return fmt.Errorf("user id is required")
	}
	if s.CarrierID == uuid.Nil {
		return fmt.Errorf("carrier id is required")
	}
	if s.TrackingNumber == "" {
		return fmt.Errorf("tracking number is required")
	}
	if !ValidStatus(s.Status) {
		return fmt.Errorf("invalid shipment status: %s", s.Status)
	}
	return nil
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusInTransit, StatusDelivered, StatusException:
		return true
	}
	return false
}

func (s *Shipment) TableName() string {
	return "shipments"
}
