package carrier

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Carrier is global reference data: the shipping companies shipments can be
// tracked against. Rows are seeded at startup and served through the cache.
type Carrier struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Code        string    `json:"code" gorm:"uniqueIndex;not null"`
	Name        string    `json:"name" gorm:"not null"`
	TrackingURL string    `json:"tracking_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *Carrier) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return c.Validate()
}

func (c *Carrier) Validate() error {
	if c.Code == "" {
		return fmt.Errorf("code is required")
	}
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

func (c *Carrier) TableName() string {
	return "carriers"
}
