package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/parceltrack/parceltrack/pkg/domain/tracking"
	"gorm.io/gorm"
)

type TrackingEventRepository struct {
	db *gorm.DB
}

func NewTrackingEventRepository(db *gorm.DB) tracking.Repository {
	return &TrackingEventRepository{
		db: db,
	}
}

func (r *TrackingEventRepository) Create(ctx context.Context, entity *tracking.Event) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("tracking event: %w", err)
	}
	return nil
}

func (r *TrackingEventRepository) ListByShipment(ctx context.Context, shipmentID uuid.UUID) ([]tracking.Event, error) {
	var events []tracking.Event
	err := r.db.WithContext(ctx).Model(&tracking.Event{}).
		Where("shipment_id = ?", shipmentID).
		Order("occurred_at desc").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("tracking event: %w", err)
	}
	return events, nil
}
