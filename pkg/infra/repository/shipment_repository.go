package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/parceltrack/parceltrack/pkg/domain"
	"github.com/parceltrack/parceltrack/pkg/domain/shipment"
	"gorm.io/gorm"
)

type ShipmentRepository struct {
	db *gorm.DB
}

func NewShipmentRepository(db *gorm.DB) shipment.Repository {
	return &ShipmentRepository{
		db: db,
	}
}

func (r *ShipmentRepository) Create(ctx context.Context, entity *shipment.Shipment) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("shipment: %w", err)
	}
	return nil
}

func (r *ShipmentRepository) Get(ctx context.Context, userID, id uuid.UUID) (*shipment.Shipment, error) {
	var entity shipment.Shipment
	err := r.db.WithContext(ctx).
		First(&entity, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("shipment", id)
		}
		return nil, fmt.Errorf("shipment: %w", err)
	}
	return &entity, nil
}

func (r *ShipmentRepository) List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]shipment.Shipment, error) {
	var shipments []shipment.Shipment
	err := r.db.WithContext(ctx).Model(&shipment.Shipment{}).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&shipments).Error
	if err != nil {
		return nil, fmt.Errorf("shipment: %w", err)
	}
	return shipments, nil
}

func (r *ShipmentRepository) Update(ctx context.Context, entity *shipment.Shipment) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entity.ID, entity.UserID).
		Save(entity)
	if result.Error != nil {
		return fmt.Errorf("shipment: %w", result.Error)
	}
	return nil
}

func (r *ShipmentRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&shipment.Shipment{})
	if result.Error != nil {
		return fmt.Errorf("shipment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("shipment", id)
	}
	return nil
}
