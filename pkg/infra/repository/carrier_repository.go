package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/parceltrack/parceltrack/pkg/domain"
	"github.com/parceltrack/parceltrack/pkg/domain/carrier"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CarrierRepository struct {
	db *gorm.DB
}

func NewCarrierRepository(db *gorm.DB) carrier.Repository {
	return &CarrierRepository{
		db: db,
	}
}

func (r *CarrierRepository) List(ctx context.Context) ([]carrier.Carrier, error) {
	var carriers []carrier.Carrier
	err := r.db.WithContext(ctx).Model(&carrier.Carrier{}).
		Order("name asc").
		Find(&carriers).Error
	if err != nil {
		return nil, fmt.Errorf("carrier: %w", err)
	}
	return carriers, nil
}

func (r *CarrierRepository) Get(ctx context.Context, id uuid.UUID) (*carrier.Carrier, error) {
	var entity carrier.Carrier
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("carrier", id)
		}
		return nil, fmt.Errorf("carrier: %w", err)
	}
	return &entity, nil
}

func (r *CarrierRepository) GetByCode(ctx context.Context, code string) (*carrier.Carrier, error) {
	var entity carrier.Carrier
	if err := r.db.WithContext(ctx).First(&entity, "code = ?", code).Error; err != nil {
		return nil, fmt.Errorf("carrier: %w", err)
	}
	return &entity, nil
}

func (r *CarrierRepository) Upsert(ctx context.Context, entity *carrier.Carrier) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "tracking_url", "updated_at"}),
		}).
		Create(entity).Error
	if err != nil {
		return fmt.Errorf("carrier: %w", err)
	}
	return nil
}
