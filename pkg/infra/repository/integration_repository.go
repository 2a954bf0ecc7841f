package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/parceltrack/parceltrack/pkg/domain"
	"github.com/parceltrack/parceltrack/pkg/domain/integration"
	"gorm.io/gorm"
)

type IntegrationRepository struct {
	db *gorm.DB
}

func NewIntegrationRepository(db *gorm.DB) integration.Repository {
	return &IntegrationRepository{
		db: db,
	}
}

func (r *IntegrationRepository) Create(ctx context.Context, entity *integration.Integration) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("integration: %w", err)
	}
	return nil
}

func (r *IntegrationRepository) Get(ctx context.Context, userID, id uuid.UUID) (*integration.Integration, error) {
	var entity integration.Integration
	err := r.db.WithContext(ctx).
		First(&entity, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("integration", id)
		}
		return nil, fmt.Errorf("integration: %w", err)
	}
	return &entity, nil
}

func (r *IntegrationRepository) List(ctx context.Context, userID uuid.UUID) ([]integration.Integration, error) {
	var integrations []integration.Integration
	err := r.db.WithContext(ctx).Model(&integration.Integration{}).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&integrations).Error
	if err != nil {
		return nil, fmt.Errorf("integration: %w", err)
	}
	return integrations, nil
}

func (r *IntegrationRepository) Update(ctx context.Context, entity *integration.Integration) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entity.ID, entity.UserID).
		Save(entity)
	if result.Error != nil {
		return fmt.Errorf("integration: %w", result.Error)
	}
	return nil
}

func (r *IntegrationRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	// Products go first so no orphan catalog rows survive the integration.
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("integration: %w", tx.Error)
	}

	if err := tx.Where("integration_id = ?", id).Delete(&integration.Product{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("integration: %w", err)
	}

	result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&integration.Integration{})
	if result.Error != nil {
		tx.Rollback()
		return fmt.Errorf("integration: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return domain.NewNotFoundError("integration", id)
	}

	return tx.Commit().Error
}
