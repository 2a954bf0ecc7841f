package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/parceltrack/parceltrack/pkg/domain/integration"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) integration.ProductRepository {
	return &ProductRepository{
		db: db,
	}
}

func (r *ProductRepository) Upsert(ctx context.Context, entity *integration.Product) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "integration_id"}, {Name: "external_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "price_cents", "currency", "inventory", "synced_at"}),
		}).
		Create(entity).Error
	if err != nil {
		return fmt.Errorf("product: %w", err)
	}
	return nil
}

func (r *ProductRepository) ListByIntegration(ctx context.Context, integrationID uuid.UUID) ([]integration.Product, error) {
	var products []integration.Product
	err := r.db.WithContext(ctx).Model(&integration.Product{}).
		Where("integration_id = ?", integrationID).
		Order("title asc").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("product: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) DeleteByIntegration(ctx context.Context, integrationID uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("integration_id = ?", integrationID).Delete(&integration.Product{}).Error; err != nil {
		return fmt.Errorf("product: %w", err)
	}
	return nil
}
