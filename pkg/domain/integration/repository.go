package integration

import (
	"context"

	"github.com/google/uuid"
)

// Repository is owner-scoped on integrations; products are reached through
// their owning integration.
type Repository interface {
	Create(ctx context.Context, integration *Integration) error
	Get(ctx context.Context, userID, id uuid.UUID) (*Integration, error)
	List(ctx context.Context, userID uuid.UUID) ([]Integration, error)
	Update(ctx context.Context, integration *Integration) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type ProductRepository interface {
	Upsert(ctx context.Context, product *Product) error
	ListByIntegration(ctx context.Context, integrationID uuid.UUID) ([]Product, error)
	DeleteByIntegration(ctx context.Context, integrationID uuid.UUID) error
}
