package shipment

import (
	"context"

	"github.com/google/uuid"
)

// Repository is owner-scoped: every query filters by the owning user id so a
// tenant can never read or mutate another tenant's rows.
type Repository interface {
	Create(ctx context.Context, shipment *Shipment) error
	Get(ctx context.Context, userID, id uuid.UUID) (*Shipment, error)
	List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]Shipment, error)
	Update(ctx context.Context, shipment *Shipment) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
