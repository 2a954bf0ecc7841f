package tracking

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, event *Event) error
	// ListByShipment returns the timeline ordered by occurrence, newest first.
	ListByShipment(ctx context.Context, shipmentID uuid.UUID) ([]Event, error)
}
