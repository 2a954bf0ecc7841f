package carrier

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	List(ctx context.Context) ([]Carrier, error)
	Get(ctx context.Context, id uuid.UUID) (*Carrier, error)
	GetByCode(ctx context.Context, code string) (*Carrier, error)
	Upsert(ctx context.Context, carrier *Carrier) error
}
