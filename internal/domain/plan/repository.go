package plan

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence port for plans. Lookups return (nil, nil)
// when no plan matches.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Plan, error)
	GetByName(ctx context.Context, name string) (*Plan, error)
	Save(ctx context.Context, plan *Plan) error
}
