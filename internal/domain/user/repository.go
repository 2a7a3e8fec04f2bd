package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence port for user accounts. GetByID returns
// (nil, nil) when no account matches.
type Repository interface {
	Save(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)
}
