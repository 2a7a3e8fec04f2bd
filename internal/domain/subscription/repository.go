package subscription

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence port for subscriptions. Lookups return
// at most one match, or (nil, nil) when nothing matches; GetByUserID
// and GetByPlanID return the most recent subscription.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Subscription, error)
	Save(ctx context.Context, sub *Subscription) error
	Update(ctx context.Context, sub *Subscription) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Subscription, error)
	GetByPlanID(ctx context.Context, planID uuid.UUID) (*Subscription, error)
	GetByUserIDAndPlanID(ctx context.Context, userID, planID uuid.UUID) (*Subscription, error)
}
