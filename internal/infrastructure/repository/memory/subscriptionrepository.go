package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/lobelia-inc/lobelia/internal/domain/subscription"
)

type SubscriptionRepository struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]*subscription.Subscription
	// order keeps insertion order so "most recent" lookups are stable.
	order []uuid.UUID
}

func NewSubscriptionRepository() *SubscriptionRepository {
	return &SubscriptionRepository{
		subs: make(map[uuid.UUID]*subscription.Subscription),
	}
}

func (r *SubscriptionRepository) GetByID(_ context.Context, id uuid.UUID) (*subscription.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.subs[id], nil
}

func (r *SubscriptionRepository) Save(_ context.Context, sub *subscription.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.subs[sub.ID()]; !ok {
		r.order = append(r.order, sub.ID())
	}
	r.subs[sub.ID()] = sub
	return nil
}

func (r *SubscriptionRepository) Update(_ context.Context, sub *subscription.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.subs[sub.ID()] = sub
	return nil
}

// GetByUserID returns the user's most recently saved subscription.
func (r *SubscriptionRepository) GetByUserID(_ context.Context, userID uuid.UUID) (*subscription.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.order) - 1; i >= 0; i-- {
		sub := r.subs[r.order[i]]
		if sub != nil && sub.UserID() == userID {
			return sub, nil
		}
	}
	return nil, nil
}

// GetByPlanID returns the plan's most recently saved subscription.
func (r *SubscriptionRepository) GetByPlanID(_ context.Context, planID uuid.UUID) (*subscription.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.order) - 1; i >= 0; i-- {
		sub := r.subs[r.order[i]]
		if sub != nil && sub.PlanID() == planID {
			return sub, nil
		}
	}
	return nil, nil
}

func (r *SubscriptionRepository) GetByUserIDAndPlanID(_ context.Context, userID, planID uuid.UUID) (*subscription.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.order) - 1; i >= 0; i-- {
		sub := r.subs[r.order[i]]
		if sub != nil && sub.UserID() == userID && sub.PlanID() == planID {
			return sub, nil
		}
	}
	return nil, nil
}
