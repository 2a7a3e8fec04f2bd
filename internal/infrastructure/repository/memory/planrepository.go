// Package memory provides in-memory implementations of the domain
// persistence ports, used in tests and when running without a database.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/lobelia-inc/lobelia/internal/domain/plan"
)

type PlanRepository struct {
	mu    sync.RWMutex
	plans map[uuid.UUID]*plan.Plan
}

func NewPlanRepository() *PlanRepository {
	return &PlanRepository{
		plans: make(map[uuid.UUID]*plan.Plan),
	}
}

func (r *PlanRepository) GetByID(_ context.Context, id uuid.UUID) (*plan.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.plans[id], nil
}

func (r *PlanRepository) GetByName(_ context.Context, name string) (*plan.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.plans {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, nil
}

func (r *PlanRepository) Save(_ context.Context, p *plan.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.plans[p.ID()] = p
	return nil
}
