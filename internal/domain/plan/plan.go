// Package plan defines the pricing plan aggregate.
package plan

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lobelia-inc/lobelia/internal/domain/shared"
	vo "github.com/lobelia-inc/lobelia/internal/domain/shared/valueobjects"
)

// Plan is a named priced offering users can subscribe to. Plan names are
// unique across all plans; uniqueness is enforced by the repository at
// creation time.
type Plan struct {
	shared.Entity
	name  string
	price vo.MonetaryValue
}

// NewPlan creates a plan with a fresh identity.
func NewPlan(name string, price vo.MonetaryValue) (*Plan, error) {
	if name == "" {
		return nil, ErrEmptyPlanName
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("plan name too long (max 100 characters)")
	}

	return &Plan{
		Entity: shared.NewEntity(),
		name:   name,
		price:  price,
	}, nil
}

// ReconstructPlan rebuilds a plan from persistence.
func ReconstructPlan(id uuid.UUID, name string, price vo.MonetaryValue,
	createdAt, updatedAt time.Time, isActive bool) (*Plan, error) {

	if id == uuid.Nil {
		return nil, fmt.Errorf("plan ID cannot be empty")
	}
	if name == "" {
		return nil, ErrEmptyPlanName
	}

	return &Plan{
		Entity: shared.ReconstructEntity(id, createdAt, updatedAt, isActive),
		name:   name,
		price:  price,
	}, nil
}

// Name returns the plan name.
func (p *Plan) Name() string {
	return p.name
}

// Price returns the plan price.
func (p *Plan) Price() vo.MonetaryValue {
	return p.price
}

// Equals reports identity equality between two plans.
func (p *Plan) Equals(other *Plan) bool {
	if other == nil {
		return false
	}
	return p.ID() == other.ID()
}
