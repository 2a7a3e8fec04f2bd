package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/lobelia-inc/lobelia/internal/domain/plan"
)

type mockPlanRepository struct {
	GetByIDFunc   func(ctx context.Context, id uuid.UUID) (*plan.Plan, error)
	GetByNameFunc func(ctx context.Context, name string) (*plan.Plan, error)
	SaveFunc      func(ctx context.Context, p *plan.Plan) error
}

func (m *mockPlanRepository) GetByID(ctx context.Context, id uuid.UUID) (*plan.Plan, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPlanRepository) GetByName(ctx context.Context, name string) (*plan.Plan, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockPlanRepository) Save(ctx context.Context, p *plan.Plan) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}
