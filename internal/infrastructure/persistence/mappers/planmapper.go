// Package mappers converts between domain entities and persistence
// models. Mapping failures indicate corrupted rows and surface as errors
// rather than partial entities.
package mappers

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lobelia-inc/lobelia/internal/domain/plan"
	vo "github.com/lobelia-inc/lobelia/internal/domain/shared/valueobjects"
	"github.com/lobelia-inc/lobelia/internal/infrastructure/persistence/models"
)

type PlanMapper interface {
	ToEntity(model *models.PlanModel) (*plan.Plan, error)
	ToModel(entity *plan.Plan) (*models.PlanModel, error)
}

type planMapper struct{}

func NewPlanMapper() PlanMapper {
	return &planMapper{}
}

func (m *planMapper) ToEntity(model *models.PlanModel) (*plan.Plan, error) {
	if model == nil {
		return nil, nil
	}

	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid plan ID %q: %w", model.ID, err)
	}

	currency, err := vo.ParseCurrency(model.PriceCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to parse plan currency: %w", err)
	}

	price, err := vo.NewMonetaryValueFromDecimal(model.PriceAmount, currency)
	if err != nil {
		return nil, fmt.Errorf("failed to build plan price: %w", err)
	}

	entity, err := plan.ReconstructPlan(id, model.Name, price,
		model.CreatedAt, model.UpdatedAt, model.IsActive)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct plan entity: %w", err)
	}

	return entity, nil
}

func (m *planMapper) ToModel(entity *plan.Plan) (*models.PlanModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.PlanModel{
		ID:            entity.ID().String(),
		Name:          entity.Name(),
		PriceAmount:   entity.Price().Amount(),
		PriceCurrency: entity.Price().Currency().String(),
		IsActive:      entity.IsActive(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}, nil
}
