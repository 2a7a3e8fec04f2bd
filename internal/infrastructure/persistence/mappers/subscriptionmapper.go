package mappers

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lobelia-inc/lobelia/internal/domain/subscription"
	"github.com/lobelia-inc/lobelia/internal/infrastructure/persistence/models"
)

type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error)
}

type subscriptionMapper struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &subscriptionMapper{}
}

func (m *subscriptionMapper) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid subscription ID %q: %w", model.ID, err)
	}
	userID, err := uuid.Parse(model.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid subscription user ID %q: %w", model.UserID, err)
	}
	planID, err := uuid.Parse(model.PlanID)
	if err != nil {
		return nil, fmt.Errorf("invalid subscription plan ID %q: %w", model.PlanID, err)
	}

	status := subscription.Status(model.Status)
	if !subscription.ValidStatuses[status] {
		return nil, fmt.Errorf("invalid subscription status: %s", model.Status)
	}

	entity, err := subscription.Reconstruct(id, userID, planID, status,
		model.StartDate, model.EndDate, model.IsTrial,
		model.CreatedAt, model.UpdatedAt, model.IsActive)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription entity: %w", err)
	}

	return entity, nil
}

func (m *subscriptionMapper) ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.SubscriptionModel{
		ID:        entity.ID().String(),
		UserID:    entity.UserID().String(),
		PlanID:    entity.PlanID().String(),
		Status:    entity.Status().String(),
		StartDate: entity.StartDate(),
		EndDate:   entity.EndDate(),
		IsTrial:   entity.IsTrial(),
		IsActive:  entity.IsActive(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}
