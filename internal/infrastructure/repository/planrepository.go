// Package repository provides the gorm-backed implementations of the
// domain persistence ports.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lobelia-inc/lobelia/internal/domain/plan"
	"github.com/lobelia-inc/lobelia/internal/infrastructure/persistence/mappers"
	"github.com/lobelia-inc/lobelia/internal/infrastructure/persistence/models"
	"github.com/lobelia-inc/lobelia/internal/shared/logger"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
	logger logger.Interface
}

func NewPlanRepository(db *gorm.DB, logger logger.Interface) plan.Repository {
	return &PlanRepositoryImpl{
		db:     db,
		mapper: mappers.NewPlanMapper(),
		logger: logger,
	}
}

func (r *PlanRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*plan.Plan, error) {
	var model models.PlanModel

	if err := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map plan model to entity", "id", id, "error", err)
		return nil, fmt.Errorf("failed to map plan: %w", err)
	}

	return entity, nil
}

func (r *PlanRepositoryImpl) GetByName(ctx context.Context, name string) (*plan.Plan, error) {
	var model models.PlanModel

	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by name", "name", name, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map plan model to entity", "name", name, "error", err)
		return nil, fmt.Errorf("failed to map plan: %w", err)
	}

	return entity, nil
}

func (r *PlanRepositoryImpl) Save(ctx context.Context, planEntity *plan.Plan) error {
	model, err := r.mapper.ToModel(planEntity)
	if err != nil {
		r.logger.Errorw("failed to map plan entity to model", "error", err)
		return fmt.Errorf("failed to map plan entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create plan in database", "error", err)
		return fmt.Errorf("failed to create plan: %w", err)
	}

	r.logger.Infow("plan saved", "id", model.ID, "name", model.Name)
	return nil
}
