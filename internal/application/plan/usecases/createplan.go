package usecases

import (
	"context"
	"fmt"

	"github.com/lobelia-inc/lobelia/internal/application/plan/dto"
	"github.com/lobelia-inc/lobelia/internal/domain/plan"
	vo "github.com/lobelia-inc/lobelia/internal/domain/shared/valueobjects"
	apperrors "github.com/lobelia-inc/lobelia/internal/shared/errors"
	"github.com/lobelia-inc/lobelia/internal/shared/logger"
)

type CreatePlanCommand struct {
	Name     string
	Amount   string
	Currency string
}

// CreatePlanUseCase creates a new pricing plan. Plan names are unique;
// the name lookup happens before anything is persisted.
type CreatePlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewCreatePlanUseCase(planRepo plan.Repository, logger logger.Interface) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error) {
	if cmd.Name == "" {
		return nil, apperrors.NewValidationError("plan name is required")
	}

	price, err := vo.NewMonetaryValue(cmd.Amount, cmd.Currency)
	if err != nil {
		uc.logger.Warnw("invalid plan price", "error", err, "amount", cmd.Amount, "currency", cmd.Currency)
		return nil, apperrors.NewValidationError("invalid plan price", err.Error())
	}

	existing, err := uc.planRepo.GetByName(ctx, cmd.Name)
	if err != nil {
		uc.logger.Errorw("failed to look up plan by name", "error", err, "name", cmd.Name)
		return nil, fmt.Errorf("failed to look up plan by name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError(
			fmt.Sprintf("plan with name %q already exists", cmd.Name))
	}

	p, err := plan.NewPlan(cmd.Name, price)
	if err != nil {
		uc.logger.Warnw("failed to create plan", "error", err, "name", cmd.Name)
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.planRepo.Save(ctx, p); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError(
				fmt.Sprintf("plan with name %q already exists", cmd.Name))
		}
		uc.logger.Errorw("failed to save plan", "error", err, "name", cmd.Name)
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	uc.logger.Infow("plan created",
		"plan_id", p.ID(),
		"name", p.Name(),
		"price", p.Price().String(),
	)

	return dto.NewPlanDTO(p), nil
}
