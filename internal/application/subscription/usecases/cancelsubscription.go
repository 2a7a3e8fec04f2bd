package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lobelia-inc/lobelia/internal/application/subscription/dto"
	"github.com/lobelia-inc/lobelia/internal/domain/subscription"
	apperrors "github.com/lobelia-inc/lobelia/internal/shared/errors"
	"github.com/lobelia-inc/lobelia/internal/shared/logger"
)

type CancelSubscriptionCommand struct {
	SubscriptionID uuid.UUID
}

// CancelSubscriptionUseCase cancels a subscription. Cancelling an
// already-cancelled subscription is a no-op at the entity level, but the
// subscription must exist.
type CancelSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewCancelSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, cmd CancelSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	sub, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, apperrors.NewNotFoundError("subscription not found")
	}

	sub.Cancel()

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to update subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	uc.logger.Infow("subscription cancelled", "subscription_id", sub.ID())

	return dto.NewSubscriptionDTO(sub), nil
}
