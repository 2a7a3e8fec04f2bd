package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lobelia-inc/lobelia/internal/application/subscription/dto"
	"github.com/lobelia-inc/lobelia/internal/domain/subscription"
	"github.com/lobelia-inc/lobelia/internal/domain/user"
	apperrors "github.com/lobelia-inc/lobelia/internal/shared/errors"
	"github.com/lobelia-inc/lobelia/internal/shared/logger"
)

type RenewSubscriptionCommand struct {
	SubscriptionID uuid.UUID
	PaymentToken   string
}

// RenewSubscriptionUseCase renews a subscription. A missing subscription
// is a soft failure (notification plus empty result, no error) so a
// batch renewal job is not halted by one stale record. On a declined
// payment a regular subscription is downgraded to a grace trial; a trial
// subscription is cancelled outright.
type RenewSubscriptionUseCase struct {
	subscriptionRepo    subscription.Repository
	userRepo            user.Repository
	paymentGateway      PaymentGateway
	notificationService NotificationService
	logger              logger.Interface
}

func NewRenewSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	userRepo user.Repository,
	paymentGateway PaymentGateway,
	notificationService NotificationService,
	logger logger.Interface,
) *RenewSubscriptionUseCase {
	return &RenewSubscriptionUseCase{
		subscriptionRepo:    subscriptionRepo,
		userRepo:            userRepo,
		paymentGateway:      paymentGateway,
		notificationService: notificationService,
		logger:              logger,
	}
}

// Execute returns (nil, nil) when the subscription does not exist.
func (uc *RenewSubscriptionUseCase) Execute(ctx context.Context, cmd RenewSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	sub, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		uc.logger.Warnw("subscription not found for renewal", "subscription_id", cmd.SubscriptionID)
		uc.notify(ctx, "Subscription not found", "")
		return nil, nil
	}

	account, err := uc.userRepo.GetByID(ctx, sub.UserID())
	if err != nil {
		uc.logger.Errorw("failed to get user account", "error", err, "user_id", sub.UserID())
		return nil, fmt.Errorf("failed to get user account: %w", err)
	}
	if account == nil {
		// Broken reference between subscription and account: a hard
		// failure, not a soft-fail path.
		uc.logger.Errorw("user account missing for subscription",
			"subscription_id", cmd.SubscriptionID, "user_id", sub.UserID())
		return nil, apperrors.NewNotFoundError("user account not found for subscription")
	}

	payment, err := uc.paymentGateway.ProcessPayment(ctx, cmd.PaymentToken, account.BillingAddress())
	if err != nil {
		uc.logger.Errorw("payment processing failed", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, fmt.Errorf("payment processing failed: %w", err)
	}

	if payment.Success {
		if err := sub.Renew(); err != nil {
			if errors.Is(err, subscription.ErrRenewCancelled) {
				return nil, apperrors.NewConflictError(err.Error()).WithCause(err)
			}
			uc.logger.Errorw("failed to renew subscription", "error", err, "subscription_id", cmd.SubscriptionID)
			return nil, fmt.Errorf("failed to renew subscription: %w", err)
		}
	} else {
		uc.notify(ctx,
			fmt.Sprintf("Payment failed for subscription %s", cmd.SubscriptionID),
			account.Email().String())

		if sub.IsTrial() {
			sub.Cancel()
		} else if err := sub.ConvertToTrial(); err != nil {
			uc.logger.Errorw("failed to convert subscription to trial", "error", err, "subscription_id", cmd.SubscriptionID)
			return nil, fmt.Errorf("failed to convert subscription to trial: %w", err)
		}
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to update subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	uc.logger.Infow("subscription renewal processed",
		"subscription_id", sub.ID(),
		"status", sub.Status(),
		"is_trial", sub.IsTrial(),
		"end_date", sub.EndDate(),
		"payment_success", payment.Success,
	)

	return dto.NewSubscriptionDTO(sub), nil
}

func (uc *RenewSubscriptionUseCase) notify(ctx context.Context, message, recipient string) {
	if err := uc.notificationService.Notify(ctx, message, recipient); err != nil {
		uc.logger.Warnw("failed to send notification", "error", err, "recipient", recipient)
	}
}
