package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lobelia-inc/lobelia/internal/application/subscription/dto"
	"github.com/lobelia-inc/lobelia/internal/domain/plan"
	"github.com/lobelia-inc/lobelia/internal/domain/subscription"
	"github.com/lobelia-inc/lobelia/internal/domain/user"
	apperrors "github.com/lobelia-inc/lobelia/internal/shared/errors"
	"github.com/lobelia-inc/lobelia/internal/shared/logger"
)

type SubscribeToPlanCommand struct {
	UserID       uuid.UUID
	PlanID       uuid.UUID
	PaymentToken string
}

// SubscribeToPlanUseCase subscribes a user to a plan. Existence and
// conflict checks run before any payment attempt. A declined payment
// degrades to a trial subscription instead of rejecting the request.
type SubscribeToPlanUseCase struct {
	subscriptionRepo    subscription.Repository
	userRepo            user.Repository
	planRepo            plan.Repository
	paymentGateway      PaymentGateway
	notificationService NotificationService
	logger              logger.Interface
}

func NewSubscribeToPlanUseCase(
	subscriptionRepo subscription.Repository,
	userRepo user.Repository,
	planRepo plan.Repository,
	paymentGateway PaymentGateway,
	notificationService NotificationService,
	logger logger.Interface,
) *SubscribeToPlanUseCase {
	return &SubscribeToPlanUseCase{
		subscriptionRepo:    subscriptionRepo,
		userRepo:            userRepo,
		planRepo:            planRepo,
		paymentGateway:      paymentGateway,
		notificationService: notificationService,
		logger:              logger,
	}
}

func (uc *SubscribeToPlanUseCase) Execute(ctx context.Context, cmd SubscribeToPlanCommand) (*dto.SubscriptionDTO, error) {
	account, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user account", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to get user account: %w", err)
	}
	if account == nil {
		return nil, apperrors.NewNotFoundError("user not found")
	}

	p, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", cmd.PlanID)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if p == nil {
		return nil, apperrors.NewNotFoundError("plan not found")
	}

	current, err := uc.subscriptionRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get current subscription", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to get current subscription: %w", err)
	}
	if current != nil && !current.IsCancelled() {
		return nil, apperrors.NewConflictError("user already has an active subscription")
	}

	payment, err := uc.paymentGateway.ProcessPayment(ctx, cmd.PaymentToken, account.BillingAddress())
	if err != nil {
		uc.logger.Errorw("payment processing failed", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("payment processing failed: %w", err)
	}

	var sub *subscription.Subscription
	if payment.Success {
		sub, err = subscription.NewRegular(cmd.UserID, cmd.PlanID)
	} else {
		uc.notify(ctx, "Payment failed", account.Email().String())
		sub, err = subscription.NewTrial(cmd.UserID, cmd.PlanID)
	}
	if err != nil {
		uc.logger.Errorw("failed to create subscription", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := uc.subscriptionRepo.Save(ctx, sub); err != nil {
		uc.logger.Errorw("failed to save subscription", "error", err, "subscription_id", sub.ID())
		return nil, fmt.Errorf("failed to save subscription: %w", err)
	}

	uc.logger.Infow("subscription created",
		"subscription_id", sub.ID(),
		"user_id", sub.UserID(),
		"plan_id", sub.PlanID(),
		"is_trial", sub.IsTrial(),
		"payment_success", payment.Success,
	)

	return dto.NewSubscriptionDTO(sub), nil
}

func (uc *SubscribeToPlanUseCase) notify(ctx context.Context, message, recipient string) {
	if err := uc.notificationService.Notify(ctx, message, recipient); err != nil {
		uc.logger.Warnw("failed to send notification", "error", err, "recipient", recipient)
	}
}
