package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lobelia-inc/lobelia/internal/domain/plan"
	vo "github.com/lobelia-inc/lobelia/internal/domain/shared/valueobjects"
	"github.com/lobelia-inc/lobelia/internal/domain/subscription"
	"github.com/lobelia-inc/lobelia/internal/domain/user"
	uservo "github.com/lobelia-inc/lobelia/internal/domain/user/valueobjects"
	apperrors "github.com/lobelia-inc/lobelia/internal/shared/errors"
	"github.com/lobelia-inc/lobelia/internal/shared/logger"
)

// --- helpers ---

func testAccount(t *testing.T) *user.Account {
	t.Helper()
	email, err := uservo.NewEmail("ana@example.com")
	require.NoError(t, err)
	addr, err := user.NewAddress("Rua A, 100", "Sao Paulo", "SP", "01000-000", "BR")
	require.NoError(t, err)
	account, err := user.NewAccount("iam-1", "Ana", email, addr)
	require.NoError(t, err)
	return account
}

func testPlan(t *testing.T) *plan.Plan {
	t.Helper()
	price, err := vo.NewMonetaryValue("29.90", "BRL")
	require.NoError(t, err)
	p, err := plan.NewPlan("Basic", price)
	require.NoError(t, err)
	return p
}

func accountRepoReturning(account *user.Account) *mockUserAccountRepository {
	return &mockUserAccountRepository{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*user.Account, error) {
			return account, nil
		},
	}
}

func planRepoReturning(p *plan.Plan) *mockPlanRepository {
	return &mockPlanRepository{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*plan.Plan, error) {
			return p, nil
		},
	}
}

func gatewayReturning(success bool) *mockPaymentGateway {
	return &mockPaymentGateway{
		ProcessPaymentFunc: func(ctx context.Context, token string, addr user.Address) (PaymentResult, error) {
			return PaymentResult{Success: success, TransactionID: "tx-1"}, nil
		},
	}
}

func subscribeCommand() SubscribeToPlanCommand {
	return SubscribeToPlanCommand{
		UserID:       uuid.New(),
		PlanID:       uuid.New(),
		PaymentToken: "tok-valid",
	}
}

// --- tests ---

func TestSubscribeToPlan_PaymentSucceeds(t *testing.T) {
	var saved *subscription.Subscription
	subRepo := &mockSubscriptionRepository{
		SaveFunc: func(ctx context.Context, sub *subscription.Subscription) error {
			saved = sub
			return nil
		},
	}
	notifier := &mockNotificationService{}
	uc := NewSubscribeToPlanUseCase(subRepo, accountRepoReturning(testAccount(t)),
		planRepoReturning(testPlan(t)), gatewayReturning(true), notifier, logger.NewLogger())

	result, err := uc.Execute(context.Background(), subscribeCommand())

	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, saved)
	assert.False(t, result.IsTrial, "successful payment yields a regular subscription")
	assert.Equal(t, "ACTIVE", result.Status)
	assert.Equal(t, subscription.RegularDurationDays*24,
		int(saved.EndDate().Sub(saved.StartDate()).Hours()))
	assert.Empty(t, notifier.messages)
}

func TestSubscribeToPlan_PaymentDeclinedFallsBackToTrial(t *testing.T) {
	var saved *subscription.Subscription
	subRepo := &mockSubscriptionRepository{
		SaveFunc: func(ctx context.Context, sub *subscription.Subscription) error {
			saved = sub
			return nil
		},
	}
	notifier := &mockNotificationService{}
	uc := NewSubscribeToPlanUseCase(subRepo, accountRepoReturning(testAccount(t)),
		planRepoReturning(testPlan(t)), gatewayReturning(false), notifier, logger.NewLogger())

	result, err := uc.Execute(context.Background(), subscribeCommand())

	require.NoError(t, err, "declined payment is not an error, it degrades to a trial")
	require.NotNil(t, result)
	assert.True(t, result.IsTrial)
	assert.Equal(t, "ACTIVE", result.Status)
	assert.Equal(t, subscription.TrialDurationDays*24,
		int(saved.EndDate().Sub(saved.StartDate()).Hours()))

	require.Len(t, notifier.messages, 1)
	assert.Equal(t, "Payment failed", notifier.messages[0])
	assert.Equal(t, "ana@example.com", notifier.recipients[0])
}

func TestSubscribeToPlan_UserNotFound(t *testing.T) {
	uc := NewSubscribeToPlanUseCase(&mockSubscriptionRepository{},
		&mockUserAccountRepository{}, planRepoReturning(testPlan(t)),
		gatewayReturning(true), &mockNotificationService{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), subscribeCommand())

	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestSubscribeToPlan_PlanNotFound(t *testing.T) {
	uc := NewSubscribeToPlanUseCase(&mockSubscriptionRepository{},
		accountRepoReturning(testAccount(t)), &mockPlanRepository{},
		gatewayReturning(true), &mockNotificationService{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), subscribeCommand())

	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestSubscribeToPlan_ActiveSubscriptionConflictBeforePayment(t *testing.T) {
	cmd := subscribeCommand()
	existing, err := subscription.NewRegular(cmd.UserID, uuid.New())
	require.NoError(t, err)

	paymentCalled := false
	gateway := &mockPaymentGateway{
		ProcessPaymentFunc: func(ctx context.Context, token string, addr user.Address) (PaymentResult, error) {
			paymentCalled = true
			return PaymentResult{Success: true}, nil
		},
	}
	subRepo := &mockSubscriptionRepository{
		GetByUserIDFunc: func(ctx context.Context, userID uuid.UUID) (*subscription.Subscription, error) {
			return existing, nil
		},
	}
	uc := NewSubscribeToPlanUseCase(subRepo, accountRepoReturning(testAccount(t)),
		planRepoReturning(testPlan(t)), gateway, &mockNotificationService{}, logger.NewLogger())

	_, err = uc.Execute(context.Background(), cmd)

	assert.True(t, apperrors.IsConflictError(err))
	assert.False(t, paymentCalled, "conflict must be detected before charging the user")
}

func TestSubscribeToPlan_CancelledSubscriptionAllowsResubscribe(t *testing.T) {
	cmd := subscribeCommand()
	cancelled, err := subscription.NewRegular(cmd.UserID, uuid.New())
	require.NoError(t, err)
	cancelled.Cancel()

	subRepo := &mockSubscriptionRepository{
		GetByUserIDFunc: func(ctx context.Context, userID uuid.UUID) (*subscription.Subscription, error) {
			return cancelled, nil
		},
	}
	uc := NewSubscribeToPlanUseCase(subRepo, accountRepoReturning(testAccount(t)),
		planRepoReturning(testPlan(t)), gatewayReturning(true), &mockNotificationService{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), cmd)

	require.NoError(t, err)
	assert.False(t, result.IsTrial)
}

func TestSubscribeToPlan_GatewayTransportFailure(t *testing.T) {
	gateway := &mockPaymentGateway{
		ProcessPaymentFunc: func(ctx context.Context, token string, addr user.Address) (PaymentResult, error) {
			return PaymentResult{}, errors.New("gateway unreachable")
		},
	}
	saveCalled := false
	subRepo := &mockSubscriptionRepository{
		SaveFunc: func(ctx context.Context, sub *subscription.Subscription) error {
			saveCalled = true
			return nil
		},
	}
	uc := NewSubscribeToPlanUseCase(subRepo, accountRepoReturning(testAccount(t)),
		planRepoReturning(testPlan(t)), gateway, &mockNotificationService{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), subscribeCommand())

	require.Error(t, err)
	assert.False(t, saveCalled, "transport failures must not create subscriptions")
}

func TestSubscribeToPlan_NotificationFailureDoesNotFailSubscribe(t *testing.T) {
	notifier := &mockNotificationService{
		NotifyFunc: func(ctx context.Context, message, recipient string) error {
			return errors.New("smtp down")
		},
	}
	uc := NewSubscribeToPlanUseCase(&mockSubscriptionRepository{},
		accountRepoReturning(testAccount(t)), planRepoReturning(testPlan(t)),
		gatewayReturning(false), notifier, logger.NewLogger())

	result, err := uc.Execute(context.Background(), subscribeCommand())

	require.NoError(t, err)
	assert.True(t, result.IsTrial)
}
