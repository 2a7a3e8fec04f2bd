package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/lobelia-inc/lobelia/internal/domain/plan"
	"github.com/lobelia-inc/lobelia/internal/domain/subscription"
	"github.com/lobelia-inc/lobelia/internal/domain/user"
)

type mockSubscriptionRepository struct {
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error)
	SaveFunc                func(ctx context.Context, sub *subscription.Subscription) error
	UpdateFunc              func(ctx context.Context, sub *subscription.Subscription) error
	GetByUserIDFunc         func(ctx context.Context, userID uuid.UUID) (*subscription.Subscription, error)
	GetByPlanIDFunc         func(ctx context.Context, planID uuid.UUID) (*subscription.Subscription, error)
	GetByUserIDAndPlanIDFunc func(ctx context.Context, userID, planID uuid.UUID) (*subscription.Subscription, error)
}

func (m *mockSubscriptionRepository) GetByID(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) Save(ctx context.Context, sub *subscription.Subscription) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*subscription.Subscription, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) GetByPlanID(ctx context.Context, planID uuid.UUID) (*subscription.Subscription, error) {
	if m.GetByPlanIDFunc != nil {
		return m.GetByPlanIDFunc(ctx, planID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) GetByUserIDAndPlanID(ctx context.Context, userID, planID uuid.UUID) (*subscription.Subscription, error) {
	if m.GetByUserIDAndPlanIDFunc != nil {
		return m.GetByUserIDAndPlanIDFunc(ctx, userID, planID)
	}
	return nil, nil
}

type mockUserAccountRepository struct {
	SaveFunc    func(ctx context.Context, account *user.Account) error
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*user.Account, error)
}

func (m *mockUserAccountRepository) Save(ctx context.Context, account *user.Account) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, account)
	}
	return nil
}

func (m *mockUserAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

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

type mockPaymentGateway struct {
	ProcessPaymentFunc func(ctx context.Context, paymentToken string, billingAddress user.Address) (PaymentResult, error)
}

func (m *mockPaymentGateway) ProcessPayment(ctx context.Context, paymentToken string, billingAddress user.Address) (PaymentResult, error) {
	if m.ProcessPaymentFunc != nil {
		return m.ProcessPaymentFunc(ctx, paymentToken, billingAddress)
	}
	return PaymentResult{Success: true, TransactionID: "tx-1"}, nil
}

type mockNotificationService struct {
	NotifyFunc func(ctx context.Context, message, recipient string) error

	messages   []string
	recipients []string
}

func (m *mockNotificationService) Notify(ctx context.Context, message, recipient string) error {
	m.messages = append(m.messages, message)
	m.recipients = append(m.recipients, recipient)
	if m.NotifyFunc != nil {
		return m.NotifyFunc(ctx, message, recipient)
	}
	return nil
}
