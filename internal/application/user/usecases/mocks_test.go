package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/lobelia-inc/lobelia/internal/domain/user"
)

type mockIdentityProvider struct {
	FindByEmailFunc func(ctx context.Context, email string) (string, error)
	CreateUserFunc  func(ctx context.Context, email, password string) (string, error)
}

func (m *mockIdentityProvider) FindByEmail(ctx context.Context, email string) (string, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return "", nil
}

func (m *mockIdentityProvider) CreateUser(ctx context.Context, email, password string) (string, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, email, password)
	}
	return "iam-user-1", nil
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
