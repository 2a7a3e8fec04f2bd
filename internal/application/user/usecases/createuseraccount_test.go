package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lobelia-inc/lobelia/internal/application/user/dto"
	"github.com/lobelia-inc/lobelia/internal/domain/user"
	apperrors "github.com/lobelia-inc/lobelia/internal/shared/errors"
	"github.com/lobelia-inc/lobelia/internal/shared/logger"
)

func validCommand() CreateUserAccountCommand {
	return CreateUserAccountCommand{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "s3cret-pass",
		BillingAddress: dto.AddressDTO{
			Street:  "Rua A, 100",
			City:    "Sao Paulo",
			State:   "SP",
			ZipCode: "01000-000",
			Country: "BR",
		},
	}
}

func newUseCase(provider *mockIdentityProvider, repo *mockUserAccountRepository) *CreateUserAccountUseCase {
	return NewCreateUserAccountUseCase(provider, repo, logger.NewLogger())
}

func TestCreateUserAccount_Success(t *testing.T) {
	var saved *user.Account
	provider := &mockIdentityProvider{
		CreateUserFunc: func(ctx context.Context, email, password string) (string, error) {
			assert.Equal(t, "ana@example.com", email)
			assert.Equal(t, "s3cret-pass", password)
			return "iam-42", nil
		},
	}
	repo := &mockUserAccountRepository{
		SaveFunc: func(ctx context.Context, account *user.Account) error {
			saved = account
			return nil
		},
	}
	uc := newUseCase(provider, repo)

	result, err := uc.Execute(context.Background(), validCommand())

	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, saved)
	assert.Equal(t, "iam-42", result.IAMUserID)
	assert.Equal(t, "ana@example.com", result.Email)
	assert.Equal(t, "Ana", result.Name)
	assert.Equal(t, "BR", result.BillingAddress.Country)
}

func TestCreateUserAccount_InvalidEmail(t *testing.T) {
	uc := newUseCase(&mockIdentityProvider{}, &mockUserAccountRepository{})

	cmd := validCommand()
	cmd.Email = "not-an-email"
	_, err := uc.Execute(context.Background(), cmd)

	assert.True(t, apperrors.IsValidationError(err))
}

func TestCreateUserAccount_IncompleteAddress(t *testing.T) {
	uc := newUseCase(&mockIdentityProvider{}, &mockUserAccountRepository{})

	cmd := validCommand()
	cmd.BillingAddress.City = ""
	_, err := uc.Execute(context.Background(), cmd)

	assert.True(t, apperrors.IsValidationError(err))
}

func TestCreateUserAccount_EmailAlreadyRegistered(t *testing.T) {
	createCalled := false
	provider := &mockIdentityProvider{
		FindByEmailFunc: func(ctx context.Context, email string) (string, error) {
			return "iam-existing", nil
		},
		CreateUserFunc: func(ctx context.Context, email, password string) (string, error) {
			createCalled = true
			return "", nil
		},
	}
	uc := newUseCase(provider, &mockUserAccountRepository{})

	_, err := uc.Execute(context.Background(), validCommand())

	assert.True(t, apperrors.IsConflictError(err))
	assert.False(t, createCalled, "no identity may be created for a taken email")
}

func TestCreateUserAccount_IdentityCreatedBeforePersistence(t *testing.T) {
	order := []string{}
	provider := &mockIdentityProvider{
		CreateUserFunc: func(ctx context.Context, email, password string) (string, error) {
			order = append(order, "identity")
			return "iam-42", nil
		},
	}
	repo := &mockUserAccountRepository{
		SaveFunc: func(ctx context.Context, account *user.Account) error {
			order = append(order, "save")
			return nil
		},
	}
	uc := newUseCase(provider, repo)

	_, err := uc.Execute(context.Background(), validCommand())

	require.NoError(t, err)
	assert.Equal(t, []string{"identity", "save"}, order)
}

func TestCreateUserAccount_PersistenceFailure(t *testing.T) {
	repo := &mockUserAccountRepository{
		SaveFunc: func(ctx context.Context, account *user.Account) error {
			return errors.New("connection lost")
		},
	}
	uc := newUseCase(&mockIdentityProvider{}, repo)

	_, err := uc.Execute(context.Background(), validCommand())

	require.Error(t, err)
	assert.False(t, apperrors.IsAppError(err))
}
