package usecases

import (
	"context"
	"fmt"

	"github.com/lobelia-inc/lobelia/internal/application/user/dto"
	"github.com/lobelia-inc/lobelia/internal/domain/user"
	uservo "github.com/lobelia-inc/lobelia/internal/domain/user/valueobjects"
	apperrors "github.com/lobelia-inc/lobelia/internal/shared/errors"
	"github.com/lobelia-inc/lobelia/internal/shared/logger"
)

type CreateUserAccountCommand struct {
	Name           string
	Email          string
	Password       string
	BillingAddress dto.AddressDTO
}

// CreateUserAccountUseCase registers a user: the identity is created at
// the external provider first, then the local account referencing it is
// persisted. A local persistence failure can leave an orphaned external
// identity; there is no compensating transaction.
type CreateUserAccountUseCase struct {
	identityProvider IdentityProvider
	userRepo         user.Repository
	logger           logger.Interface
}

func NewCreateUserAccountUseCase(
	identityProvider IdentityProvider,
	userRepo user.Repository,
	logger logger.Interface,
) *CreateUserAccountUseCase {
	return &CreateUserAccountUseCase{
		identityProvider: identityProvider,
		userRepo:         userRepo,
		logger:           logger,
	}
}

func (uc *CreateUserAccountUseCase) Execute(ctx context.Context, cmd CreateUserAccountCommand) (*dto.UserAccountDTO, error) {
	email, err := uservo.NewEmail(cmd.Email)
	if err != nil {
		uc.logger.Warnw("invalid email for user account", "error", err)
		return nil, apperrors.NewValidationError("invalid email", err.Error())
	}

	address, err := user.NewAddress(
		cmd.BillingAddress.Street,
		cmd.BillingAddress.City,
		cmd.BillingAddress.State,
		cmd.BillingAddress.ZipCode,
		cmd.BillingAddress.Country,
	)
	if err != nil {
		uc.logger.Warnw("invalid billing address", "error", err)
		return nil, apperrors.NewValidationError("invalid billing address", err.Error())
	}

	existing, err := uc.identityProvider.FindByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to look up identity by email", "error", err)
		return nil, fmt.Errorf("failed to look up identity: %w", err)
	}
	if existing != "" {
		return nil, apperrors.NewConflictError("email is already registered")
	}

	iamUserID, err := uc.identityProvider.CreateUser(ctx, email.String(), cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to create identity", "error", err, "email", email.String())
		return nil, fmt.Errorf("failed to create identity: %w", err)
	}

	account, err := user.NewAccount(iamUserID, cmd.Name, email, address)
	if err != nil {
		uc.logger.Warnw("failed to create user account", "error", err)
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, account); err != nil {
		uc.logger.Errorw("failed to save user account", "error", err, "iam_user_id", iamUserID)
		return nil, fmt.Errorf("failed to save user account: %w", err)
	}

	uc.logger.Infow("user account created",
		"user_id", account.ID(),
		"iam_user_id", account.IAMUserID(),
		"email", account.Email().String(),
	)

	return dto.NewUserAccountDTO(account), nil
}
