package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lobelia-inc/lobelia/internal/domain/user"
	"github.com/lobelia-inc/lobelia/internal/infrastructure/persistence/mappers"
	"github.com/lobelia-inc/lobelia/internal/infrastructure/persistence/models"
	"github.com/lobelia-inc/lobelia/internal/shared/logger"
)

type UserAccountRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.UserAccountMapper
	logger logger.Interface
}

func NewUserAccountRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserAccountRepositoryImpl{
		db:     db,
		mapper: mappers.NewUserAccountMapper(),
		logger: logger,
	}
}

func (r *UserAccountRepositoryImpl) Save(ctx context.Context, account *user.Account) error {
	model, err := r.mapper.ToModel(account)
	if err != nil {
		r.logger.Errorw("failed to map user account entity to model", "error", err)
		return fmt.Errorf("failed to map user account entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create user account in database", "error", err)
		return fmt.Errorf("failed to create user account: %w", err)
	}

	r.logger.Infow("user account saved", "id", model.ID, "email", model.Email)
	return nil
}

func (r *UserAccountRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*user.Account, error) {
	var model models.UserAccountModel

	if err := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user account by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user account: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map user account model to entity", "id", id, "error", err)
		return nil, fmt.Errorf("failed to map user account: %w", err)
	}

	return entity, nil
}
