package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/lobelia-inc/lobelia/internal/domain/user"
)

type UserAccountRepository struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*user.Account
}

func NewUserAccountRepository() *UserAccountRepository {
	return &UserAccountRepository{
		accounts: make(map[uuid.UUID]*user.Account),
	}
}

func (r *UserAccountRepository) Save(_ context.Context, account *user.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts[account.ID()] = account
	return nil
}

func (r *UserAccountRepository) GetByID(_ context.Context, id uuid.UUID) (*user.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.accounts[id], nil
}
