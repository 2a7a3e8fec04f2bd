// Package identity provides identity provider implementations.
package identity

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lobelia-inc/lobelia/internal/shared/logger"
)

type identityRecord struct {
	id           string
	email        string
	passwordHash []byte
}

// MemoryProvider is an in-process identity provider. Credentials are
// bcrypt-hashed and kept in memory only.
type MemoryProvider struct {
	bcryptCost int
	logger     logger.Interface

	mu      sync.RWMutex
	byEmail map[string]identityRecord
}

func NewMemoryProvider(bcryptCost int, logger logger.Interface) *MemoryProvider {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}

	return &MemoryProvider{
		bcryptCost: bcryptCost,
		logger:     logger,
		byEmail:    make(map[string]identityRecord),
	}
}

func (p *MemoryProvider) FindByEmail(_ context.Context, email string) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	record, ok := p.byEmail[normalizeEmail(email)]
	if !ok {
		return "", nil
	}
	return record.id, nil
}

func (p *MemoryProvider) CreateUser(_ context.Context, email, password string) (string, error) {
	key := normalizeEmail(email)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.byEmail[key]; ok {
		return "", fmt.Errorf("identity already exists for %s", key)
	}

	record := identityRecord{
		id:           uuid.NewString(),
		email:        key,
		passwordHash: hash,
	}
	p.byEmail[key] = record

	p.logger.Debugw("identity created", "iam_user_id", record.id)
	return record.id, nil
}

// VerifyPassword checks a credential pair against the stored hash.
func (p *MemoryProvider) VerifyPassword(_ context.Context, email, password string) (bool, error) {
	p.mu.RLock()
	record, ok := p.byEmail[normalizeEmail(email)]
	p.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if err := bcrypt.CompareHashAndPassword(record.passwordHash, []byte(password)); err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			return false, nil
		}
		return false, fmt.Errorf("failed to verify password: %w", err)
	}
	return true, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
