package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/lobelia-inc/lobelia/internal/shared/logger"
)

func newProvider() *MemoryProvider {
	// MinCost keeps hashing fast in tests.
	return NewMemoryProvider(bcrypt.MinCost, logger.NewLogger())
}

func TestMemoryProvider_CreateAndFind(t *testing.T) {
	p := newProvider()
	ctx := context.Background()

	id, err := p.CreateUser(ctx, "ana@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	found, err := p.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, found)
}

func TestMemoryProvider_FindByEmail_Unknown(t *testing.T) {
	p := newProvider()

	found, err := p.FindByEmail(context.Background(), "nobody@example.com")

	require.NoError(t, err)
	assert.Empty(t, found, "absence is the empty string, not an error")
}

func TestMemoryProvider_FindByEmail_CaseInsensitive(t *testing.T) {
	p := newProvider()
	ctx := context.Background()

	id, err := p.CreateUser(ctx, "ana@example.com", "s3cret-pass")
	require.NoError(t, err)

	found, err := p.FindByEmail(ctx, " Ana@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, id, found)
}

func TestMemoryProvider_CreateUser_Duplicate(t *testing.T) {
	p := newProvider()
	ctx := context.Background()

	_, err := p.CreateUser(ctx, "ana@example.com", "s3cret-pass")
	require.NoError(t, err)

	_, err = p.CreateUser(ctx, "ANA@example.com", "other-pass")
	assert.Error(t, err)
}

func TestMemoryProvider_VerifyPassword(t *testing.T) {
	p := newProvider()
	ctx := context.Background()

	_, err := p.CreateUser(ctx, "ana@example.com", "s3cret-pass")
	require.NoError(t, err)

	ok, err := p.VerifyPassword(ctx, "ana@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.VerifyPassword(ctx, "ana@example.com", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = p.VerifyPassword(ctx, "nobody@example.com", "whatever")
	require.NoError(t, err)
	assert.False(t, ok)
}
