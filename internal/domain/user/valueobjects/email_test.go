package valueobjects

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail_ValidInput(t *testing.T) {
	email, err := NewEmail("ana@example.com")

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", email.String())
}

func TestNewEmail_Normalizes(t *testing.T) {
	email, err := NewEmail("  Ana@Example.COM ")

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", email.String())
}

func TestNewEmail_Invalid(t *testing.T) {
	cases := []string{
		"",
		"not-an-email",
		"missing@domain",
		"@example.com",
		strings.Repeat("a", 250) + "@example.com",
	}

	for _, input := range cases {
		_, err := NewEmail(input)
		assert.Error(t, err, "input %q should be rejected", input)
	}
}

func TestEmail_Equals(t *testing.T) {
	a, err := NewEmail("ana@example.com")
	require.NoError(t, err)
	b, err := NewEmail("ANA@example.com")
	require.NoError(t, err)
	c, err := NewEmail("bob@example.com")
	require.NoError(t, err)

	assert.True(t, a.Equals(b), "normalization makes case irrelevant")
	assert.False(t, a.Equals(c))
}

func TestEmail_Domain(t *testing.T) {
	email, err := NewEmail("ana@example.com")
	require.NoError(t, err)

	assert.Equal(t, "example.com", email.Domain())
}
