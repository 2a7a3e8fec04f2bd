// Package valueobjects contains value objects owned by the user aggregate.
package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

// emailRegex is the regular expression for validating email addresses
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email represents a validated, normalized email address.
type Email struct {
	value string
}

// NewEmail creates a new Email value object with validation.
func NewEmail(value string) (Email, error) {
	normalized := strings.TrimSpace(strings.ToLower(value))

	if normalized == "" {
		return Email{}, fmt.Errorf("email cannot be empty")
	}
	if len(normalized) > 255 {
		return Email{}, fmt.Errorf("email cannot exceed 255 characters")
	}
	if !emailRegex.MatchString(normalized) {
		return Email{}, fmt.Errorf("invalid email format: %s", value)
	}

	return Email{value: normalized}, nil
}

// String returns the string representation of the email.
func (e Email) String() string {
	return e.value
}

// Equals checks if two email values are equal.
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

// Domain returns the domain part of the email.
func (e Email) Domain() string {
	parts := strings.SplitN(e.value, "@", 2)
	if len(parts) == 2 {
		return parts[1]
	}
	return ""
}
