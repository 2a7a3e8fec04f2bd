// Package user defines the user account aggregate and its value objects.
package user

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lobelia-inc/lobelia/internal/domain/shared"
	vo "github.com/lobelia-inc/lobelia/internal/domain/user/valueobjects"
)

// Account is a registered user linked to an external identity-provider
// user through iamUserID. The account itself never stores credentials.
type Account struct {
	shared.Entity
	iamUserID      string
	name           string
	email          vo.Email
	billingAddress Address
}

// NewAccount creates a user account referencing an external identity.
func NewAccount(iamUserID, name string, email vo.Email, billingAddress Address) (*Account, error) {
	if iamUserID == "" {
		return nil, fmt.Errorf("iam user ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("user name is required")
	}

	return &Account{
		Entity:         shared.NewEntity(),
		iamUserID:      iamUserID,
		name:           name,
		email:          email,
		billingAddress: billingAddress,
	}, nil
}

// ReconstructAccount rebuilds a user account from persistence.
func ReconstructAccount(id uuid.UUID, iamUserID, name string, email vo.Email,
	billingAddress Address, createdAt, updatedAt time.Time, isActive bool) (*Account, error) {

	if id == uuid.Nil {
		return nil, fmt.Errorf("account ID cannot be empty")
	}
	if iamUserID == "" {
		return nil, fmt.Errorf("iam user ID is required")
	}

	return &Account{
		Entity:         shared.ReconstructEntity(id, createdAt, updatedAt, isActive),
		iamUserID:      iamUserID,
		name:           name,
		email:          email,
		billingAddress: billingAddress,
	}, nil
}

// IAMUserID returns the external identity-provider user id.
func (a *Account) IAMUserID() string {
	return a.iamUserID
}

// Name returns the display name.
func (a *Account) Name() string {
	return a.name
}

// Email returns the account email.
func (a *Account) Email() vo.Email {
	return a.email
}

// BillingAddress returns the billing address.
func (a *Account) BillingAddress() Address {
	return a.billingAddress
}

// Equals reports identity equality between two accounts.
func (a *Account) Equals(other *Account) bool {
	if other == nil {
		return false
	}
	return a.ID() == other.ID()
}
