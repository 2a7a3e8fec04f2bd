package dto

import (
	"time"

	"github.com/lobelia-inc/lobelia/internal/domain/user"
)

// AddressDTO is the serializable form of a billing address.
type AddressDTO struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// UserAccountDTO is a plain snapshot of a user account. It never carries
// credentials.
type UserAccountDTO struct {
	ID             string     `json:"id"`
	IAMUserID      string     `json:"iam_user_id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	BillingAddress AddressDTO `json:"billing_address"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewAddressDTO converts an address value object into its snapshot form.
func NewAddressDTO(a user.Address) AddressDTO {
	return AddressDTO{
		Street:  a.Street(),
		City:    a.City(),
		State:   a.State(),
		ZipCode: a.ZipCode(),
		Country: a.Country(),
	}
}

// NewUserAccountDTO converts an account entity into its snapshot form.
func NewUserAccountDTO(a *user.Account) *UserAccountDTO {
	if a == nil {
		return nil
	}
	return &UserAccountDTO{
		ID:             a.ID().String(),
		IAMUserID:      a.IAMUserID(),
		Name:           a.Name(),
		Email:          a.Email().String(),
		BillingAddress: NewAddressDTO(a.BillingAddress()),
		IsActive:       a.IsActive(),
		CreatedAt:      a.CreatedAt(),
		UpdatedAt:      a.UpdatedAt(),
	}
}
