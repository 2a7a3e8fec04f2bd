package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/lobelia-inc/lobelia/internal/domain/user"
	uservo "github.com/lobelia-inc/lobelia/internal/domain/user/valueobjects"
	"github.com/lobelia-inc/lobelia/internal/infrastructure/persistence/models"
)

// addressDoc is the JSON document shape for the billing address column.
type addressDoc struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

type UserAccountMapper interface {
	ToEntity(model *models.UserAccountModel) (*user.Account, error)
	ToModel(entity *user.Account) (*models.UserAccountModel, error)
}

type userAccountMapper struct{}

func NewUserAccountMapper() UserAccountMapper {
	return &userAccountMapper{}
}

func (m *userAccountMapper) ToEntity(model *models.UserAccountModel) (*user.Account, error) {
	if model == nil {
		return nil, nil
	}

	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid user account ID %q: %w", model.ID, err)
	}

	email, err := uservo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to parse account email: %w", err)
	}

	var doc addressDoc
	if err := json.Unmarshal(model.BillingAddress, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal billing address: %w", err)
	}

	address, err := user.NewAddress(doc.Street, doc.City, doc.State, doc.ZipCode, doc.Country)
	if err != nil {
		return nil, fmt.Errorf("failed to build billing address: %w", err)
	}

	entity, err := user.ReconstructAccount(id, model.IAMUserID, model.Name, email,
		address, model.CreatedAt, model.UpdatedAt, model.IsActive)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user account entity: %w", err)
	}

	return entity, nil
}

func (m *userAccountMapper) ToModel(entity *user.Account) (*models.UserAccountModel, error) {
	if entity == nil {
		return nil, nil
	}

	address := entity.BillingAddress()
	data, err := json.Marshal(addressDoc{
		Street:  address.Street(),
		City:    address.City(),
		State:   address.State(),
		ZipCode: address.ZipCode(),
		Country: address.Country(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal billing address: %w", err)
	}

	return &models.UserAccountModel{
		ID:             entity.ID().String(),
		IAMUserID:      entity.IAMUserID(),
		Name:           entity.Name(),
		Email:          entity.Email().String(),
		BillingAddress: data,
		IsActive:       entity.IsActive(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}
