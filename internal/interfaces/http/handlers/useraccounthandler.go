package handlers

import (
	"github.com/gin-gonic/gin"

	userdto "github.com/lobelia-inc/lobelia/internal/application/user/dto"
	"github.com/lobelia-inc/lobelia/internal/application/user/usecases"
	"github.com/lobelia-inc/lobelia/internal/shared/logger"
	"github.com/lobelia-inc/lobelia/internal/shared/utils"
)

type UserAccountHandler struct {
	createUserAccountUC *usecases.CreateUserAccountUseCase
	logger              logger.Interface
}

func NewUserAccountHandler(createUserAccountUC *usecases.CreateUserAccountUseCase) *UserAccountHandler {
	return &UserAccountHandler{
		createUserAccountUC: createUserAccountUC,
		logger:              logger.NewLogger(),
	}
}

type AddressRequest struct {
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	ZipCode string `json:"zip_code" binding:"required"`
	Country string `json:"country" binding:"required"`
}

type CreateUserAccountRequest struct {
	Name           string         `json:"name" binding:"required"`
	Email          string         `json:"email" binding:"required,email"`
	Password       string         `json:"password" binding:"required,min=8"`
	BillingAddress AddressRequest `json:"billing_address" binding:"required"`
}

func (h *UserAccountHandler) CreateUserAccount(c *gin.Context) {
	var req CreateUserAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user account", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateUserAccountCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		BillingAddress: userdto.AddressDTO{
			Street:  req.BillingAddress.Street,
			City:    req.BillingAddress.City,
			State:   req.BillingAddress.State,
			ZipCode: req.BillingAddress.ZipCode,
			Country: req.BillingAddress.Country,
		},
	}

	result, err := h.createUserAccountUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User account created successfully")
}
