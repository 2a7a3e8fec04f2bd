// Package handlers contains the gin HTTP handlers for the public API.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/lobelia-inc/lobelia/internal/application/plan/usecases"
	"github.com/lobelia-inc/lobelia/internal/shared/logger"
	"github.com/lobelia-inc/lobelia/internal/shared/utils"
)

type PlanHandler struct {
	createPlanUC *usecases.CreatePlanUseCase
	logger       logger.Interface
}

func NewPlanHandler(createPlanUC *usecases.CreatePlanUseCase) *PlanHandler {
	return &PlanHandler{
		createPlanUC: createPlanUC,
		logger:       logger.NewLogger(),
	}
}

type CreatePlanRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Amount   string `json:"amount" binding:"required"`
	Currency string `json:"currency" binding:"required,len=3"`
}

func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreatePlanCommand{
		Name:     req.Name,
		Amount:   req.Amount,
		Currency: req.Currency,
	}

	result, err := h.createPlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Plan created successfully")
}
