package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lobelia-inc/lobelia/internal/application/subscription/usecases"
	apperrors "github.com/lobelia-inc/lobelia/internal/shared/errors"
	"github.com/lobelia-inc/lobelia/internal/shared/logger"
	"github.com/lobelia-inc/lobelia/internal/shared/utils"
)

type SubscriptionHandler struct {
	subscribeToPlanUC    *usecases.SubscribeToPlanUseCase
	renewSubscriptionUC  *usecases.RenewSubscriptionUseCase
	cancelSubscriptionUC *usecases.CancelSubscriptionUseCase
	logger               logger.Interface
}

func NewSubscriptionHandler(
	subscribeToPlanUC *usecases.SubscribeToPlanUseCase,
	renewSubscriptionUC *usecases.RenewSubscriptionUseCase,
	cancelSubscriptionUC *usecases.CancelSubscriptionUseCase,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscribeToPlanUC:    subscribeToPlanUC,
		renewSubscriptionUC:  renewSubscriptionUC,
		cancelSubscriptionUC: cancelSubscriptionUC,
		logger:               logger.NewLogger(),
	}
}

type SubscribeToPlanRequest struct {
	UserID       string `json:"user_id" binding:"required,uuid"`
	PlanID       string `json:"plan_id" binding:"required,uuid"`
	PaymentToken string `json:"payment_token" binding:"required"`
}

type RenewSubscriptionRequest struct {
	PaymentToken string `json:"payment_token" binding:"required"`
}

func (h *SubscriptionHandler) SubscribeToPlan(c *gin.Context) {
	var req SubscribeToPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for subscribe to plan", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.SubscribeToPlanCommand{
		UserID:       uuid.MustParse(req.UserID),
		PlanID:       uuid.MustParse(req.PlanID),
		PaymentToken: req.PaymentToken,
	}

	result, err := h.subscribeToPlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Subscription created successfully")
}

func (h *SubscriptionHandler) RenewSubscription(c *gin.Context) {
	subscriptionID, err := parseSubscriptionID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RenewSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for renew subscription",
			"subscription_id", subscriptionID,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RenewSubscriptionCommand{
		SubscriptionID: subscriptionID,
		PaymentToken:   req.PaymentToken,
	}

	result, err := h.renewSubscriptionUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if result == nil {
		// The renewal was skipped because the subscription no longer
		// exists; the use case has already notified.
		utils.SuccessResponse(c, http.StatusAccepted, "Renewal skipped: subscription not found", nil)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription renewed successfully", result)
}

func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	subscriptionID, err := parseSubscriptionID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CancelSubscriptionCommand{
		SubscriptionID: subscriptionID,
	}

	result, err := h.cancelSubscriptionUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription cancelled successfully", result)
}

func parseSubscriptionID(c *gin.Context) (uuid.UUID, error) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.NewBadRequestError(fmt.Sprintf("invalid subscription ID: %s", raw))
	}
	return id, nil
}
