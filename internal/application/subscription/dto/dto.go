package dto

import (
	"time"

	"github.com/lobelia-inc/lobelia/internal/domain/subscription"
)

// SubscriptionDTO is a plain snapshot of a subscription, safe to
// serialize directly to a response body.
type SubscriptionDTO struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	PlanID      string    `json:"plan_id"`
	Status      string    `json:"status"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	IsTrial     bool      `json:"is_trial"`
	IsExpired   bool      `json:"is_expired"`
	IsCancelled bool      `json:"is_cancelled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewSubscriptionDTO converts a subscription entity into its snapshot form.
func NewSubscriptionDTO(s *subscription.Subscription) *SubscriptionDTO {
	if s == nil {
		return nil
	}
	return &SubscriptionDTO{
		ID:          s.ID().String(),
		UserID:      s.UserID().String(),
		PlanID:      s.PlanID().String(),
		Status:      s.Status().String(),
		StartDate:   s.StartDate(),
		EndDate:     s.EndDate(),
		IsTrial:     s.IsTrial(),
		IsExpired:   s.IsExpired(),
		IsCancelled: s.IsCancelled(),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}
}
