package dto

import (
	"time"

	"github.com/lobelia-inc/lobelia/internal/domain/plan"
)

// PriceDTO is the serializable form of a monetary value. Amount is the
// decimal string representation to avoid float rounding on the wire.
type PriceDTO struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// PlanDTO is a plain snapshot of a plan, safe to serialize directly.
type PlanDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     PriceDTO  `json:"price"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPlanDTO converts a plan entity into its snapshot form.
func NewPlanDTO(p *plan.Plan) *PlanDTO {
	if p == nil {
		return nil
	}
	return &PlanDTO{
		ID:   p.ID().String(),
		Name: p.Name(),
		Price: PriceDTO{
			Amount:   p.Price().Amount().String(),
			Currency: p.Price().Currency().String(),
		},
		IsActive:  p.IsActive(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}
