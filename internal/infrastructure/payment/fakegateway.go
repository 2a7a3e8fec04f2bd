// Package payment provides payment gateway implementations.
package payment

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/lobelia-inc/lobelia/internal/application/subscription/usecases"
	"github.com/lobelia-inc/lobelia/internal/domain/user"
	"github.com/lobelia-inc/lobelia/internal/shared/logger"
)

const (
	// FailToken is a payment token that always declines, for exercising
	// the trial fallback path without a real provider.
	FailToken = "fail"

	statusApproved = "APPROVED"
	statusDeclined = "DECLINED"
)

// PaymentDetails records one processed charge attempt.
type PaymentDetails struct {
	TransactionID string
	Status        string
	Method        string
	Country       string
}

// FakeGateway simulates a payment provider. The configured outcome
// applies to every charge except the FailToken, which always declines.
type FakeGateway struct {
	succeed bool
	logger  logger.Interface

	mu       sync.RWMutex
	payments map[string]PaymentDetails
}

func NewFakeGateway(succeed bool, logger logger.Interface) *FakeGateway {
	return &FakeGateway{
		succeed:  succeed,
		logger:   logger,
		payments: make(map[string]PaymentDetails),
	}
}

func (g *FakeGateway) ProcessPayment(_ context.Context, paymentToken string, billingAddress user.Address) (usecases.PaymentResult, error) {
	approved := g.succeed && !strings.EqualFold(paymentToken, FailToken)

	status := statusApproved
	if !approved {
		status = statusDeclined
	}

	details := PaymentDetails{
		TransactionID: uuid.NewString(),
		Status:        status,
		Method:        "card",
		Country:       billingAddress.Country(),
	}

	g.mu.Lock()
	g.payments[details.TransactionID] = details
	g.mu.Unlock()

	g.logger.Infow("processed payment",
		"transaction_id", details.TransactionID,
		"status", details.Status,
		"country", details.Country,
	)

	return usecases.PaymentResult{
		Success:       approved,
		TransactionID: details.TransactionID,
	}, nil
}

// Payment returns the recorded details for a transaction, if any.
func (g *FakeGateway) Payment(transactionID string) (PaymentDetails, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	details, ok := g.payments[transactionID]
	return details, ok
}
