package usecases

import (
	"context"

	"github.com/lobelia-inc/lobelia/internal/domain/user"
)

// PaymentResult is the outcome of a payment attempt. Success false is a
// declined payment, not a transport failure.
type PaymentResult struct {
	Success       bool
	TransactionID string
}

// PaymentGateway is the port to the payment provider.
type PaymentGateway interface {
	ProcessPayment(ctx context.Context, paymentToken string, billingAddress user.Address) (PaymentResult, error)
}

// NotificationService delivers fire-and-forget messages to users. An
// empty recipient means the notification has no addressee. Failures are
// logged by callers but never fail the calling use case.
type NotificationService interface {
	Notify(ctx context.Context, message, recipient string) error
}
