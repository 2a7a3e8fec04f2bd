// Package notification provides notification service implementations.
package notification

import (
	"context"

	"github.com/lobelia-inc/lobelia/internal/shared/logger"
)

// ConsoleNotifier writes notifications to the application log.
type ConsoleNotifier struct {
	logger logger.Interface
}

func NewConsoleNotifier(logger logger.Interface) *ConsoleNotifier {
	return &ConsoleNotifier{logger: logger}
}

func (n *ConsoleNotifier) Notify(_ context.Context, message, recipient string) error {
	if recipient == "" {
		n.logger.Infow("notification", "message", message)
		return nil
	}

	n.logger.Infow("notification", "message", message, "recipient", recipient)
	return nil
}
