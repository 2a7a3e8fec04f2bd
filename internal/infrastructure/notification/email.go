package notification

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/lobelia-inc/lobelia/internal/shared/config"
	"github.com/lobelia-inc/lobelia/internal/shared/logger"
)

// EmailNotifier delivers notifications over SMTP. Notifications without
// a recipient are logged instead of mailed.
type EmailNotifier struct {
	config *config.EmailConfig
	dialer *gomail.Dialer
	logger logger.Interface
}

func NewEmailNotifier(cfg *config.EmailConfig, logger logger.Interface) *EmailNotifier {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &EmailNotifier{
		config: cfg,
		dialer: dialer,
		logger: logger,
	}
}

func (n *EmailNotifier) Notify(_ context.Context, message, recipient string) error {
	if recipient == "" {
		n.logger.Infow("notification without recipient", "message", message)
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.config.FromAddress, n.config.FromName)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", "Subscription notification")
	m.SetBody("text/plain", message)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}

	n.logger.Infow("notification email sent", "recipient", recipient)
	return nil
}
