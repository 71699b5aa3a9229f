// Package email renders and delivers transactional mail.
package email

import (
	"context"
	"log/slog"
)

// Message is a rendered email ready for delivery.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// LogMailer logs messages instead of delivering them. It backs local
// development and CI, where EMAIL_ENABLED is off.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, msg Message) error {
	slog.Info("email delivery disabled, dropping message", "to", msg.To, "subject", msg.Subject)
	return nil
}
