package mailer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// ErrPermanent marks failures that will not succeed on retry.
var ErrPermanent = errors.New("permanent delivery failure")

// Mailer delivers queued notifications.
type Mailer interface {
	Send(ctx context.Context, n model.Notification) error
}

// LogMailer writes notifications to the log instead of sending them.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer builds a mailer used when no SMTP relay is configured.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(_ context.Context, n model.Notification) error {
	m.logger.Info("notification delivered to log",
		slog.Int64("id", n.ID),
		slog.String("kind", string(n.Kind)),
		slog.String("recipient", n.Recipient),
		slog.String("subject", n.Subject),
		slog.String("body", n.Body),
	)
	return nil
}
