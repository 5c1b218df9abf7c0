package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/domain/model"
)

const smtpTimeout = 15 * time.Second

type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPMailer sends notifications as plain text mail.
type SMTPMailer struct {
	from   string
	client sender
	logger *slog.Logger
}

// NewSMTPMailer creates a client for the configured relay.
func NewSMTPMailer(cfg config.SMTPConfig, logger *slog.Logger) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTimeout(smtpTimeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	return &SMTPMailer{from: cfg.From, client: client, logger: logger}, nil
}

func (m *SMTPMailer) buildMessage(n model.Notification) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, fmt.Errorf("%w: sender %q: %v", ErrPermanent, m.from, err)
	}
	if err := msg.To(n.Recipient); err != nil {
		return nil, fmt.Errorf("%w: recipient %q: %v", ErrPermanent, n.Recipient, err)
	}
	msg.Subject(n.Subject)
	msg.SetBodyString(mail.TypeTextPlain, n.Body)
	return msg, nil
}

// Send delivers n to its recipient.
func (m *SMTPMailer) Send(ctx context.Context, n model.Notification) error {
	msg, err := m.buildMessage(n)
	if err != nil {
		return err
	}
	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		m.logger.Warn("smtp delivery failed", slog.Int64("id", n.ID), slog.String("error", err.Error()))
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
