package mailer

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/config"
)

// Module exposes the mailer implementation to fx graph.
var Module = fx.Provide(newMailer)

type mailerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newMailer(p mailerParams) (Mailer, error) {
	if p.Config.SMTP.Host == "" {
		p.Logger.Warn("SMTP host not configured, notifications are logged only")
		return NewLogMailer(p.Logger), nil
	}
	return NewSMTPMailer(p.Config.SMTP, p.Logger)
}
