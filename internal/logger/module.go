package logger

import (
	"log/slog"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/polkiloo/storefront/internal/config"
)

// Module wires slog logger for dependency injection.
var Module = fx.Options(
	fx.Provide(newLogger),
	fx.WithLogger(func(l *slog.Logger) fxevent.Logger {
		return &fxevent.SlogLogger{Logger: l.With(slog.String("component", "fx"))}
	}),
)

func newLogger(cfg *config.Config) *slog.Logger {
	return New(cfg.LogLevel)
}
