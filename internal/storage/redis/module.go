package redis

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// Module wires the redis client and the session cart store.
var Module = fx.Options(
	fx.Provide(newClient),
	fx.Provide(newCartStore),
	fx.Invoke(registerLifecycle),
)

type clientParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (*Client, error) {
	return New(p.Ctx, p.Config, p.Logger)
}

func newCartStore(client *Client, cfg *config.Config) repository.CartStore {
	return NewCartStore(client, cfg.SessionTTL)
}

func registerLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
}
