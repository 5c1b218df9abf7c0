package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.Factory { return s },
		func(f repository.Factory) repository.CatalogRepository { return f.Catalog() },
		func(f repository.Factory) repository.OrderRepository { return f.Orders() },
		func(f repository.Factory) repository.ContactRepository { return f.Contacts() },
		func(f repository.Factory) repository.NotificationRepository { return f.Notifications() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

type lifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Storage   *Storage
	Config    *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !p.Config.SeedCatalog {
				return nil
			}
			return p.Storage.Seed(ctx)
		},
		OnStop: func(ctx context.Context) error {
			p.Storage.Close()
			return nil
		},
	})
}
