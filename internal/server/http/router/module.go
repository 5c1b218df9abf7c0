package router

import (
	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/app"
	"github.com/polkiloo/storefront/internal/pkg/session"
	"github.com/polkiloo/storefront/internal/server/http/handlers"
	"github.com/polkiloo/storefront/internal/server/http/middleware"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Options(
	fx.Provide(
		func(f *app.StorefrontFacade) handlers.StorefrontFacade { return f },
		func(m *session.Manager) middleware.SessionIssuer { return m },
	),
	fx.Provide(Setup),
)
