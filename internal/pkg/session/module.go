package session

import (
	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/config"
)

// Module provides the session token manager via fx.
var Module = fx.Options(
	fx.Provide(newManager),
)

type managerParams struct {
	fx.In

	Config *config.Config
}

func newManager(p managerParams) *Manager {
	return NewManager(p.Config.SessionSecret, Options{TTL: p.Config.SessionTTL})
}
