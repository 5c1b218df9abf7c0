package config

import "go.uber.org/fx"

// Module provides *Config read from the env file, flags and environment.
var Module = fx.Provide(Load)
