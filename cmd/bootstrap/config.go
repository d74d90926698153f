package bootstrap

import (
	"pcapi/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule reads the environment once. Tests supply config.Config
// directly instead.
var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
)
