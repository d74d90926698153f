package bootstrap

import (
	"pcapi/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module is the HTTP server graph. pcctl assembles its own from the same
// pieces without the handler layer.
var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
