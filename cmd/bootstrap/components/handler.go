package components

import (
	"pcapi/internal/handler"
	"pcapi/internal/handler/api"
	"pcapi/internal/handler/middleware"

	"go.uber.org/fx"
)

// HandlerModule mounts every route on the *gin.Engine provided by the caller.
var HandlerModule = fx.Module("handler",
	fx.Provide(middleware.NewAuthMiddleware),
	apiHandlers,
	fx.Invoke(handler.NewRouter),
)

var apiHandlers = fx.Provide(
	api.NewAuthHandler,
	api.NewBookingHandler,
	api.NewReimbursementHandler,
	api.NewSubscriptionHandler,
)
