package components

import (
	"tripstack/internal/handler"
	"tripstack/internal/handler/api"
	"tripstack/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewFlightHandler,
		api.NewHotelHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
