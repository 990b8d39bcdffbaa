package components

import (
	"github.com/IneMentenPXL/FlightsApp/internal/handler"
	"github.com/IneMentenPXL/FlightsApp/internal/handler/api"
	"github.com/IneMentenPXL/FlightsApp/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewFlightHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
