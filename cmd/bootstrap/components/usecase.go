package components

import (
	"github.com/IneMentenPXL/FlightsApp/internal/pkg/clock"
	"github.com/IneMentenPXL/FlightsApp/internal/usecase"
	"github.com/IneMentenPXL/FlightsApp/internal/usecase/commands"
	"github.com/IneMentenPXL/FlightsApp/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
		commands.NewBookingCommands,
		queries.NewCatalogQueries,
		queries.NewReservationQueries,
	),
)
