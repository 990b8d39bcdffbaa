package components

import (
	"github.com/IneMentenPXL/FlightsApp/internal/infra/readstore"
	"github.com/IneMentenPXL/FlightsApp/internal/infra/uow"
	"github.com/IneMentenPXL/FlightsApp/internal/pkg/config"
	"github.com/IneMentenPXL/FlightsApp/internal/usecase"
	"github.com/IneMentenPXL/FlightsApp/internal/usecase/queries"
	"github.com/IneMentenPXL/FlightsApp/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewUnitOfWork,
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(usecase.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewFlightReadStore,
			fx.As(new(queries.FlightSearchStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationListStore)),
		),
	),
)

func NewUnitOfWork(pool *pgxpool.Pool, cfg config.Config) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool, cfg.Booking)
}
