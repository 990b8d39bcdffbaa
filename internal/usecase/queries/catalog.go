package queries

import (
	"context"

	"github.com/IneMentenPXL/FlightsApp/internal/domain/flight"
)

// FlightSearchStore is the read-side port for the flight catalog. Both finders
// cap results at 99 rows and order ascending by actual flight time.
type FlightSearchStore interface {
	FindDirect(ctx context.Context, date flight.Date, originCity, destCity string) ([]flight.Itinerary, error)
	FindTwoHop(ctx context.Context, date flight.Date, originCity, destCity string) ([]flight.Itinerary, error)
}

type CatalogQueries interface {
	FindItineraries(ctx context.Context, date flight.Date, originCity, destCity string) ([]flight.Itinerary, error)
}

type catalogQueriesImpl struct {
	store FlightSearchStore
}

func NewCatalogQueries(store FlightSearchStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

// FindItineraries is read-only against current data: direct routings first,
// then one-connection routings.
func (q *catalogQueriesImpl) FindItineraries(ctx context.Context, date flight.Date, originCity, destCity string) ([]flight.Itinerary, error) {
	direct, err := q.store.FindDirect(ctx, date, originCity, destCity)
	if err != nil {
		return nil, err
	}

	twoHop, err := q.store.FindTwoHop(ctx, date, originCity, destCity)
	if err != nil {
		return nil, err
	}

	return append(direct, twoHop...), nil
}
