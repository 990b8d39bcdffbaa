package queries

import (
	"context"

	"github.com/IneMentenPXL/FlightsApp/internal/domain/flight"
)

type ReservationListStore interface {
	ListForUser(ctx context.Context, userID int64) ([]flight.Flight, error)
}

type ReservationQueries interface {
	ListForUser(ctx context.Context, userID int64) ([]flight.Flight, error)
}

type reservationQueriesImpl struct {
	store ReservationListStore
}

func NewReservationQueries(store ReservationListStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) ListForUser(ctx context.Context, userID int64) ([]flight.Flight, error) {
	return q.store.ListForUser(ctx, userID)
}
