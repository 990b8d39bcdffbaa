package request

import (
	"github.com/IneMentenPXL/FlightsApp/internal/domain/flight"
)

// CreateReservationRequest books one itinerary: one leg for a direct flight,
// two legs in routing order for a connection.
type CreateReservationRequest struct {
	Date      string  `json:"date" binding:"required"`
	FlightIDs []int64 `json:"flight_ids" binding:"required,min=1,max=2"`
}

func (r *CreateReservationRequest) ParsedDate() (flight.Date, error) {
	return flight.ParseDate(r.Date)
}

type CancelReservationRequest struct {
	FlightIDs []int64 `json:"flight_ids" binding:"required,min=1"`
}
