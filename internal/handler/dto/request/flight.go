package request

import (
	"github.com/IneMentenPXL/FlightsApp/internal/domain/flight"
)

type SearchFlightsRequest struct {
	Date   string `form:"date" binding:"required"`
	Origin string `form:"origin" binding:"required"`
	Dest   string `form:"dest" binding:"required"`
}

func (r *SearchFlightsRequest) ParsedDate() (flight.Date, error) {
	return flight.ParseDate(r.Date)
}
