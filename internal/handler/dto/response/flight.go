package response

import (
	"github.com/IneMentenPXL/FlightsApp/internal/domain/flight"
)

type FlightResponse struct {
	ID              int64  `json:"id"`
	Date            string `json:"date"`
	Carrier         string `json:"carrier"`
	FlightNum       string `json:"flight_num"`
	Origin          string `json:"origin"`
	Dest            string `json:"dest"`
	DurationMinutes int    `json:"duration_minutes"`
}

type ItineraryResponse struct {
	Legs                 []FlightResponse `json:"legs"`
	Direct               bool             `json:"direct"`
	TotalDurationMinutes int              `json:"total_duration_minutes"`
}

type SearchFlightsResponse struct {
	Itineraries []ItineraryResponse `json:"itineraries"`
}

type ReservationListResponse struct {
	Flights []FlightResponse `json:"flights"`
}

func NewFlightResponse(f flight.Flight) FlightResponse {
	return FlightResponse{
		ID:              f.ID,
		Date:            f.Date.String(),
		Carrier:         f.CarrierName,
		FlightNum:       f.FlightNum,
		Origin:          f.OriginCity,
		Dest:            f.DestCity,
		DurationMinutes: f.DurationMinutes,
	}
}

func NewItineraryResponse(itin flight.Itinerary) ItineraryResponse {
	legs := itin.Legs()
	out := ItineraryResponse{
		Legs:                 make([]FlightResponse, 0, len(legs)),
		Direct:               itin.IsDirect(),
		TotalDurationMinutes: itin.TotalDurationMinutes(),
	}
	for _, leg := range legs {
		out.Legs = append(out.Legs, NewFlightResponse(leg))
	}
	return out
}

func NewSearchFlightsResponse(itineraries []flight.Itinerary) SearchFlightsResponse {
	resp := SearchFlightsResponse{Itineraries: make([]ItineraryResponse, 0, len(itineraries))}
	for _, itin := range itineraries {
		resp.Itineraries = append(resp.Itineraries, NewItineraryResponse(itin))
	}
	return resp
}

func NewReservationListResponse(flights []flight.Flight) ReservationListResponse {
	resp := ReservationListResponse{Flights: make([]FlightResponse, 0, len(flights))}
	for _, f := range flights {
		resp.Flights = append(resp.Flights, NewFlightResponse(f))
	}
	return resp
}
