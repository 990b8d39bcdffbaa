package response

import "github.com/IneMentenPXL/FlightsApp/internal/usecase/commands"

type BookingResponse struct {
	Outcome string `json:"outcome"`
}

func NewBookingResponse(outcome commands.BookingOutcome) BookingResponse {
	return BookingResponse{Outcome: string(outcome)}
}
