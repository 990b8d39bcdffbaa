package flight

import "errors"

var (
	ErrEmptyItinerary     = errors.New("itinerary needs at least one flight")
	ErrTooManyLegs        = errors.New("itinerary supports at most one connection")
	ErrDisconnectedLegs   = errors.New("connecting flight must depart from the first leg's destination")
	ErrMismatchedLegDates = errors.New("all itinerary legs must fall on the same date")
)

// Itinerary is an ordered routing of one flight (direct) or two flights
// (one connection) from origin to destination on a single date.
type Itinerary struct {
	legs []Flight
}

func NewItinerary(legs ...Flight) (Itinerary, error) {
	switch len(legs) {
	case 0:
		return Itinerary{}, ErrEmptyItinerary
	case 1:
		return Itinerary{legs: []Flight{legs[0]}}, nil
	case 2:
		if legs[0].DestCity != legs[1].OriginCity {
			return Itinerary{}, ErrDisconnectedLegs
		}
		if legs[0].Date != legs[1].Date {
			return Itinerary{}, ErrMismatchedLegDates
		}
		return Itinerary{legs: []Flight{legs[0], legs[1]}}, nil
	default:
		return Itinerary{}, ErrTooManyLegs
	}
}

func (i Itinerary) Legs() []Flight {
	out := make([]Flight, len(i.legs))
	copy(out, i.legs)
	return out
}

func (i Itinerary) IsDirect() bool {
	return len(i.legs) == 1
}

func (i Itinerary) Origin() string {
	return i.legs[0].OriginCity
}

func (i Itinerary) Destination() string {
	return i.legs[len(i.legs)-1].DestCity
}

func (i Itinerary) Date() Date {
	return i.legs[0].Date
}

// TotalDurationMinutes sums the recorded actual times of the legs. Layover
// time is not modeled; the catalog does not exclude tight or even negative
// connections.
func (i Itinerary) TotalDurationMinutes() int {
	total := 0
	for _, leg := range i.legs {
		total += leg.DurationMinutes
	}
	return total
}

func (i Itinerary) FlightIDs() []int64 {
	ids := make([]int64, len(i.legs))
	for n, leg := range i.legs {
		ids[n] = leg.ID
	}
	return ids
}
