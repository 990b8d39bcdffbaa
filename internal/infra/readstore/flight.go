package readstore

import (
	"context"

	"github.com/IneMentenPXL/FlightsApp/internal/domain/flight"
	"github.com/IneMentenPXL/FlightsApp/internal/infra"
	"github.com/IneMentenPXL/FlightsApp/internal/infra/db"
)

// The source dataset records actual_time as a float column; durations are
// truncated to whole minutes the way the legacy extraction did.
const (
	directFlightsQuery = `SELECT f.fid, c.name, f.flight_num, f.origin_city, f.dest_city, f.actual_time
		FROM flights f
		INNER JOIN carriers c ON f.carrier_id = c.cid
		WHERE f.actual_time IS NOT NULL
		  AND f.year = $1 AND f.month_id = $2 AND f.day_of_month = $3
		  AND f.origin_city = $4 AND f.dest_city = $5
		ORDER BY f.actual_time ASC
		LIMIT 99`

	twoHopFlightsQuery = `SELECT f1.fid, c1.name, f1.flight_num, f1.origin_city, f1.dest_city, f1.actual_time,
		       f2.fid, c2.name, f2.flight_num, f2.origin_city, f2.dest_city, f2.actual_time
		FROM flights f1
		INNER JOIN flights f2 ON f1.dest_city = f2.origin_city
		  AND f2.year = f1.year AND f2.month_id = f1.month_id AND f2.day_of_month = f1.day_of_month
		INNER JOIN carriers c1 ON c1.cid = f1.carrier_id
		INNER JOIN carriers c2 ON c2.cid = f2.carrier_id
		WHERE f1.actual_time IS NOT NULL AND f2.actual_time IS NOT NULL
		  AND f1.year = $1 AND f1.month_id = $2 AND f1.day_of_month = $3
		  AND f1.origin_city = $4 AND f2.dest_city = $5
		ORDER BY f1.actual_time + f2.actual_time ASC
		LIMIT 99`
)

type FlightReadStore struct {
	db db.DBTX
}

func NewFlightReadStore(dbtx db.DBTX) *FlightReadStore {
	return &FlightReadStore{db: dbtx}
}

// FindDirect returns direct flights for the city pair on the date, ordered by
// recorded actual flight time.
func (r *FlightReadStore) FindDirect(ctx context.Context, date flight.Date, originCity, destCity string) ([]flight.Itinerary, error) {
	rows, err := r.db.Query(ctx, directFlightsQuery,
		date.Year, date.Month, date.Day, originCity, destCity)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query direct flights", err)
	}
	defer rows.Close()

	itineraries := make([]flight.Itinerary, 0)
	for rows.Next() {
		var (
			leg        flight.Flight
			actualTime float64
		)
		if err := rows.Scan(&leg.ID, &leg.CarrierName, &leg.FlightNum,
			&leg.OriginCity, &leg.DestCity, &actualTime); err != nil {
			return nil, infra.WrapRepoErr("failed to scan direct flight row", err)
		}
		leg.Date = date
		leg.DurationMinutes = int(actualTime)

		itin, err := flight.NewItinerary(leg)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to build direct itinerary", err)
		}
		itineraries = append(itineraries, itin)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read direct flight rows", err)
	}
	return itineraries, nil
}

// FindTwoHop returns one-connection routings ordered by combined actual
// flight time. Nothing excludes a zero or negative layover; callers must not
// rely on layover sanity.
func (r *FlightReadStore) FindTwoHop(ctx context.Context, date flight.Date, originCity, destCity string) ([]flight.Itinerary, error) {
	rows, err := r.db.Query(ctx, twoHopFlightsQuery,
		date.Year, date.Month, date.Day, originCity, destCity)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query two-hop flights", err)
	}
	defer rows.Close()

	itineraries := make([]flight.Itinerary, 0)
	for rows.Next() {
		var (
			first, second         flight.Flight
			firstTime, secondTime float64
		)
		if err := rows.Scan(
			&first.ID, &first.CarrierName, &first.FlightNum,
			&first.OriginCity, &first.DestCity, &firstTime,
			&second.ID, &second.CarrierName, &second.FlightNum,
			&second.OriginCity, &second.DestCity, &secondTime,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan two-hop flight row", err)
		}
		first.Date = date
		first.DurationMinutes = int(firstTime)
		second.Date = date
		second.DurationMinutes = int(secondTime)

		itin, err := flight.NewItinerary(first, second)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to build two-hop itinerary", err)
		}
		itineraries = append(itineraries, itin)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read two-hop flight rows", err)
	}
	return itineraries, nil
}
