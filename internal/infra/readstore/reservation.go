package readstore

import (
	"context"

	"github.com/IneMentenPXL/FlightsApp/internal/domain/flight"
	"github.com/IneMentenPXL/FlightsApp/internal/infra"
	"github.com/IneMentenPXL/FlightsApp/internal/infra/db"
)

// COALESCE mirrors the legacy extraction, which read a NULL actual_time as 0.
const listReservedFlightsQuery = `SELECT f.fid, c.name, f.flight_num, f.origin_city, f.dest_city,
	       COALESCE(f.actual_time, 0), f.year, f.month_id, f.day_of_month
	FROM reservation r
	INNER JOIN flights f ON r.fid = f.fid
	INNER JOIN carriers c ON f.carrier_id = c.cid
	WHERE r.uid = $1`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

// ListForUser returns every flight the user holds a reservation on, each
// annotated with its calendar date.
func (r *ReservationReadStore) ListForUser(ctx context.Context, userID int64) ([]flight.Flight, error) {
	rows, err := r.db.Query(ctx, listReservedFlightsQuery, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reserved flights", err)
	}
	defer rows.Close()

	flights := make([]flight.Flight, 0)
	for rows.Next() {
		var (
			f          flight.Flight
			actualTime float64
		)
		if err := rows.Scan(&f.ID, &f.CarrierName, &f.FlightNum,
			&f.OriginCity, &f.DestCity, &actualTime,
			&f.Date.Year, &f.Date.Month, &f.Date.Day); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reserved flight row", err)
		}
		f.DurationMinutes = int(actualTime)
		flights = append(flights, f)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reserved flight rows", err)
	}
	return flights, nil
}
