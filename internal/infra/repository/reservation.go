package repository

import (
	"context"

	"github.com/IneMentenPXL/FlightsApp/internal/domain/flight"
	"github.com/IneMentenPXL/FlightsApp/internal/infra"
	"github.com/IneMentenPXL/FlightsApp/internal/infra/db"
	"github.com/IneMentenPXL/FlightsApp/internal/usecase/shared"
)

const (
	countFlightReservationsQuery = `SELECT COUNT(*) FROM reservation WHERE fid = $1`

	countUserReservationsOnDateQuery = `SELECT COUNT(r.uid)
		FROM reservation r
		INNER JOIN flights f ON f.fid = r.fid
		WHERE r.uid = $1 AND f.year = $2 AND f.month_id = $3 AND f.day_of_month = $4`

	insertReservationQuery = `INSERT INTO reservation (uid, fid) VALUES ($1, $2)`

	deleteReservationQuery = `DELETE FROM reservation WHERE uid = $1 AND fid = $2`
)

// ReservationLedger runs against whatever DBTX it is handed, so the same
// implementation serves transactional and pool-backed callers.
type ReservationLedger struct {
	db db.DBTX
}

func NewReservationLedger(dbtx db.DBTX) *ReservationLedger {
	return &ReservationLedger{db: dbtx}
}

func (r *ReservationLedger) CountForFlight(ctx context.Context, flightID int64) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, countFlightReservationsQuery, flightID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations for flight", err)
	}
	return count, nil
}

func (r *ReservationLedger) CountForUserOnDate(ctx context.Context, userID int64, date flight.Date) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, countUserReservationsOnDateQuery,
		userID, date.Year, date.Month, date.Day).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count user reservations on date", err)
	}
	return count, nil
}

func (r *ReservationLedger) Insert(ctx context.Context, userID, flightID int64) error {
	if _, err := r.db.Exec(ctx, insertReservationQuery, userID, flightID); err != nil {
		return infra.WrapRepoErr("failed to insert reservation", err)
	}
	return nil
}

func (r *ReservationLedger) Delete(ctx context.Context, userID, flightID int64) error {
	// Zero rows affected means the reservation was already gone; not an error.
	if _, err := r.db.Exec(ctx, deleteReservationQuery, userID, flightID); err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	return nil
}

var _ shared.ReservationLedger = (*ReservationLedger)(nil)
