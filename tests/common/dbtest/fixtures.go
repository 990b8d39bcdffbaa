//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/IneMentenPXL/FlightsApp/internal/pkg/password"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Static catalog shared by every e2e suite. Flights and carriers never change
// during a test run; only customer and reservation rows get reset.
//
// Route map on 2024-05-01 (all times in minutes):
//
//	10  Seattle WA -> Boston MA   direct, 300
//	11  Seattle WA -> Boston MA   direct, 330
//	20  Seattle WA -> Chicago IL  first hop, 200
//	21  Chicago IL -> Boston MA   second hop, 150
//	30  Boston MA  -> Seattle WA  return leg, 320
//	50  Seattle WA -> Boston MA   NULL actual_time, invisible to search
//
// Flight 40 repeats route 10 on 2024-05-02.
const seedCatalogSQL = `
INSERT INTO carriers (cid, name) VALUES
	(1, 'Alaska Airlines Inc.'),
	(2, 'Delta Air Lines Inc.');

INSERT INTO flights (fid, carrier_id, flight_num, origin_city, dest_city, year, month_id, day_of_month, actual_time) VALUES
	(10, 1, '101', 'Seattle WA', 'Boston MA',  2024, 5, 1, 300),
	(11, 2, '201', 'Seattle WA', 'Boston MA',  2024, 5, 1, 330),
	(20, 1, '110', 'Seattle WA', 'Chicago IL', 2024, 5, 1, 200),
	(21, 2, '210', 'Chicago IL', 'Boston MA',  2024, 5, 1, 150),
	(30, 1, '102', 'Boston MA',  'Seattle WA', 2024, 5, 1, 320),
	(40, 1, '101', 'Seattle WA', 'Boston MA',  2024, 5, 2, 300),
	(50, 2, '299', 'Seattle WA', 'Boston MA',  2024, 5, 1, NULL);
`

func SeedReferenceData(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(), seedCatalogSQL)
	return err
}

// ResetDB truncates the mutable tables between subtests. The flight catalog
// stays in place.
func ResetDB(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(),
		"TRUNCATE reservation, customer RESTART IDENTITY CASCADE")
	return err
}

func CreateTestCustomer(t *testing.T, db DBLike, handle, plainPassword, name string) int64 {
	t.Helper()

	hash, err := password.Hash(plainPassword)
	require.NoError(t, err)

	var uid int64
	err = db.QueryRow(context.Background(),
		"INSERT INTO customer (handle, password, name) VALUES ($1, $2, $3) RETURNING uid",
		handle, hash, name).Scan(&uid)
	require.NoError(t, err)

	return uid
}

// SeedReservation inserts a reservation row directly, bypassing the booking
// protocol. Used to stage capacity conditions.
func SeedReservation(t *testing.T, db DBLike, uid, fid int64) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO reservation (uid, fid) VALUES ($1, $2)", uid, fid)
	require.NoError(t, err)
}

// CountReservations counts rows for one flight.
func CountReservations(t *testing.T, db DBLike, fid int64) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM reservation WHERE fid = $1", fid).Scan(&count)
	require.NoError(t, err)

	return count
}
