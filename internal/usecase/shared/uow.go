package shared

import (
	"context"

	"github.com/IneMentenPXL/FlightsApp/internal/domain/flight"
	"github.com/IneMentenPXL/FlightsApp/internal/infra/db"
)

// UnitOfWork scopes store work to a transaction. Isolation is per call: the
// elevated level requested by WithinSerializable never outlives the
// transaction, so subsequent work runs at the pool default (read committed).
type UnitOfWork interface {
	// WithinSerializable: booking commits race through the store's serializable
	// scheduler; serialization failures are retried with backoff.
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Within: read-committed transaction for write operations without
	// check-then-insert races (cancellation).
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions.
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Ledger() ReservationLedger
	DB() db.DBTX
}

// ReservationLedger tracks which user holds which flight reservation. Counts
// always read current transactional state; no caching is permitted between
// a count and the insert it guards.
type ReservationLedger interface {
	CountForFlight(ctx context.Context, flightID int64) (int, error)
	CountForUserOnDate(ctx context.Context, userID int64, date flight.Date) (int, error)
	// Insert adds one (user, flight) row. Uniqueness is the caller's
	// responsibility; the booking protocol prevents duplicates.
	Insert(ctx context.Context, userID, flightID int64) error
	// Delete removes matching rows; zero rows matched is a no-op, not an error.
	Delete(ctx context.Context, userID, flightID int64) error
}
