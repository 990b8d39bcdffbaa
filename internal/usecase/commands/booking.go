package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/IneMentenPXL/FlightsApp/internal/domain/flight"
	"github.com/IneMentenPXL/FlightsApp/internal/pkg/errs"
	"github.com/IneMentenPXL/FlightsApp/internal/usecase/shared"
)

// MaxFlightBookings is the seat capacity of every flight.
const MaxFlightBookings = 3

// BookingOutcome is a business result, not a fault. Capacity and daily-limit
// rejections travel through it; only store failures surface as errors.
type BookingOutcome string

const (
	// OutcomeAdded: every leg of the itinerary was reserved and committed.
	OutcomeAdded BookingOutcome = "added"
	// OutcomeFlightFull: a leg already carries MaxFlightBookings reservations;
	// nothing from the itinerary persisted.
	OutcomeFlightFull BookingOutcome = "flight_full"
	// OutcomeDayFull: the user already holds a reservation on that date.
	OutcomeDayFull BookingOutcome = "day_full"
)

var (
	ErrNoFlights               = errs.New("itinerary needs at least one flight")
	ErrDatabaseOperationFailed = errs.New("database operation failed")

	// Rollback sentinels: returned from inside the transaction closure to force
	// a rollback, then translated to outcomes. They never leave Book.
	errAbortDayFull    = errs.New("booking aborted: daily limit reached")
	errAbortFlightFull = errs.New("booking aborted: flight capacity reached")
)

type BookingCommands interface {
	Book(ctx context.Context, userID int64, date flight.Date, flightIDs []int64) (BookingOutcome, error)
	Cancel(ctx context.Context, userID int64, flightIDs []int64)
}

type bookingCommandsImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewBookingCommands(uow shared.UnitOfWork, logger *slog.Logger) BookingCommands {
	return &bookingCommandsImpl{
		uow:    uow,
		logger: logger,
	}
}

// Book reserves every leg of one itinerary atomically. The capacity checks
// and inserts run in a single serializable transaction: two overlapping
// bookings cannot both observe a passing count that only one of them may act
// on, so losers of a last-seat race see the committed count and get
// OutcomeFlightFull instead of over-booking. The day-limit check runs first
// so a doomed booking fails before any insert.
func (b *bookingCommandsImpl) Book(ctx context.Context, userID int64, date flight.Date, flightIDs []int64) (BookingOutcome, error) {
	if len(flightIDs) == 0 {
		return "", ErrNoFlights
	}

	err := b.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		ledger := tx.Ledger()

		onDate, err := ledger.CountForUserOnDate(ctx, userID, date)
		if err != nil {
			return err
		}
		if onDate > 0 {
			return errAbortDayFull
		}

		for _, flightID := range flightIDs {
			booked, err := ledger.CountForFlight(ctx, flightID)
			if err != nil {
				return err
			}
			if booked >= MaxFlightBookings {
				// Rolls back inserts already made for earlier legs.
				return errAbortFlightFull
			}
			if err := ledger.Insert(ctx, userID, flightID); err != nil {
				return err
			}
		}
		return nil
	})

	switch {
	case err == nil:
		return OutcomeAdded, nil
	case errors.Is(err, errAbortDayFull):
		return OutcomeDayFull, nil
	case errors.Is(err, errAbortFlightFull):
		return OutcomeFlightFull, nil
	default:
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}
}

// Cancel removes the user's reservations on the given flights in one
// transaction. Deleting a reservation that does not exist removes zero rows
// and succeeds. A store fault rolls back every deletion and is logged but not
// returned; callers receive no failure notice for cancellations.
func (b *bookingCommandsImpl) Cancel(ctx context.Context, userID int64, flightIDs []int64) {
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ledger := tx.Ledger()
		for _, flightID := range flightIDs {
			if err := ledger.Delete(ctx, userID, flightID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		b.logger.Error("cancellation rolled back",
			"user_id", userID,
			"flight_count", len(flightIDs),
			"error", err.Error())
	}
}
