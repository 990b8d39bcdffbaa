package flight

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidDate = errors.New("invalid calendar date")

// Date is a calendar day without a time component. It maps onto the
// year/month_id/day_of_month columns of the flights table.
type Date struct {
	Year  int
	Month int
	Day   int
}

func NewDate(year, month, day int) (Date, error) {
	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return Date{}, ErrInvalidDate
	}
	// Reject days that do not exist in the given month (e.g. Feb 30).
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return Date{}, ErrInvalidDate
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// ParseDate accepts the ISO form "2006-01-02".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) IsZero() bool {
	return d == Date{}
}
