package recurrence

import (
	"fmt"
	"time"
)

// Cursor steps through the due dates of a schedule. For month and year
// units it remembers the anchor's day-of-month, so a series anchored on
// the 31st lands on Feb 28, Mar 31, Apr 30 rather than drifting to the
// 28th permanently after the first short month.
type Cursor struct {
	unit      Unit
	interval  int
	anchorDay int
}

// NewCursor creates a cursor for the given schedule parameters.
func NewCursor(unit Unit, interval int, anchor time.Time) (*Cursor, error) {
	switch unit {
	case UnitDays, UnitWeeks, UnitMonths, UnitYears:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
	if interval < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidInterval, interval)
	}
	return &Cursor{unit: unit, interval: interval, anchorDay: anchor.Day()}, nil
}

// Next returns the due date following from. The result is always strictly
// after from; a cursor that fails to advance returns ErrCursorStalled
// instead of looping forever.
func (c *Cursor) Next(from time.Time) (time.Time, error) {
	from = DateOnly(from)

	var next time.Time
	switch c.unit {
	case UnitDays:
		next = from.AddDate(0, 0, c.interval)
	case UnitWeeks:
		next = from.AddDate(0, 0, 7*c.interval)
	case UnitMonths:
		next = c.addMonths(from, c.interval)
	case UnitYears:
		next = c.addMonths(from, 12*c.interval)
	}

	if !next.After(from) {
		return time.Time{}, fmt.Errorf("%w: %s did not advance past %s",
			ErrCursorStalled, c.unit, from.Format("2006-01-02"))
	}
	return next, nil
}

// addMonths advances by whole months, clamping the day to the shorter of
// the anchor day and the target month's length. time.AddDate is avoided
// here because it rolls Jan 31 + 1 month over into March.
func (c *Cursor) addMonths(from time.Time, months int) time.Time {
	year := from.Year()
	month := int(from.Month()) - 1 + months
	year += month / 12
	month = month % 12

	day := c.anchorDay
	if max := daysInMonth(year, time.Month(month+1)); day > max {
		day = max
	}
	return time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC)
}

// daysInMonth returns the number of days in the given month. Day zero of
// the following month is the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
