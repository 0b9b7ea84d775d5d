// Package recurrence implements the schedule engine for recurring obligations:
// frequency parsing, interval stepping with month-end clamping, and bounded
// backfill/projection of due dates. All date math is calendar arithmetic on
// date-only values; time-of-day and time zones are deliberately ignored.
package recurrence

import (
	"errors"
	"fmt"
	"time"
)

// Unit is a canonical recurrence frequency unit.
type Unit string

const (
	UnitDays   Unit = "days"
	UnitWeeks  Unit = "weeks"
	UnitMonths Unit = "months"
	UnitYears  Unit = "years"
)

// Sentinel errors returned by the engine. Callers translate these into
// API-level errors at the service boundary.
var (
	ErrUnknownUnit     = errors.New("recurrence: unknown frequency unit")
	ErrInvalidInterval = errors.New("recurrence: interval must be at least 1")
	ErrCursorStalled   = errors.New("recurrence: cursor failed to advance")
)

// legacyAliases maps frequency values from older records onto a canonical
// unit and an interval multiplier. "quarterly" with interval 2 means every
// 6 months.
var legacyAliases = map[string]struct {
	unit   Unit
	factor int
}{
	"monthly":    {UnitMonths, 1},
	"quarterly":  {UnitMonths, 3},
	"biannually": {UnitMonths, 6},
	"annually":   {UnitYears, 1},
}

// ParseFrequency normalizes a frequency string and interval into a canonical
// unit and effective interval. Canonical units pass through unchanged; legacy
// aliases are expanded. An interval below 1 is always rejected, never
// defaulted.
func ParseFrequency(frequency string, interval int) (Unit, int, error) {
	if interval < 1 {
		return "", 0, fmt.Errorf("%w: got %d", ErrInvalidInterval, interval)
	}

	switch Unit(frequency) {
	case UnitDays, UnitWeeks, UnitMonths, UnitYears:
		return Unit(frequency), interval, nil
	}

	if alias, ok := legacyAliases[frequency]; ok {
		return alias.unit, alias.factor * interval, nil
	}

	return "", 0, fmt.Errorf("%w: %q", ErrUnknownUnit, frequency)
}

// Schedule describes a recurring series: the anchor date of the first
// occurrence, the stepping rule, and an optional inclusive end date.
type Schedule struct {
	Anchor   time.Time
	Unit     Unit
	Interval int
	End      *time.Time
}

// Validate checks that the schedule has a known unit, a positive interval,
// and an end date that does not precede the anchor.
func (s Schedule) Validate() error {
	switch s.Unit {
	case UnitDays, UnitWeeks, UnitMonths, UnitYears:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownUnit, s.Unit)
	}
	if s.Interval < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidInterval, s.Interval)
	}
	if s.End != nil && DateOnly(*s.End).Before(DateOnly(s.Anchor)) {
		return errors.New("recurrence: end date precedes anchor date")
	}
	return nil
}
