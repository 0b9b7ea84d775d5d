package recurrence

import "time"

// DateOnly strips the time-of-day from t, keeping the calendar date as the
// caller wrote it. The wall-clock components are used directly rather than
// converting zones, so a date entered as local midnight stays on that date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateKey formats a date for set membership and uniqueness checks.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// DateSet is a membership set of calendar dates.
type DateSet map[string]struct{}

// NewDateSet builds a DateSet from the given dates.
func NewDateSet(dates ...time.Time) DateSet {
	s := make(DateSet, len(dates))
	for _, d := range dates {
		s.Add(d)
	}
	return s
}

// Add inserts a date into the set.
func (s DateSet) Add(t time.Time) {
	s[DateKey(t)] = struct{}{}
}

// Has reports whether the set contains the date.
func (s DateSet) Has(t time.Time) bool {
	_, ok := s[DateKey(t)]
	return ok
}

// Backfill walks the schedule from its anchor and returns the due dates on
// or before now that are not already in existing. The anchor itself is never
// returned; the root record is the occurrence on that date. Dates past the
// schedule's end are never returned, including dates already deleted and
// re-listed in existing, which stay suppressed by set membership.
//
// At most bounds.MaxSteps dates are emitted per call. When the cap cuts the
// walk short while more dates were still due, truncated is true and the
// remainder is picked up by the next run.
func Backfill(sched Schedule, existing DateSet, now time.Time, bounds Bounds) (missing []time.Time, truncated bool, err error) {
	if err := sched.Validate(); err != nil {
		return nil, false, err
	}

	cursor, err := NewCursor(sched.Unit, sched.Interval, sched.Anchor)
	if err != nil {
		return nil, false, err
	}

	today := DateOnly(now)
	var end *time.Time
	if sched.End != nil {
		e := DateOnly(*sched.End)
		end = &e
	}

	cur := DateOnly(sched.Anchor)
	for {
		next, err := cursor.Next(cur)
		if err != nil {
			return nil, false, err
		}
		if next.After(today) {
			return missing, false, nil
		}
		if end != nil && next.After(*end) {
			return missing, false, nil
		}
		if !existing.Has(next) {
			if len(missing) == bounds.MaxSteps {
				return missing, true, nil
			}
			missing = append(missing, next)
		}
		cur = next
	}
}

// Project returns the upcoming due dates of the schedule strictly after
// from, walking the anchor-aligned grid so mid-cycle projections stay in
// phase. A future anchor is included as the first date. The result stops
// at the schedule end, at bounds.HorizonYears past from, or after
// bounds.MaxDates entries, whichever comes first.
func Project(sched Schedule, from time.Time, bounds Bounds) ([]time.Time, error) {
	if err := sched.Validate(); err != nil {
		return nil, err
	}

	cursor, err := NewCursor(sched.Unit, sched.Interval, sched.Anchor)
	if err != nil {
		return nil, err
	}

	start := DateOnly(from)
	horizon := start.AddDate(bounds.HorizonYears, 0, 0)
	var end *time.Time
	if sched.End != nil {
		e := DateOnly(*sched.End)
		end = &e
	}

	var dates []time.Time
	cur := DateOnly(sched.Anchor)
	if cur.After(start) {
		if cur.After(horizon) {
			return dates, nil
		}
		dates = append(dates, cur)
		if len(dates) == bounds.MaxDates {
			return dates, nil
		}
	}

	for {
		next, err := cursor.Next(cur)
		if err != nil {
			return nil, err
		}
		if end != nil && next.After(*end) {
			return dates, nil
		}
		if next.After(horizon) {
			return dates, nil
		}
		if next.After(start) {
			dates = append(dates, next)
			if len(dates) == bounds.MaxDates {
				return dates, nil
			}
		}
		cur = next
	}
}
