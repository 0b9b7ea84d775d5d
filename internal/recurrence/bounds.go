package recurrence

// Safety bounds on schedule materialization. A corrupt or extremely old
// schedule must never be able to flood a table or spin a sweep run.
const (
	// MaxStepsPerRun caps how many missing instances a single backfill
	// emits for one root. A root further behind than this catches up
	// across successive runs.
	MaxStepsPerRun = 100

	// HorizonYears caps how far ahead projections look.
	HorizonYears = 2

	// MaxProjectedDates caps how many upcoming dates a projection returns.
	MaxProjectedDates = 24
)

// Bounds carries the materialization limits so tests can tighten them.
type Bounds struct {
	MaxSteps     int
	HorizonYears int
	MaxDates     int
}

// DefaultBounds returns the production limits.
func DefaultBounds() Bounds {
	return Bounds{
		MaxSteps:     MaxStepsPerRun,
		HorizonYears: HorizonYears,
		MaxDates:     MaxProjectedDates,
	}
}
