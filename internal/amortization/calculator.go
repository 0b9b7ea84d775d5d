// Package amortization computes straight-line deduction schedules for
// capitalized expenses spread over a fixed number of years. Amounts are
// pro-rated by whole months, so a term starting mid-year splits across
// calendar years.
package amortization

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveAmount = errors.New("amortization: amount must be positive")
	ErrInvalidYears      = errors.New("amortization: years must be at least 1")
	ErrMissingStart      = errors.New("amortization: start date is required")
)

// Terms describes an amortized expense: the capitalized total, the term
// length in years, and the month amortization begins.
type Terms struct {
	Amount decimal.Decimal
	Years  int
	Start  time.Time
}

// Validate checks the terms are usable for deduction math.
func (t Terms) Validate() error {
	if !t.Amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if t.Years < 1 {
		return ErrInvalidYears
	}
	if t.Start.IsZero() {
		return ErrMissingStart
	}
	return nil
}

// monthIndex maps a year and month onto a single monotonic scale so term
// windows and calendar years become integer intervals.
func monthIndex(year int, month time.Month) int {
	return year*12 + int(month) - 1
}

func (t Terms) firstIndex() int {
	return monthIndex(t.Start.Year(), t.Start.Month())
}

func (t Terms) totalMonths() int {
	return t.Years * 12
}

// cumulativeThrough returns the amount deducted once the first n months of
// the term have elapsed, rounded to cents. Rounding the cumulative value
// rather than each slice keeps the per-year amounts summing exactly to the
// total.
func (t Terms) cumulativeThrough(months int) decimal.Decimal {
	total := t.totalMonths()
	if months <= 0 {
		return decimal.Zero
	}
	if months >= total {
		return t.Amount
	}
	return t.Amount.
		Mul(decimal.NewFromInt(int64(months))).
		Div(decimal.NewFromInt(int64(total))).
		Round(2)
}

// DeductionForYear returns the deductible amount attributable to the given
// calendar year. Years outside the term yield zero.
func (t Terms) DeductionForYear(year int) decimal.Decimal {
	first := t.firstIndex()
	monthsBefore := monthIndex(year, time.January) - first
	monthsThrough := monthsBefore + 12
	return t.cumulativeThrough(monthsThrough).Sub(t.cumulativeThrough(monthsBefore))
}

// YearDeduction is one calendar year's slice of an amortization schedule.
type YearDeduction struct {
	Year   int             `json:"year"`
	Amount decimal.Decimal `json:"amount"`
}

// YearSchedule returns the full per-year deduction schedule from the first
// to the last calendar year of the term.
func (t Terms) YearSchedule() []YearDeduction {
	first := t.firstIndex()
	last := first + t.totalMonths() - 1

	schedule := make([]YearDeduction, 0, last/12-first/12+1)
	for year := first / 12; year <= last/12; year++ {
		schedule = append(schedule, YearDeduction{
			Year:   year,
			Amount: t.DeductionForYear(year),
		})
	}
	return schedule
}

// Status is a point-in-time view of how far an amortization has progressed.
type Status struct {
	TotalAmount    decimal.Decimal `json:"total_amount"`
	MonthlyAmount  decimal.Decimal `json:"monthly_amount"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	MonthsTotal    int             `json:"months_total"`
	MonthsElapsed  int             `json:"months_elapsed"`
	DeductedToDate decimal.Decimal `json:"deducted_to_date"`
	Remaining      decimal.Decimal `json:"remaining"`
	Completed      bool            `json:"completed"`
}

// StatusAt reports progress as of now. The month containing the start date
// counts as elapsed once now is inside it.
func (t Terms) StatusAt(now time.Time) Status {
	first := t.firstIndex()
	total := t.totalMonths()

	elapsed := monthIndex(now.Year(), now.Month()) - first + 1
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > total {
		elapsed = total
	}

	lastIdx := first + total - 1
	endDate := time.Date(lastIdx/12, time.Month(lastIdx%12+2), 0, 0, 0, 0, 0, time.UTC)

	deducted := t.cumulativeThrough(elapsed)
	return Status{
		TotalAmount:    t.Amount,
		MonthlyAmount:  t.Amount.Div(decimal.NewFromInt(int64(total))).Round(2),
		StartDate:      time.Date(t.Start.Year(), t.Start.Month(), 1, 0, 0, 0, 0, time.UTC),
		EndDate:        endDate,
		MonthsTotal:    total,
		MonthsElapsed:  elapsed,
		DeductedToDate: deducted,
		Remaining:      t.Amount.Sub(deducted),
		Completed:      elapsed == total,
	}
}
