package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"rentfolio/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestObligation creates a standalone expense dated on the given day.
func CreateTestObligation(t *testing.T, db *gorm.DB, date time.Time) *models.Obligation {
	t.Helper()

	o := &models.Obligation{
		Kind:     models.ObligationKindExpense,
		Title:    fmt.Sprintf("Test Obligation %d", nextID()),
		Category: "maintenance",
		Amount:   decimal.NewFromInt(150),
		Date:     date,
	}
	if err := db.Create(o).Error; err != nil {
		t.Fatalf("failed to create test obligation: %v", err)
	}
	return o
}

// CreateTestRecurringRoot creates a series root anchored on the given date.
func CreateTestRecurringRoot(t *testing.T, db *gorm.DB, date time.Time, frequency string, interval int) *models.Obligation {
	t.Helper()

	o := &models.Obligation{
		Kind:               models.ObligationKindExpense,
		Title:              fmt.Sprintf("Test Series %d", nextID()),
		Category:           "rent",
		Amount:             decimal.NewFromInt(1200),
		Date:               date,
		IsRecurring:        true,
		RecurringFrequency: &frequency,
		RecurringInterval:  &interval,
	}
	if err := db.Create(o).Error; err != nil {
		t.Fatalf("failed to create test recurring root: %v", err)
	}
	return o
}

// CreateTestInstance materializes one instance of the root on the given date.
func CreateTestInstance(t *testing.T, db *gorm.DB, root *models.Obligation, date time.Time) *models.Obligation {
	t.Helper()

	o := root.MaterializeAt(date)
	if err := db.Create(o).Error; err != nil {
		t.Fatalf("failed to create test instance: %v", err)
	}
	return o
}

// CreateTestDeductibleExpense creates a standalone tax-deductible expense
// with the given amount, dated on the given day.
func CreateTestDeductibleExpense(t *testing.T, db *gorm.DB, date time.Time, amount string) *models.Obligation {
	t.Helper()

	o := &models.Obligation{
		Kind:          models.ObligationKindExpense,
		Title:         fmt.Sprintf("Test Deductible %d", nextID()),
		Category:      "repairs",
		Amount:        decimal.RequireFromString(amount),
		Date:          date,
		TaxDeductible: true,
	}
	if err := db.Create(o).Error; err != nil {
		t.Fatalf("failed to create test deductible expense: %v", err)
	}
	return o
}

// CreateTestAmortizedExpense creates a tax-deductible expense amortized
// over the given number of years starting at start.
func CreateTestAmortizedExpense(t *testing.T, db *gorm.DB, date time.Time, amount string, years int, start time.Time) *models.Obligation {
	t.Helper()

	o := &models.Obligation{
		Kind:              models.ObligationKindExpense,
		Title:             fmt.Sprintf("Test Amortized %d", nextID()),
		Category:          "renovation",
		Amount:            decimal.RequireFromString(amount),
		Date:              date,
		TaxDeductible:     true,
		IsAmortized:       true,
		AmortizationYears: &years,
		AmortizationStart: &start,
	}
	if err := db.Create(o).Error; err != nil {
		t.Fatalf("failed to create test amortized expense: %v", err)
	}
	return o
}
