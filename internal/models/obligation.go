package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"rentfolio/internal/amortization"
	"rentfolio/internal/recurrence"
)

// ObligationKind represents the direction of an obligation
type ObligationKind string

const (
	ObligationKindExpense ObligationKind = "expense"
	ObligationKindIncome  ObligationKind = "income"
)

// Obligation represents a single financial obligation: a one-off entry, the
// root of a recurring series, or a generated instance of such a series.
//
// A recurring root is the occurrence on its own date; generated instances
// point back to it through ParentID and never recur themselves. Soft-deleted
// instances keep their row as a tombstone so a sweep does not resurrect a
// date the user removed.
type Obligation struct {
	Base
	Kind       ObligationKind  `gorm:"not null;index" json:"kind"`
	Title      string          `gorm:"not null" json:"title"`
	Notes      string          `json:"notes,omitempty"`
	Category   string          `gorm:"index" json:"category,omitempty"`
	PropertyID *string         `gorm:"type:uuid;index" json:"property_id,omitempty"`
	Amount     decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Date       time.Time       `gorm:"not null;index" json:"date"`

	// Recurrence template, set on roots only
	IsRecurring        bool       `gorm:"not null;default:false" json:"is_recurring"`
	RecurringFrequency *string    `json:"recurring_frequency,omitempty"`
	RecurringInterval  *int       `json:"recurring_interval,omitempty"`
	RecurringEndDate   *time.Time `json:"recurring_end_date,omitempty"`
	ParentID           *string    `gorm:"type:uuid;index" json:"parent_id,omitempty"`

	// Tax treatment
	TaxDeductible     bool       `gorm:"not null;default:false" json:"tax_deductible"`
	IsAmortized       bool       `gorm:"not null;default:false" json:"is_amortized"`
	AmortizationYears *int       `json:"amortization_years,omitempty"`
	AmortizationStart *time.Time `json:"amortization_start,omitempty"`

	// Relationships
	Parent   *Obligation  `gorm:"foreignKey:ParentID" json:"-"`
	Children []Obligation `gorm:"foreignKey:ParentID" json:"-"`
}

// IsRoot reports whether this obligation is the root of a recurring series.
func (o *Obligation) IsRoot() bool {
	return o.IsRecurring && o.ParentID == nil
}

// IsInstance reports whether this obligation was generated from a series root.
func (o *Obligation) IsInstance() bool {
	return o.ParentID != nil
}

// IsStandalone reports whether this obligation belongs to no series.
func (o *Obligation) IsStandalone() bool {
	return !o.IsRecurring && o.ParentID == nil
}

// Schedule builds the recurrence schedule from the root's template fields.
// The root's own date is the anchor. Returns an error when the obligation
// is not a recurring root or its template fields are incomplete.
func (o *Obligation) Schedule() (recurrence.Schedule, error) {
	if !o.IsRoot() {
		return recurrence.Schedule{}, fmt.Errorf("obligation %s is not a recurring root", o.ID)
	}
	if o.RecurringFrequency == nil || o.RecurringInterval == nil {
		return recurrence.Schedule{}, fmt.Errorf("obligation %s has an incomplete recurrence template", o.ID)
	}

	unit, interval, err := recurrence.ParseFrequency(*o.RecurringFrequency, *o.RecurringInterval)
	if err != nil {
		return recurrence.Schedule{}, err
	}

	return recurrence.Schedule{
		Anchor:   o.Date,
		Unit:     unit,
		Interval: interval,
		End:      o.RecurringEndDate,
	}, nil
}

// MaterializeAt creates an instance of this root's template dated at the
// given due date. Instances copy the template fields but never recur.
func (o *Obligation) MaterializeAt(date time.Time) *Obligation {
	parentID := o.ID
	return &Obligation{
		Kind:              o.Kind,
		Title:             o.Title,
		Notes:             o.Notes,
		Category:          o.Category,
		PropertyID:        o.PropertyID,
		Amount:            o.Amount,
		Date:              recurrence.DateOnly(date),
		IsRecurring:       false,
		ParentID:          &parentID,
		TaxDeductible:     o.TaxDeductible,
		IsAmortized:       o.IsAmortized,
		AmortizationYears: o.AmortizationYears,
		AmortizationStart: o.AmortizationStart,
	}
}

// AmortizationTerms returns the amortization terms for this obligation.
// An obligation flagged as amortized but missing its years or start date
// reports ok=false and is treated as non-amortized by deduction math.
func (o *Obligation) AmortizationTerms() (amortization.Terms, bool) {
	if !o.IsAmortized || o.AmortizationYears == nil || o.AmortizationStart == nil {
		return amortization.Terms{}, false
	}
	return amortization.Terms{
		Amount: o.Amount,
		Years:  *o.AmortizationYears,
		Start:  *o.AmortizationStart,
	}, true
}
