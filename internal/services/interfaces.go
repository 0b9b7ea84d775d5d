package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"rentfolio/internal/amortization"
	apperrors "rentfolio/internal/errors"
	"rentfolio/internal/models"
	"rentfolio/internal/pagination"
)

// MutationScope selects how far an edit or delete reaches into a recurring
// series: the targeted occurrence only, the target and everything after it,
// or the whole series.
type MutationScope string

const (
	ScopeThis   MutationScope = "this"
	ScopeFuture MutationScope = "future"
	ScopeAll    MutationScope = "all"
)

// ParseScope parses a scope query parameter. An empty value defaults to
// ScopeThis so plain deletes and edits behave like single-row operations.
func ParseScope(s string) (MutationScope, error) {
	switch MutationScope(s) {
	case "":
		return ScopeThis, nil
	case ScopeThis, ScopeFuture, ScopeAll:
		return MutationScope(s), nil
	}
	return "", apperrors.ErrInvalidScope
}

// CreateObligationParams holds the fields for creating an obligation.
type CreateObligationParams struct {
	Kind       models.ObligationKind
	Title      string
	Notes      string
	Category   string
	PropertyID *string
	Amount     decimal.Decimal
	Date       time.Time

	IsRecurring        bool
	RecurringFrequency *string
	RecurringInterval  *int
	RecurringEndDate   *time.Time

	TaxDeductible     bool
	IsAmortized       bool
	AmortizationYears *int
	AmortizationStart *time.Time
}

// UpdateObligationParams holds the fields an edit may change. Nil pointers
// leave the field untouched.
type UpdateObligationParams struct {
	Kind       *models.ObligationKind
	Title      *string
	Notes      *string
	Category   *string
	PropertyID *string
	Amount     *decimal.Decimal
	Date       *time.Time

	RecurringFrequency *string
	RecurringInterval  *int
	RecurringEndDate   *time.Time
	ClearRecurringEnd  bool

	TaxDeductible     *bool
	IsAmortized       *bool
	AmortizationYears *int
	AmortizationStart *time.Time
}

// ObligationFilter holds optional filter parameters for listing obligations.
type ObligationFilter struct {
	Kind          *models.ObligationKind
	Category      *string
	PropertyID    *string
	FromDate      *time.Time
	ToDate        *time.Time
	Recurring     *bool
	TaxDeductible *bool
}

// CreateResult reports the outcome of creating an obligation. For a
// recurring root anchored in the past, overdue instances are materialized
// in the same transaction and counted here.
type CreateResult struct {
	Obligation        *models.Obligation `json:"obligation"`
	InstancesCreated  int                `json:"instances_created"`
	BackfillTruncated bool               `json:"backfill_truncated"`
}

// ObligationServicer defines the contract for obligation CRUD and
// schedule projection.
type ObligationServicer interface {
	Create(ctx context.Context, p CreateObligationParams) (*CreateResult, error)
	GetByID(ctx context.Context, id string) (*models.Obligation, error)
	List(ctx context.Context, page pagination.PageRequest, filter ObligationFilter) (*pagination.PageResponse[models.Obligation], error)
	ListInstances(ctx context.Context, rootID string, page pagination.PageRequest) (*pagination.PageResponse[models.Obligation], error)
	ProjectSchedule(ctx context.Context, id string, from time.Time) ([]time.Time, error)
}

// SeriesMutationResult reports what a scoped mutation touched.
type SeriesMutationResult struct {
	Target       *models.Obligation `json:"obligation,omitempty"`
	RowsAffected int64              `json:"rows_affected"`
	SeriesEnded  bool               `json:"series_ended"`
}

// SeriesServicer defines the contract for scope-aware edits and deletes.
// Standalone obligations are handled here too; for them every scope
// collapses to the single row.
type SeriesServicer interface {
	Update(ctx context.Context, id string, scope MutationScope, p UpdateObligationParams) (*SeriesMutationResult, error)
	Delete(ctx context.Context, id string, scope MutationScope) (*SeriesMutationResult, error)
}

// SweepServicer defines the contract for running and inspecting sweeps.
type SweepServicer interface {
	Run(ctx context.Context, trigger string) (*models.SweepRun, error)
	ListRuns(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.SweepRun], error)
}

// DeductionItem is one obligation's contribution to a tax year.
type DeductionItem struct {
	ObligationID string          `json:"obligation_id"`
	Title        string          `json:"title"`
	Category     string          `json:"category,omitempty"`
	Date         time.Time       `json:"date"`
	Amortized    bool            `json:"amortized"`
	Amount       decimal.Decimal `json:"amount"`
}

// DeductionReport aggregates deductible amounts for a calendar year.
type DeductionReport struct {
	Year           int             `json:"year"`
	DirectTotal    decimal.Decimal `json:"direct_total"`
	AmortizedTotal decimal.Decimal `json:"amortized_total"`
	Total          decimal.Decimal `json:"total"`
	Items          []DeductionItem `json:"items"`
}

// DeductionServicer defines the contract for tax deduction reporting.
type DeductionServicer interface {
	YearReport(ctx context.Context, year int) (*DeductionReport, error)
	AmortizationStatus(ctx context.Context, obligationID string) (*amortization.Status, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(actor, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}

// ObligationStore is the narrow persistence contract the series and sweep
// logic runs against. Mutations that must be atomic run inside Transaction,
// which hands the callback a store bound to the transaction.
type ObligationStore interface {
	Transaction(ctx context.Context, fn func(ObligationStore) error) error
	Create(ctx context.Context, o *models.Obligation) error
	Get(ctx context.Context, id string) (*models.Obligation, error)
	ListRecurringRoots(ctx context.Context) ([]models.Obligation, error)
	// ListInstanceDates includes soft-deleted instances: a removed
	// occurrence acts as a tombstone for its date.
	ListInstanceDates(ctx context.Context, rootID string) ([]time.Time, error)
	InsertInstances(ctx context.Context, instances []*models.Obligation) (int, error)
	UpdateFields(ctx context.Context, id string, updates map[string]interface{}) error
	// UpdateMembers updates the root's instances, optionally only those
	// dated on or after from.
	UpdateMembers(ctx context.Context, rootID string, from *time.Time, updates map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id string) error
	// DeleteMembers soft-deletes the root's instances, optionally only
	// those dated on or after from.
	DeleteMembers(ctx context.Context, rootID string, from *time.Time) (int64, error)
	// MaxLiveInstanceDate returns the latest date among the root's
	// non-deleted instances, or zero when none remain.
	MaxLiveInstanceDate(ctx context.Context, rootID string) (time.Time, error)
	SetSeriesEnd(ctx context.Context, rootID string, end *time.Time) error
}
