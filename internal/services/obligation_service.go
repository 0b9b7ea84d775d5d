package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"rentfolio/internal/amortization"
	apperrors "rentfolio/internal/errors"
	"rentfolio/internal/models"
	"rentfolio/internal/pagination"
	"rentfolio/internal/recurrence"
)

// obligationService handles obligation CRUD and schedule projection.
type obligationService struct {
	db    *gorm.DB
	store ObligationStore
}

// NewObligationService creates a new ObligationServicer.
func NewObligationService(db *gorm.DB, store ObligationStore) ObligationServicer {
	return &obligationService{db: db, store: store}
}

// Create validates and persists a new obligation. A recurring root anchored
// in the past has its overdue instances materialized in the same
// transaction, so the series is complete the moment creation returns.
func (s *obligationService) Create(ctx context.Context, p CreateObligationParams) (*CreateResult, error) {
	if err := validateCreateParams(p); err != nil {
		return nil, err
	}

	o := &models.Obligation{
		Kind:              p.Kind,
		Title:             p.Title,
		Notes:             p.Notes,
		Category:          p.Category,
		PropertyID:        p.PropertyID,
		Amount:            p.Amount,
		Date:              recurrence.DateOnly(p.Date),
		IsRecurring:       p.IsRecurring,
		TaxDeductible:     p.TaxDeductible,
		IsAmortized:       p.IsAmortized,
		AmortizationYears: p.AmortizationYears,
		AmortizationStart: p.AmortizationStart,
	}
	if p.IsRecurring {
		o.RecurringFrequency = p.RecurringFrequency
		o.RecurringInterval = p.RecurringInterval
		if p.RecurringEndDate != nil {
			end := recurrence.DateOnly(*p.RecurringEndDate)
			o.RecurringEndDate = &end
		}
	}

	result := &CreateResult{}
	err := s.store.Transaction(ctx, func(tx ObligationStore) error {
		if err := tx.Create(ctx, o); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if !o.IsRecurring {
			return nil
		}
		created, truncated, err := backfillRoot(ctx, tx, o, time.Now(), recurrence.DefaultBounds())
		if err != nil {
			return err
		}
		result.InstancesCreated = created
		result.BackfillTruncated = truncated
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Obligation = o
	return result, nil
}

// GetByID returns an obligation by ID.
func (s *obligationService) GetByID(ctx context.Context, id string) (*models.Obligation, error) {
	var o models.Obligation
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrObligationNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &o, nil
}

// List returns a paginated list of obligations with optional filters,
// most recent first.
func (s *obligationService) List(ctx context.Context, page pagination.PageRequest, filter ObligationFilter) (*pagination.PageResponse[models.Obligation], error) {
	page.Defaults()

	base := applyObligationFilters(s.db.WithContext(ctx).Model(&models.Obligation{}), filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var obligations []models.Obligation
	if err := base.Order("date desc, id desc").Scopes(pagination.Paginate(page)).Find(&obligations).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(obligations, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// ListInstances returns the generated instances of a recurring root in
// date order.
func (s *obligationService) ListInstances(ctx context.Context, rootID string, page pagination.PageRequest) (*pagination.PageResponse[models.Obligation], error) {
	root, err := s.GetByID(ctx, rootID)
	if err != nil {
		return nil, err
	}
	if !root.IsRoot() {
		return nil, apperrors.ErrNotRecurring
	}

	page.Defaults()

	base := s.db.WithContext(ctx).Model(&models.Obligation{}).Where("parent_id = ?", rootID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var instances []models.Obligation
	if err := base.Order("date asc").Scopes(pagination.Paginate(page)).Find(&instances).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(instances, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// ProjectSchedule previews the upcoming due dates for an obligation's
// series. An instance resolves to its root's schedule; a standalone
// obligation has none.
func (s *obligationService) ProjectSchedule(ctx context.Context, id string, from time.Time) ([]time.Time, error) {
	o, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	root := o
	if o.IsInstance() {
		root, err = s.GetByID(ctx, *o.ParentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrObligationNotFound) {
				return nil, apperrors.WithMessage(apperrors.ErrSeriesIntegrity, "Series root no longer exists")
			}
			return nil, err
		}
	}
	if !root.IsRoot() {
		return nil, apperrors.ErrNotRecurring
	}

	sched, err := root.Schedule()
	if err != nil {
		return nil, mapScheduleErr(err)
	}

	dates, err := recurrence.Project(sched, from, recurrence.DefaultBounds())
	if err != nil {
		return nil, mapScheduleErr(err)
	}
	return dates, nil
}

// applyObligationFilters adds WHERE clauses for each filter that is set.
func applyObligationFilters(q *gorm.DB, filter ObligationFilter) *gorm.DB {
	if filter.Kind != nil {
		q = q.Where("kind = ?", *filter.Kind)
	}
	if filter.Category != nil {
		q = q.Where("category = ?", *filter.Category)
	}
	if filter.PropertyID != nil {
		q = q.Where("property_id = ?", *filter.PropertyID)
	}
	if filter.FromDate != nil {
		q = q.Where("date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		q = q.Where("date <= ?", *filter.ToDate)
	}
	if filter.Recurring != nil {
		q = q.Where("is_recurring = ?", *filter.Recurring)
	}
	if filter.TaxDeductible != nil {
		q = q.Where("tax_deductible = ?", *filter.TaxDeductible)
	}
	return q
}

// validateCreateParams enforces the creation rules before anything is
// persisted. Recurrence and amortization fields are only meaningful with
// their flags set, and are rejected otherwise rather than silently dropped.
func validateCreateParams(p CreateObligationParams) error {
	switch p.Kind {
	case models.ObligationKindExpense, models.ObligationKindIncome:
	default:
		return apperrors.ErrInvalidKind
	}
	if p.Title == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Title is required")
	}
	if !p.Amount.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must be greater than zero")
	}
	if p.Date.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Date is required")
	}
	if p.TaxDeductible && p.Kind != models.ObligationKindExpense {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Only expenses can be tax deductible")
	}

	if p.IsRecurring {
		if p.RecurringFrequency == nil || p.RecurringInterval == nil {
			return apperrors.WithMessage(apperrors.ErrInvalidFrequency, "Recurring obligations require a frequency and interval")
		}
		if _, _, err := recurrence.ParseFrequency(*p.RecurringFrequency, *p.RecurringInterval); err != nil {
			return mapFrequencyInputErr(err)
		}
		if p.RecurringEndDate != nil &&
			recurrence.DateOnly(*p.RecurringEndDate).Before(recurrence.DateOnly(p.Date)) {
			return apperrors.ErrInvalidEndDate
		}
	} else if p.RecurringFrequency != nil || p.RecurringInterval != nil || p.RecurringEndDate != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Recurrence fields require is_recurring")
	}

	if p.IsAmortized {
		if !p.TaxDeductible {
			return apperrors.WithMessage(apperrors.ErrInvalidAmortization, "Amortization requires a tax-deductible expense")
		}
		if p.AmortizationYears == nil || p.AmortizationStart == nil {
			return apperrors.ErrInvalidAmortization
		}
		terms := amortization.Terms{Amount: p.Amount, Years: *p.AmortizationYears, Start: *p.AmortizationStart}
		if err := terms.Validate(); err != nil {
			return apperrors.Wrap(apperrors.ErrInvalidAmortization, err)
		}
	} else if p.AmortizationYears != nil || p.AmortizationStart != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Amortization fields require is_amortized")
	}

	return nil
}

// backfillRoot materializes the root's overdue instances through the given
// store, which the caller has bound to a transaction. Returns how many
// instances were created and whether the per-run cap cut the batch short.
func backfillRoot(ctx context.Context, store ObligationStore, root *models.Obligation, now time.Time, bounds recurrence.Bounds) (int, bool, error) {
	sched, err := root.Schedule()
	if err != nil {
		return 0, false, mapScheduleErr(err)
	}

	existing, err := store.ListInstanceDates(ctx, root.ID)
	if err != nil {
		return 0, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	missing, truncated, err := recurrence.Backfill(sched, recurrence.NewDateSet(existing...), now, bounds)
	if err != nil {
		return 0, false, mapScheduleErr(err)
	}
	if len(missing) == 0 {
		return 0, truncated, nil
	}

	instances := make([]*models.Obligation, len(missing))
	for i, d := range missing {
		instances[i] = root.MaterializeAt(d)
	}

	created, err := store.InsertInstances(ctx, instances)
	if err != nil {
		return 0, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return created, truncated, nil
}

// mapFrequencyInputErr translates engine errors from user-submitted
// recurrence fields into input errors.
func mapFrequencyInputErr(err error) error {
	switch {
	case errors.Is(err, recurrence.ErrUnknownUnit):
		return apperrors.Wrap(apperrors.ErrInvalidFrequency, err)
	case errors.Is(err, recurrence.ErrInvalidInterval):
		return apperrors.Wrap(apperrors.ErrInvalidInterval, err)
	default:
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
}

// mapScheduleErr translates engine errors from a persisted root's template
// into series errors. Bad stored templates are integrity problems, not
// input problems.
func mapScheduleErr(err error) error {
	if errors.Is(err, recurrence.ErrCursorStalled) {
		return apperrors.Wrap(apperrors.ErrSeriesStalled, err)
	}
	return apperrors.Wrap(apperrors.ErrSeriesIntegrity, err)
}
