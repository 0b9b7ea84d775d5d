package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"rentfolio/internal/amortization"
	apperrors "rentfolio/internal/errors"
	"rentfolio/internal/models"
	"rentfolio/internal/recurrence"
)

// seriesService applies scope-aware edits and deletes to obligations.
// Every mutation runs in a single transaction so a series is never left
// half-changed.
type seriesService struct {
	store ObligationStore
}

// NewSeriesService creates a new SeriesServicer.
func NewSeriesService(store ObligationStore) SeriesServicer {
	return &seriesService{store: store}
}

// Delete removes an obligation with the given scope.
//
// On a standalone obligation every scope deletes the single row. On a root,
// "this" and "all" remove the whole series; "future" keeps the root's own
// occurrence, removes the generated repeats, and ends the series on the
// root's date. On an instance, "this" tombstones that occurrence, "future"
// removes it and later siblings and ends the series the day before, and
// "all" removes the entire series including the root.
func (s *seriesService) Delete(ctx context.Context, id string, scope MutationScope) (*SeriesMutationResult, error) {
	if err := validateScope(scope); err != nil {
		return nil, err
	}

	result := &SeriesMutationResult{}
	err := s.store.Transaction(ctx, func(tx ObligationStore) error {
		target, err := getObligation(ctx, tx, id)
		if err != nil {
			return err
		}

		switch {
		case target.IsStandalone():
			if err := tx.Delete(ctx, target.ID); err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			result.RowsAffected = 1
			return nil
		case target.IsRoot():
			return s.deleteFromRoot(ctx, tx, target, scope, result)
		default:
			return s.deleteFromInstance(ctx, tx, target, scope, result)
		}
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *seriesService) deleteFromRoot(ctx context.Context, tx ObligationStore, root *models.Obligation, scope MutationScope, result *SeriesMutationResult) error {
	switch scope {
	case ScopeThis, ScopeAll:
		// Removing the root without a narrower scope takes the whole
		// series with it; instances must not outlive their template.
		n, err := tx.DeleteMembers(ctx, root.ID, nil)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(ctx, root.ID); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		result.RowsAffected = n + 1
	case ScopeFuture:
		// Keep the root's own occurrence, drop the repeats, and end
		// the series on the anchor so nothing regenerates.
		n, err := tx.DeleteMembers(ctx, root.ID, nil)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		end := recurrence.DateOnly(root.Date)
		if err := tx.SetSeriesEnd(ctx, root.ID, &end); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		result.RowsAffected = n
		result.SeriesEnded = true
	default:
		return apperrors.ErrInvalidScope
	}
	return nil
}

func (s *seriesService) deleteFromInstance(ctx context.Context, tx ObligationStore, child *models.Obligation, scope MutationScope, result *SeriesMutationResult) error {
	root, err := getSeriesRoot(ctx, tx, child)
	if err != nil {
		return err
	}

	switch scope {
	case ScopeThis:
		if err := tx.Delete(ctx, child.ID); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		result.RowsAffected = 1
	case ScopeFuture:
		from := recurrence.DateOnly(child.Date)
		n, err := tx.DeleteMembers(ctx, root.ID, &from)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		end := from.AddDate(0, 0, -1)
		if err := tx.SetSeriesEnd(ctx, root.ID, &end); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		result.RowsAffected = n
		result.SeriesEnded = true
	case ScopeAll:
		n, err := tx.DeleteMembers(ctx, root.ID, nil)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(ctx, root.ID); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		result.RowsAffected = n + 1
	default:
		return apperrors.ErrInvalidScope
	}
	return nil
}

// Update edits an obligation with the given scope.
//
// Copied fields (kind, title, amounts, tax treatment) propagate to the rows
// the scope covers. Recurrence settings are only editable through the root;
// the anchor date of a series member is never editable. A "future" edit on
// an instance freezes the series at its current extent, since later
// occurrences would otherwise regenerate from the unedited template.
func (s *seriesService) Update(ctx context.Context, id string, scope MutationScope, p UpdateObligationParams) (*SeriesMutationResult, error) {
	if err := validateScope(scope); err != nil {
		return nil, err
	}
	if err := validateUpdateParams(p); err != nil {
		return nil, err
	}

	result := &SeriesMutationResult{}
	err := s.store.Transaction(ctx, func(tx ObligationStore) error {
		target, err := getObligation(ctx, tx, id)
		if err != nil {
			return err
		}

		switch {
		case target.IsStandalone():
			err = s.updateStandalone(ctx, tx, target, p, result)
		case target.IsRoot():
			err = s.updateRoot(ctx, tx, target, scope, p, result)
		default:
			err = s.updateInstance(ctx, tx, target, scope, p, result)
		}
		if err != nil {
			return err
		}

		fresh, err := getObligation(ctx, tx, id)
		if err != nil {
			return err
		}
		result.Target = fresh
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *seriesService) updateStandalone(ctx context.Context, tx ObligationStore, target *models.Obligation, p UpdateObligationParams, result *SeriesMutationResult) error {
	if hasRecurrenceFields(p) {
		return apperrors.ErrNotRecurring
	}
	if err := validateMergedTax(target, p); err != nil {
		return err
	}

	updates := buildCommonUpdates(p)
	if p.Date != nil {
		updates["date"] = recurrence.DateOnly(*p.Date)
	}
	if len(updates) == 0 {
		return nil
	}
	if err := tx.UpdateFields(ctx, target.ID, updates); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	result.RowsAffected = 1
	return nil
}

func (s *seriesService) updateRoot(ctx context.Context, tx ObligationStore, root *models.Obligation, scope MutationScope, p UpdateObligationParams, result *SeriesMutationResult) error {
	if p.Date != nil {
		// The root's date anchors the whole series; moving it would
		// shift every generated occurrence out from under it.
		return apperrors.ErrDateNotEditable
	}
	if err := validateMergedTax(root, p); err != nil {
		return err
	}
	if hasRecurrenceFields(p) {
		if err := validateMergedTemplate(root, p); err != nil {
			return err
		}
	}

	rootUpdates := buildCommonUpdates(p)
	if p.RecurringFrequency != nil {
		rootUpdates["recurring_frequency"] = *p.RecurringFrequency
	}
	if p.RecurringInterval != nil {
		rootUpdates["recurring_interval"] = *p.RecurringInterval
	}
	var newEnd *time.Time
	if p.RecurringEndDate != nil {
		end := recurrence.DateOnly(*p.RecurringEndDate)
		newEnd = &end
		rootUpdates["recurring_end_date"] = end
		result.SeriesEnded = true
	} else if p.ClearRecurringEnd {
		rootUpdates["recurring_end_date"] = nil
	}

	if len(rootUpdates) > 0 {
		if err := tx.UpdateFields(ctx, root.ID, rootUpdates); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		result.RowsAffected = 1
	}

	// A shortened series cannot keep live instances past its end.
	if newEnd != nil {
		dayAfter := newEnd.AddDate(0, 0, 1)
		n, err := tx.DeleteMembers(ctx, root.ID, &dayAfter)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		result.RowsAffected += n
	}

	if scope == ScopeFuture || scope == ScopeAll {
		if childUpdates := buildCommonUpdates(p); len(childUpdates) > 0 {
			n, err := tx.UpdateMembers(ctx, root.ID, nil, childUpdates)
			if err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			result.RowsAffected += n
		}
	}
	return nil
}

func (s *seriesService) updateInstance(ctx context.Context, tx ObligationStore, child *models.Obligation, scope MutationScope, p UpdateObligationParams, result *SeriesMutationResult) error {
	if p.Date != nil {
		// Moving an instance off its generated date would leave the
		// old date free for the sweep to regenerate.
		return apperrors.ErrDateNotEditable
	}
	if hasRecurrenceFields(p) {
		return apperrors.ErrTemplateNotEditable
	}
	if err := validateMergedTax(child, p); err != nil {
		return err
	}

	updates := buildCommonUpdates(p)

	switch scope {
	case ScopeThis:
		if len(updates) == 0 {
			return nil
		}
		if err := tx.UpdateFields(ctx, child.ID, updates); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		result.RowsAffected = 1
	case ScopeFuture:
		root, err := getSeriesRoot(ctx, tx, child)
		if err != nil {
			return err
		}
		from := recurrence.DateOnly(child.Date)
		n, err := tx.UpdateMembers(ctx, root.ID, &from, updates)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		result.RowsAffected = n

		// Freeze the series at its current extent. Anything generated
		// later would come from the unedited template and undo the
		// edit's intent.
		end, err := tx.MaxLiveInstanceDate(ctx, root.ID)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if end.IsZero() {
			end = recurrence.DateOnly(root.Date)
		}
		if err := tx.SetSeriesEnd(ctx, root.ID, &end); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		result.SeriesEnded = true
	case ScopeAll:
		root, err := getSeriesRoot(ctx, tx, child)
		if err != nil {
			return err
		}
		if len(updates) > 0 {
			if err := tx.UpdateFields(ctx, root.ID, updates); err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			n, err := tx.UpdateMembers(ctx, root.ID, nil, updates)
			if err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			result.RowsAffected = n + 1
		}
	default:
		return apperrors.ErrInvalidScope
	}
	return nil
}

// getObligation fetches by ID through the store, mapping missing rows to
// the API-level not found error.
func getObligation(ctx context.Context, tx ObligationStore, id string) (*models.Obligation, error) {
	o, err := tx.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrObligationNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return o, nil
}

// getSeriesRoot resolves an instance's root, failing closed when the root
// has gone missing.
func getSeriesRoot(ctx context.Context, tx ObligationStore, child *models.Obligation) (*models.Obligation, error) {
	root, err := tx.Get(ctx, *child.ParentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrSeriesIntegrity, "Series root no longer exists")
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return root, nil
}

func hasRecurrenceFields(p UpdateObligationParams) bool {
	return p.RecurringFrequency != nil || p.RecurringInterval != nil ||
		p.RecurringEndDate != nil || p.ClearRecurringEnd
}

func validateScope(scope MutationScope) error {
	switch scope {
	case ScopeThis, ScopeFuture, ScopeAll:
		return nil
	}
	return apperrors.ErrInvalidScope
}

// validateUpdateParams checks fields that are invalid regardless of the
// target.
func validateUpdateParams(p UpdateObligationParams) error {
	if p.Kind != nil {
		switch *p.Kind {
		case models.ObligationKindExpense, models.ObligationKindIncome:
		default:
			return apperrors.ErrInvalidKind
		}
	}
	if p.Title != nil && *p.Title == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Title cannot be empty")
	}
	if p.Amount != nil && !p.Amount.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must be greater than zero")
	}
	if p.RecurringEndDate != nil && p.ClearRecurringEnd {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Cannot set and clear the end date in one request")
	}
	return nil
}

// validateMergedTax applies the edit over the target and checks the tax
// fields still make sense together.
func validateMergedTax(target *models.Obligation, p UpdateObligationParams) error {
	merged := *target
	if p.Kind != nil {
		merged.Kind = *p.Kind
	}
	if p.Amount != nil {
		merged.Amount = *p.Amount
	}
	if p.TaxDeductible != nil {
		merged.TaxDeductible = *p.TaxDeductible
	}
	if p.IsAmortized != nil {
		merged.IsAmortized = *p.IsAmortized
	}
	if p.AmortizationYears != nil {
		merged.AmortizationYears = p.AmortizationYears
	}
	if p.AmortizationStart != nil {
		merged.AmortizationStart = p.AmortizationStart
	}

	if merged.TaxDeductible && merged.Kind != models.ObligationKindExpense {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Only expenses can be tax deductible")
	}
	if merged.IsAmortized {
		if !merged.TaxDeductible {
			return apperrors.WithMessage(apperrors.ErrInvalidAmortization, "Amortization requires a tax-deductible expense")
		}
		if merged.AmortizationYears == nil || merged.AmortizationStart == nil {
			return apperrors.ErrInvalidAmortization
		}
		terms := amortization.Terms{Amount: merged.Amount, Years: *merged.AmortizationYears, Start: *merged.AmortizationStart}
		if err := terms.Validate(); err != nil {
			return apperrors.Wrap(apperrors.ErrInvalidAmortization, err)
		}
	}
	return nil
}

// validateMergedTemplate applies the edit over the root and checks the
// recurrence template still parses.
func validateMergedTemplate(root *models.Obligation, p UpdateObligationParams) error {
	frequency := root.RecurringFrequency
	if p.RecurringFrequency != nil {
		frequency = p.RecurringFrequency
	}
	interval := root.RecurringInterval
	if p.RecurringInterval != nil {
		interval = p.RecurringInterval
	}
	if frequency == nil || interval == nil {
		return apperrors.WithMessage(apperrors.ErrInvalidFrequency, "Recurring obligations require a frequency and interval")
	}
	if _, _, err := recurrence.ParseFrequency(*frequency, *interval); err != nil {
		return mapFrequencyInputErr(err)
	}
	if p.RecurringEndDate != nil &&
		recurrence.DateOnly(*p.RecurringEndDate).Before(recurrence.DateOnly(root.Date)) {
		return apperrors.ErrInvalidEndDate
	}
	return nil
}

// buildCommonUpdates collects the copied-field changes shared by every
// row a scope covers.
func buildCommonUpdates(p UpdateObligationParams) map[string]interface{} {
	updates := make(map[string]interface{})
	if p.Kind != nil {
		updates["kind"] = *p.Kind
	}
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.Notes != nil {
		updates["notes"] = *p.Notes
	}
	if p.Category != nil {
		updates["category"] = *p.Category
	}
	if p.PropertyID != nil {
		updates["property_id"] = *p.PropertyID
	}
	if p.Amount != nil {
		updates["amount"] = *p.Amount
	}
	if p.TaxDeductible != nil {
		updates["tax_deductible"] = *p.TaxDeductible
	}
	if p.IsAmortized != nil {
		updates["is_amortized"] = *p.IsAmortized
	}
	if p.AmortizationYears != nil {
		updates["amortization_years"] = *p.AmortizationYears
	}
	if p.AmortizationStart != nil {
		updates["amortization_start"] = *p.AmortizationStart
	}
	return updates
}
