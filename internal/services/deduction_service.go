package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"rentfolio/internal/amortization"
	apperrors "rentfolio/internal/errors"
	"rentfolio/internal/logger"
	"rentfolio/internal/models"
)

// deductionService aggregates tax-deductible expenses into yearly reports.
type deductionService struct {
	db *gorm.DB
}

// NewDeductionService creates a new DeductionServicer.
func NewDeductionService(db *gorm.DB) DeductionServicer {
	return &deductionService{db: db}
}

// YearReport builds the deduction report for a tax year. Directly
// deductible expenses count in the year they are dated; amortized
// expenses contribute their spread share for the year regardless of when
// they were paid. Amortized rows with incomplete terms are excluded and
// logged rather than guessed at.
func (s *deductionService) YearReport(ctx context.Context, year int) (*DeductionReport, error) {
	if year < 1000 || year > 9999 {
		return nil, apperrors.ErrInvalidYear
	}

	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	nextYearStart := yearStart.AddDate(1, 0, 0)

	var rows []models.Obligation
	err := s.db.WithContext(ctx).
		Where("kind = ? AND tax_deductible = ?", models.ObligationKindExpense, true).
		Where("is_amortized = ? OR (date >= ? AND date < ?)", true, yearStart, nextYearStart).
		Order("date asc, id asc").
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	report := &DeductionReport{
		Year:           year,
		DirectTotal:    decimal.Zero,
		AmortizedTotal: decimal.Zero,
		Total:          decimal.Zero,
		Items:          []DeductionItem{},
	}

	for i := range rows {
		row := &rows[i]
		if row.IsAmortized {
			terms, ok := row.AmortizationTerms()
			if !ok {
				logger.Get().Warnw("amortized obligation has incomplete terms, excluded from report",
					"obligation_id", row.ID,
					"year", year,
				)
				continue
			}
			share := terms.DeductionForYear(year)
			if share.IsZero() {
				continue
			}
			report.AmortizedTotal = report.AmortizedTotal.Add(share)
			report.Items = append(report.Items, DeductionItem{
				ObligationID: row.ID,
				Title:        row.Title,
				Category:     row.Category,
				Date:         row.Date,
				Amortized:    true,
				Amount:       share,
			})
			continue
		}

		report.DirectTotal = report.DirectTotal.Add(row.Amount)
		report.Items = append(report.Items, DeductionItem{
			ObligationID: row.ID,
			Title:        row.Title,
			Category:     row.Category,
			Date:         row.Date,
			Amortized:    false,
			Amount:       row.Amount,
		})
	}

	report.Total = report.DirectTotal.Add(report.AmortizedTotal)
	return report, nil
}

// AmortizationStatus reports how far an amortized expense has been
// written off as of today.
func (s *deductionService) AmortizationStatus(ctx context.Context, obligationID string) (*amortization.Status, error) {
	var o models.Obligation
	if err := s.db.WithContext(ctx).First(&o, "id = ?", obligationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrObligationNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	terms, ok := o.AmortizationTerms()
	if !ok {
		return nil, apperrors.ErrNotAmortized
	}

	status := terms.StatusAt(time.Now())
	return &status, nil
}
