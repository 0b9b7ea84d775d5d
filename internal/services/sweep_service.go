package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	apperrors "rentfolio/internal/errors"
	"rentfolio/internal/logger"
	"rentfolio/internal/models"
	"rentfolio/internal/pagination"
	"rentfolio/internal/recurrence"
)

// sweepService materializes due instances for every recurring root and
// records the outcome of each run.
type sweepService struct {
	db    *gorm.DB
	store ObligationStore
	mu    sync.Mutex
}

// NewSweepService creates a new SweepServicer.
func NewSweepService(db *gorm.DB, store ObligationStore) SweepServicer {
	return &sweepService{db: db, store: store}
}

// Run executes one sweep over all recurring roots. Each root is processed
// in its own transaction, so one broken series cannot block the rest; a
// failed root is counted and logged, and the sweep moves on. Running the
// sweep twice in a row is a no-op, since already-materialized dates are
// never re-emitted.
func (s *sweepService) Run(ctx context.Context, trigger string) (*models.SweepRun, error) {
	if !s.mu.TryLock() {
		return nil, apperrors.ErrSweepInProgress
	}
	defer s.mu.Unlock()

	run := &models.SweepRun{
		Status:    models.SweepRunStatusRunning,
		Trigger:   trigger,
		StartedAt: time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	roots, err := s.store.ListRecurringRoots(ctx)
	if err != nil {
		s.finalize(run, models.SweepRunStatusFailed, err.Error())
		return run, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	log := logger.Get()
	now := time.Now()
	bounds := recurrence.DefaultBounds()

	for i := range roots {
		if err := ctx.Err(); err != nil {
			s.finalize(run, models.SweepRunStatusFailed, "sweep canceled: "+err.Error())
			return run, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		rootID := roots[i].ID
		run.RootsScanned++

		created, truncated, err := s.sweepRoot(ctx, rootID, now, bounds)
		if err != nil {
			run.RootsFailed++
			log.Warnw("sweep skipped recurring obligation",
				"error", err,
				"obligation_id", rootID,
			)
			continue
		}
		run.InstancesCreated += created
		if truncated {
			run.Truncated = true
		}
	}

	s.finalize(run, models.SweepRunStatusCompleted, "")
	log.Infow("sweep finished",
		"sweep_run_id", run.ID,
		"trigger", trigger,
		"roots_scanned", run.RootsScanned,
		"roots_failed", run.RootsFailed,
		"instances_created", run.InstancesCreated,
		"truncated", run.Truncated,
	)
	return run, nil
}

// sweepRoot re-reads the root inside its transaction, so a series deleted
// or reshaped after listing is skipped rather than acted on stale.
func (s *sweepService) sweepRoot(ctx context.Context, rootID string, now time.Time, bounds recurrence.Bounds) (created int, truncated bool, err error) {
	err = s.store.Transaction(ctx, func(tx ObligationStore) error {
		root, err := tx.Get(ctx, rootID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if !root.IsRoot() {
			return nil
		}

		created, truncated, err = backfillRoot(ctx, tx, root, now, bounds)
		return err
	})
	return created, truncated, err
}

// finalize persists the run's terminal state. It deliberately avoids the
// request context so a canceled sweep still gets its outcome recorded.
func (s *sweepService) finalize(run *models.SweepRun, status models.SweepRunStatus, errMsg string) {
	finished := time.Now().UTC()
	run.Status = status
	run.FinishedAt = &finished
	run.Error = errMsg

	updates := map[string]interface{}{
		"status":            status,
		"finished_at":       finished,
		"roots_scanned":     run.RootsScanned,
		"roots_failed":      run.RootsFailed,
		"instances_created": run.InstancesCreated,
		"truncated":         run.Truncated,
		"error":             errMsg,
	}
	if err := s.db.Model(&models.SweepRun{}).Where("id = ?", run.ID).Updates(updates).Error; err != nil {
		logger.Get().Errorw("failed to finalize sweep run",
			"error", err,
			"sweep_run_id", run.ID,
		)
	}
}

// ListRuns returns past sweep runs, most recent first.
func (s *sweepService) ListRuns(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.SweepRun], error) {
	page.Defaults()

	base := s.db.WithContext(ctx).Model(&models.SweepRun{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var runs []models.SweepRun
	if err := base.Order("started_at desc").Scopes(pagination.Paginate(page)).Find(&runs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(runs, page.Page, page.PageSize, totalItems)
	return &result, nil
}
