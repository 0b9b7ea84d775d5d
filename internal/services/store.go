package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"rentfolio/internal/models"
)

// gormObligationStore is the GORM-backed ObligationStore.
type gormObligationStore struct {
	db *gorm.DB
}

// NewObligationStore creates an ObligationStore on the given database.
func NewObligationStore(db *gorm.DB) ObligationStore {
	return &gormObligationStore{db: db}
}

// Transaction runs fn inside a database transaction with a store bound to it.
func (s *gormObligationStore) Transaction(ctx context.Context, fn func(ObligationStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormObligationStore{db: tx})
	})
}

// Create persists a new obligation.
func (s *gormObligationStore) Create(ctx context.Context, o *models.Obligation) error {
	return s.db.WithContext(ctx).Create(o).Error
}

// Get fetches an obligation by ID. Returns gorm.ErrRecordNotFound untouched;
// callers map it to an API error.
func (s *gormObligationStore) Get(ctx context.Context, id string) (*models.Obligation, error) {
	var o models.Obligation
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ListRecurringRoots returns all live recurring roots, oldest first.
func (s *gormObligationStore) ListRecurringRoots(ctx context.Context) ([]models.Obligation, error) {
	var roots []models.Obligation
	err := s.db.WithContext(ctx).
		Where("is_recurring = ? AND parent_id IS NULL", true).
		Order("date asc").
		Find(&roots).Error
	if err != nil {
		return nil, err
	}
	return roots, nil
}

// ListInstanceDates returns every date an instance of the root has ever
// occupied. Soft-deleted rows are included on purpose: a date the user
// removed must never be regenerated.
func (s *gormObligationStore) ListInstanceDates(ctx context.Context, rootID string) ([]time.Time, error) {
	var dates []time.Time
	err := s.db.WithContext(ctx).Unscoped().
		Model(&models.Obligation{}).
		Where("parent_id = ?", rootID).
		Order("date asc").
		Pluck("date", &dates).Error
	if err != nil {
		return nil, err
	}
	return dates, nil
}

// InsertInstances persists generated instances and returns how many were
// created.
func (s *gormObligationStore) InsertInstances(ctx context.Context, instances []*models.Obligation) (int, error) {
	if len(instances) == 0 {
		return 0, nil
	}
	if err := s.db.WithContext(ctx).Create(instances).Error; err != nil {
		return 0, err
	}
	return len(instances), nil
}

// UpdateFields applies a column update map to a single obligation.
func (s *gormObligationStore) UpdateFields(ctx context.Context, id string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Model(&models.Obligation{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// UpdateMembers applies a column update map to the root's instances.
func (s *gormObligationStore) UpdateMembers(ctx context.Context, rootID string, from *time.Time, updates map[string]interface{}) (int64, error) {
	if len(updates) == 0 {
		return 0, nil
	}
	q := s.db.WithContext(ctx).
		Model(&models.Obligation{}).
		Where("parent_id = ?", rootID)
	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	res := q.Updates(updates)
	return res.RowsAffected, res.Error
}

// Delete soft-deletes a single obligation.
func (s *gormObligationStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Obligation{}).Error
}

// DeleteMembers soft-deletes the root's instances.
func (s *gormObligationStore) DeleteMembers(ctx context.Context, rootID string, from *time.Time) (int64, error) {
	q := s.db.WithContext(ctx).Where("parent_id = ?", rootID)
	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	res := q.Delete(&models.Obligation{})
	return res.RowsAffected, res.Error
}

// MaxLiveInstanceDate returns the latest date among the root's non-deleted
// instances, or the zero time when none remain.
func (s *gormObligationStore) MaxLiveInstanceDate(ctx context.Context, rootID string) (time.Time, error) {
	var max *time.Time
	err := s.db.WithContext(ctx).
		Model(&models.Obligation{}).
		Where("parent_id = ?", rootID).
		Select("MAX(date)").
		Scan(&max).Error
	if err != nil {
		return time.Time{}, err
	}
	if max == nil {
		return time.Time{}, nil
	}
	return *max, nil
}

// SetSeriesEnd sets or clears the root's recurrence end date.
func (s *gormObligationStore) SetSeriesEnd(ctx context.Context, rootID string, end *time.Time) error {
	return s.db.WithContext(ctx).
		Model(&models.Obligation{}).
		Where("id = ?", rootID).
		Update("recurring_end_date", end).Error
}
