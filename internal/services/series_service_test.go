package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"rentfolio/internal/models"
	"rentfolio/internal/testutil"
)

func TestDeleteObligation(t *testing.T) {
	t.Run("standalone_any_scope", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeriesService(NewObligationStore(db))
		o := testutil.CreateTestObligation(t, db, day(2024, time.May, 10))

		res, err := svc.Delete(context.Background(), o.ID, ScopeThis)
		testutil.AssertNoError(t, err)

		if res.RowsAffected != 1 {
			t.Errorf("expected 1 row affected, got %d", res.RowsAffected)
		}
		var count int64
		db.Model(&models.Obligation{}).Where("id = ?", o.ID).Count(&count)
		if count != 0 {
			t.Error("expected the obligation to be gone")
		}
	})

	t.Run("root_this_removes_series", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeriesService(NewObligationStore(db))

		root := testutil.CreateTestRecurringRoot(t, db, day(2024, time.January, 15), "months", 1)
		testutil.CreateTestInstance(t, db, root, day(2024, time.February, 15))
		testutil.CreateTestInstance(t, db, root, day(2024, time.March, 15))

		res, err := svc.Delete(context.Background(), root.ID, ScopeThis)
		testutil.AssertNoError(t, err)

		if res.RowsAffected != 3 {
			t.Errorf("expected 3 rows affected, got %d", res.RowsAffected)
		}
		var count int64
		db.Model(&models.Obligation{}).Count(&count)
		if count != 0 {
			t.Errorf("expected no live rows, got %d", count)
		}
	})

	t.Run("root_all_removes_series", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeriesService(NewObligationStore(db))

		root := testutil.CreateTestRecurringRoot(t, db, day(2024, time.January, 15), "months", 1)
		testutil.CreateTestInstance(t, db, root, day(2024, time.February, 15))

		res, err := svc.Delete(context.Background(), root.ID, ScopeAll)
		testutil.AssertNoError(t, err)

		if res.RowsAffected != 2 {
			t.Errorf("expected 2 rows affected, got %d", res.RowsAffected)
		}
		var count int64
		db.Model(&models.Obligation{}).Count(&count)
		if count != 0 {
			t.Errorf("expected no live rows, got %d", count)
		}
	})

	t.Run("root_future_keeps_own_occurrence", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeriesService(NewObligationStore(db))

		root := testutil.CreateTestRecurringRoot(t, db, day(2024, time.January, 15), "months", 1)
		testutil.CreateTestInstance(t, db, root, day(2024, time.February, 15))
		testutil.CreateTestInstance(t, db, root, day(2024, time.March, 15))

		res, err := svc.Delete(context.Background(), root.ID, ScopeFuture)
		testutil.AssertNoError(t, err)

		if res.RowsAffected != 2 {
			t.Errorf("expected 2 rows affected, got %d", res.RowsAffected)
		}
		if !res.SeriesEnded {
			t.Error("expected the series to be ended")
		}

		var fresh models.Obligation
		if err := db.First(&fresh, "id = ?", root.ID).Error; err != nil {
			t.Fatalf("expected the root to survive: %v", err)
		}
		if fresh.RecurringEndDate == nil || !fresh.RecurringEndDate.Equal(day(2024, time.January, 15)) {
			t.Errorf("expected the series to end on the anchor, got %v", fresh.RecurringEndDate)
		}
		var children int64
		db.Model(&models.Obligation{}).Where("parent_id = ?", root.ID).Count(&children)
		if children != 0 {
			t.Errorf("expected no live instances, got %d", children)
		}
	})

	t.Run("instance_this_leaves_tombstone", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeriesService(NewObligationStore(db))

		root := testutil.CreateTestRecurringRoot(t, db, day(2024, time.January, 15), "months", 1)
		target := testutil.CreateTestInstance(t, db, root, day(2024, time.February, 15))
		testutil.CreateTestInstance(t, db, root, day(2024, time.March, 15))

		res, err := svc.Delete(context.Background(), target.ID, ScopeThis)
		testutil.AssertNoError(t, err)

		if res.RowsAffected != 1 {
			t.Errorf("expected 1 row affected, got %d", res.RowsAffected)
		}

		var live, total int64
		db.Model(&models.Obligation{}).Where("parent_id = ?", root.ID).Count(&live)
		db.Unscoped().Model(&models.Obligation{}).Where("parent_id = ?", root.ID).Count(&total)
		if live != 1 {
			t.Errorf("expected 1 live instance, got %d", live)
		}
		if total != 2 {
			t.Errorf("expected the removed instance to remain as a tombstone, got %d rows", total)
		}
	})

	t.Run("instance_future_removes_tail_and_ends_series", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeriesService(NewObligationStore(db))

		root := testutil.CreateTestRecurringRoot(t, db, day(2024, time.January, 15), "months", 1)
		testutil.CreateTestInstance(t, db, root, day(2024, time.February, 15))
		target := testutil.CreateTestInstance(t, db, root, day(2024, time.March, 15))
		testutil.CreateTestInstance(t, db, root, day(2024, time.April, 15))

		res, err := svc.Delete(context.Background(), target.ID, ScopeFuture)
		testutil.AssertNoError(t, err)

		if res.RowsAffected != 2 {
			t.Errorf("expected 2 rows affected, got %d", res.RowsAffected)
		}
		if !res.SeriesEnded {
			t.Error("expected the series to be ended")
		}

		var fresh models.Obligation
		if err := db.First(&fresh, "id = ?", root.ID).Error; err != nil {
			t.Fatalf("failed to reload root: %v", err)
		}
		if fresh.RecurringEndDate == nil || !fresh.RecurringEndDate.Equal(day(2024, time.March, 14)) {
			t.Errorf("expected the series to end the day before the target, got %v", fresh.RecurringEndDate)
		}

		var dates []time.Time
		db.Model(&models.Obligation{}).Where("parent_id = ?", root.ID).Order("date asc").Pluck("date", &dates)
		if len(dates) != 1 || !dates[0].Equal(day(2024, time.February, 15)) {
			t.Errorf("expected only the February instance to survive, got %v", dates)
		}
	})

	t.Run("instance_all_removes_series_including_root", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeriesService(NewObligationStore(db))

		root := testutil.CreateTestRecurringRoot(t, db, day(2024, time.January, 15), "months", 1)
		target := testutil.CreateTestInstance(t, db, root, day(2024, time.February, 15))
		testutil.CreateTestInstance(t, db, root, day(2024, time.March, 15))

		res, err := svc.Delete(context.Background(), target.ID, ScopeAll)
		testutil.AssertNoError(t, err)

		if res.RowsAffected != 3 {
			t.Errorf("expected 3 rows affected, got %d", res.RowsAffected)
		}
		var count int64
		db.Model(&models.Obligation{}).Count(&count)
		if count != 0 {
			t.Errorf("expected no live rows, got %d", count)
		}
	})

	t.Run("orphaned_instance_fails_closed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeriesService(NewObligationStore(db))

		root := testutil.CreateTestRecurringRoot(t, db, day(2024, time.January, 15), "months", 1)
		child := testutil.CreateTestInstance(t, db, root, day(2024, time.February, 15))
		if err := db.Delete(&models.Obligation{}, "id = ?", root.ID).Error; err != nil {
			t.Fatalf("failed to delete root: %v", err)
		}

		_, err := svc.Delete(context.Background(), child.ID, ScopeFuture)
		testutil.AssertAppError(t, err, "SERIES_INTEGRITY")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeriesService(NewObligationStore(db))

		_, err := svc.Delete(context.Background(), "0190f7a0-0000-7000-8000-000000000000", ScopeThis)
		testutil.AssertAppError(t, err, "OBLIGATION_NOT_FOUND")
	})

	t.Run("invalid_scope", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeriesService(NewObligationStore(db))
		o := testutil.CreateTestObligation(t, db, day(2024, time.May, 10))

		_, err := svc.Delete(context.Background(), o.ID, MutationScope("sometimes"))
		testutil.AssertAppError(t, err, "INVALID_SCOPE")
	})
}

func TestUpdateObligation(t *testing.T) {
	t.Run("standalone_updates_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeriesService(NewObligationStore(db))
		o := testutil.CreateTestObligation(t, db, day(2024, time.May, 10))

		title := "Chimney sweep"
		amount := decimal.RequireFromString("175.50")
		newDate := day(2024, time.May, 12)
		res, err := svc.Update(context.Background(), o.ID, ScopeThis, UpdateObligationParams{
			Title:  &title,
			Amount: &amount,
			Date:   &newDate,
		})
		testutil.AssertNoError(t, err)

		if res.RowsAffected != 1 {
			t.Errorf("expected 1 row affected, got %d", res.RowsAffected)
		}
		if res.Target.Title != "Chimney sweep" {
			t.Errorf("expected updated title, got %s", res.Target.Title)
		}
		if !res.Target.Amount.Equal(amount) {
			t.Errorf("expected updated amount, got %s", res.Target.Amount)
		}
		if !res.Target.Date.Equal(newDate) {
			t.Errorf("expected updated date, got %v", res.Target.Date)
		}
	})

	t.Run("standalone_rejects_recurrence_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeriesService(NewObligationStore(db))
		o := testutil.CreateTestObligation(t, db, day(2024, time.May, 10))

		freq := "months"
		_, err := svc.Update(context.Background(), o.ID, ScopeThis, UpdateObligationParams{
			RecurringFrequency: &freq,
		})
		testutil.AssertAppError(t, err, "NOT_RECURRING")
	})

	t.Run("root_this_updates_root_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeriesService(NewObligationStore(db))

		root := testutil.CreateTestRecurringRoot(t, db, day(2024, time.January, 15), "months", 1)
		child := testutil.CreateTestInstance(t, db, root, day(2024, time.February, 15))

		title := "Adjusted rent"
		res, err := svc.Update(context.Background(), root.ID, ScopeThis, UpdateObligationParams{Title: &title})
		testutil.AssertNoError(t, err)

		if res.RowsAffected != 1 {
			t.Errorf("expected 1 row affected, got %d", res.RowsAffected)
		}
		if res.Target.Title != "Adjusted rent" {
			t.Errorf("expected updated root title, got %s", res.Target.Title)
		}

		var freshChild models.Obligation
		db.First(&freshChild, "id = ?", child.ID)
		if freshChild.Title == "Adjusted rent" {
			t.Error("expected the instance to keep its own title")
		}
	})

	t.Run("root_all_propagates_to_instances", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeriesService(NewObligationStore(db))

		root := testutil.CreateTestRecurringRoot(t, db, day(2024, time.January, 15), "months", 1)
		c1 := testutil.CreateTestInstance(t, db, root, day(2024, time.February, 15))
		c2 := testutil.CreateTestInstance(t, db, root, day(2024, time.March, 15))

		amount := decimal.NewFromInt(1350)
		res, err := svc.Update(context.Background(), root.ID, ScopeAll, UpdateObligationParams{Amount: &amount})
		testutil.AssertNoError(t, err)

		if res.RowsAffected != 3 {
			t.Errorf("expected 3 rows affected, got %d", res.RowsAffected)
		}
		for _, id := range []string{c1.ID, c2.ID} {
			var fresh models.Obligation
			db.First(&fresh, "id = ?", id)
			if !fresh.Amount.Equal(amount) {
				t.Errorf("expected instance %s amount to follow the root, got %s", id, fresh.Amount)
			}
		}
	})

	t.Run("root_date_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeriesService(NewObligationStore(db))

		root := testutil.CreateTestRecurringRoot(t, db, day(2024, time.January, 15), "months", 1)

		d := day(2024, time.January, 20)
		_, err := svc.Update(context.Background(), root.ID, ScopeThis, UpdateObligationParams{Date: &d})
		testutil.AssertAppError(t, err, "DATE_NOT_EDITABLE")
	})

	t.Run("root_template_edit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeriesService(NewObligationStore(db))

		root := testutil.CreateTestRecurringRoot(t, db, day(2024, time.January, 15), "months", 1)

		freq := "weeks"
		interval := 2
		res, err := svc.Update(context.Background(), root.ID, ScopeThis, UpdateObligationParams{
			RecurringFrequency: &freq,
			RecurringInterval:  &interval,
		})
		testutil.AssertNoError(t, err)

		if *res.Target.RecurringFrequency != "weeks" || *res.Target.RecurringInterval != 2 {
			t.Errorf("expected template weeks/2, got %s/%d", *res.Target.RecurringFrequency, *res.Target.RecurringInterval)
		}
	})

	t.Run("root_invalid_merged_template", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeriesService(NewObligationStore(db))

		root := testutil.CreateTestRecurringRoot(t, db, day(2024, time.January, 15), "months", 1)

		interval := 0
		_, err := svc.Update(context.Background(), root.ID, ScopeThis, UpdateObligationParams{
			RecurringInterval: &interval,
		})
		testutil.AssertAppError(t, err, "INVALID_INTERVAL")
	})

	t.Run("root_shortened_end_deletes_tail", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeriesService(NewObligationStore(db))

		root := testutil.CreateTestRecurringRoot(t, db, day(2024, time.January, 15), "months", 1)
		testutil.CreateTestInstance(t, db, root, day(2024, time.February, 15))
		testutil.CreateTestInstance(t, db, root, day(2024, time.March, 15))
		testutil.CreateTestInstance(t, db, root, day(2024, time.April, 15))

		end := day(2024, time.February, 28)
		res, err := svc.Update(context.Background(), root.ID, ScopeThis, UpdateObligationParams{
			RecurringEndDate: &end,
		})
		testutil.AssertNoError(t, err)

		if !res.SeriesEnded {
			t.Error("expected the series to be ended")
		}
		if res.RowsAffected != 3 {
			t.Errorf("expected 3 rows affected (root plus two deletions), got %d", res.RowsAffected)
		}

		var dates []time.Time
		db.Model(&models.Obligation{}).Where("parent_id = ?", root.ID).Order("date asc").Pluck("date", &dates)
		if len(dates) != 1 || !dates[0].Equal(day(2024, time.February, 15)) {
			t.Errorf("expected only the February instance to survive, got %v", dates)
		}
	})

	t.Run("root_end_before_anchor_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeriesService(NewObligationStore(db))

		root := testutil.CreateTestRecurringRoot(t, db, day(2024, time.January, 15), "months", 1)

		end := day(2024, time.January, 1)
		_, err := svc.Update(context.Background(), root.ID, ScopeThis, UpdateObligationParams{
			RecurringEndDate: &end,
		})
		testutil.AssertAppError(t, err, "INVALID_END_DATE")
	})

	t.Run("root_clear_end_reopens_series", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeriesService(NewObligationStore(db))

		root := testutil.CreateTestRecurringRoot(t, db, day(2024, time.January, 15), "months", 1)
		end := day(2024, time.June, 15)
		if err := db.Model(root).Update("recurring_end_date", end).Error; err != nil {
			t.Fatalf("failed to set end date: %v", err)
		}

		res, err := svc.Update(context.Background(), root.ID, ScopeThis, UpdateObligationParams{
			ClearRecurringEnd: true,
		})
		testutil.AssertNoError(t, err)

		if res.Target.RecurringEndDate != nil {
			t.Errorf("expected the end date to be cleared, got %v", res.Target.RecurringEndDate)
		}
	})

	t.Run("set_and_clear_end_conflict", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeriesService(NewObligationStore(db))

		root := testutil.CreateTestRecurringRoot(t, db, day(2024, time.January, 15), "months", 1)

		end := day(2024, time.June, 15)
		_, err := svc.Update(context.Background(), root.ID, ScopeThis, UpdateObligationParams{
			RecurringEndDate:  &end,
			ClearRecurringEnd: true,
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("instance_this_updates_single_row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeriesService(NewObligationStore(db))

		root := testutil.CreateTestRecurringRoot(t, db, day(2024, time.January, 15), "months", 1)
		target := testutil.CreateTestInstance(t, db, root, day(2024, time.February, 15))
		other := testutil.CreateTestInstance(t, db, root, day(2024, time.March, 15))

		amount := decimal.NewFromInt(900)
		res, err := svc.Update(context.Background(), target.ID, ScopeThis, UpdateObligationParams{Amount: &amount})
		testutil.AssertNoError(t, err)

		if res.RowsAffected != 1 {
			t.Errorf("expected 1 row affected, got %d", res.RowsAffected)
		}
		if !res.Target.Amount.Equal(amount) {
			t.Errorf("expected updated amount, got %s", res.Target.Amount)
		}

		var freshOther models.Obligation
		db.First(&freshOther, "id = ?", other.ID)
		if freshOther.Amount.Equal(amount) {
			t.Error("expected the sibling to keep its own amount")
		}
	})

	t.Run("instance_date_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeriesService(NewObligationStore(db))

		root := testutil.CreateTestRecurringRoot(t, db, day(2024, time.January, 15), "months", 1)
		target := testutil.CreateTestInstance(t, db, root, day(2024, time.February, 15))

		d := day(2024, time.February, 20)
		_, err := svc.Update(context.Background(), target.ID, ScopeThis, UpdateObligationParams{Date: &d})
		testutil.AssertAppError(t, err, "DATE_NOT_EDITABLE")
	})

	t.Run("instance_template_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeriesService(NewObligationStore(db))

		root := testutil.CreateTestRecurringRoot(t, db, day(2024, time.January, 15), "months", 1)
		target := testutil.CreateTestInstance(t, db, root, day(2024, time.February, 15))

		freq := "weeks"
		_, err := svc.Update(context.Background(), target.ID, ScopeThis, UpdateObligationParams{
			RecurringFrequency: &freq,
		})
		testutil.AssertAppError(t, err, "TEMPLATE_NOT_EDITABLE")
	})

	t.Run("instance_future_updates_tail_and_freezes_series", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeriesService(NewObligationStore(db))

		root := testutil.CreateTestRecurringRoot(t, db, day(2024, time.January, 15), "months", 1)
		before := testutil.CreateTestInstance(t, db, root, day(2024, time.February, 15))
		target := testutil.CreateTestInstance(t, db, root, day(2024, time.March, 15))
		testutil.CreateTestInstance(t, db, root, day(2024, time.April, 15))

		amount := decimal.NewFromInt(999)
		res, err := svc.Update(context.Background(), target.ID, ScopeFuture, UpdateObligationParams{Amount: &amount})
		testutil.AssertNoError(t, err)

		if res.RowsAffected != 2 {
			t.Errorf("expected 2 rows affected, got %d", res.RowsAffected)
		}
		if !res.SeriesEnded {
			t.Error("expected the series to be frozen")
		}

		var freshBefore models.Obligation
		db.First(&freshBefore, "id = ?", before.ID)
		if freshBefore.Amount.Equal(amount) {
			t.Error("expected the earlier instance to keep its own amount")
		}

		var freshRoot models.Obligation
		db.First(&freshRoot, "id = ?", root.ID)
		if freshRoot.RecurringEndDate == nil || !freshRoot.RecurringEndDate.Equal(day(2024, time.April, 15)) {
			t.Errorf("expected the series frozen at its last instance, got %v", freshRoot.RecurringEndDate)
		}
		if !freshRoot.Amount.Equal(decimal.NewFromInt(1200)) {
			t.Error("expected the root's own amount to be untouched")
		}
	})

	t.Run("instance_all_updates_whole_series", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeriesService(NewObligationStore(db))

		root := testutil.CreateTestRecurringRoot(t, db, day(2024, time.January, 15), "months", 1)
		target := testutil.CreateTestInstance(t, db, root, day(2024, time.February, 15))
		testutil.CreateTestInstance(t, db, root, day(2024, time.March, 15))

		category := "utilities"
		res, err := svc.Update(context.Background(), target.ID, ScopeAll, UpdateObligationParams{Category: &category})
		testutil.AssertNoError(t, err)

		if res.RowsAffected != 3 {
			t.Errorf("expected 3 rows affected, got %d", res.RowsAffected)
		}

		var freshRoot models.Obligation
		db.First(&freshRoot, "id = ?", root.ID)
		if freshRoot.Category != "utilities" {
			t.Errorf("expected the root category to follow, got %s", freshRoot.Category)
		}
		var fresh models.Obligation
		db.First(&fresh, "id = ?", target.ID)
		if fresh.RecurringEndDate != nil {
			t.Error("whole-series edits must not freeze the series")
		}
	})

	t.Run("merged_tax_rules_enforced", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeriesService(NewObligationStore(db))
		o := testutil.CreateTestDeductibleExpense(t, db, day(2024, time.May, 10), "200")

		kind := models.ObligationKindIncome
		_, err := svc.Update(context.Background(), o.ID, ScopeThis, UpdateObligationParams{Kind: &kind})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("merged_amortization_rules_enforced", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeriesService(NewObligationStore(db))
		o := testutil.CreateTestDeductibleExpense(t, db, day(2024, time.May, 10), "200")

		amortized := true
		_, err := svc.Update(context.Background(), o.ID, ScopeThis, UpdateObligationParams{IsAmortized: &amortized})
		testutil.AssertAppError(t, err, "INVALID_AMORTIZATION")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeriesService(NewObligationStore(db))

		title := "Ghost"
		_, err := svc.Update(context.Background(), "0190f7a0-0000-7000-8000-000000000000", ScopeThis, UpdateObligationParams{Title: &title})
		testutil.AssertAppError(t, err, "OBLIGATION_NOT_FOUND")
	})
}
