package services

import (
	"testing"
	"time"

	"plutus/internal/calc"
	"plutus/internal/models"
	"plutus/internal/pagination"
	"plutus/internal/testutil"
)

func TestComputeAndRecordSnapshot(t *testing.T) {
	t.Run("computes_breakdown", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSnapshotService(db, calc.NewIncomeCalculator(nil))

		testutil.CreateTestDividendAsset(t, db, 100) // $25,000 at current price
		testutil.CreateTestRentalAsset(t, db, 1200)  // $300,000 value
		testutil.CreateTestLiability(t, db, 250000, 1400)

		snapshot, err := svc.ComputeAndRecordSnapshot(time.Date(2026, 8, 1, 3, 0, 0, 0, time.UTC))
		testutil.AssertNoError(t, err)

		testutil.AssertFloatEquals(t, 325000, snapshot.AssetValue, "asset value")
		testutil.AssertFloatEquals(t, 250000, snapshot.LiabilityBalance, "liability balance")
		testutil.AssertFloatEquals(t, 75000, snapshot.TotalNetWorth, "total net worth")
		// $800/yr dividends plus $14,400/yr rent.
		testutil.AssertFloatEquals(t, 15200, snapshot.ProjectedAnnualIncome, "projected annual income")
	})

	t.Run("upserts_at_same_timestamp", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSnapshotService(db, calc.NewIncomeCalculator(nil))

		recordedAt := time.Date(2026, 8, 1, 3, 0, 0, 0, time.UTC)
		first, err := svc.ComputeAndRecordSnapshot(recordedAt)
		testutil.AssertNoError(t, err)

		testutil.CreateTestBondAsset(t, db, 10000, 4)

		second, err := svc.ComputeAndRecordSnapshot(recordedAt)
		testutil.AssertNoError(t, err)

		if first.ID != second.ID {
			t.Errorf("expected same snapshot row, got %s and %s", first.ID, second.ID)
		}
		testutil.AssertFloatEquals(t, 10000, second.AssetValue, "updated asset value")

		var count int64
		db.Model(&models.NetWorthSnapshot{}).Count(&count)
		if count != 1 {
			t.Errorf("expected 1 snapshot row, got %d", count)
		}
	})
}

func TestGetSnapshots(t *testing.T) {
	t.Run("date_range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSnapshotService(db, calc.NewIncomeCalculator(nil))

		for month := 1; month <= 6; month++ {
			_, err := svc.ComputeAndRecordSnapshot(time.Date(2026, time.Month(month), 1, 3, 0, 0, 0, time.UTC))
			testutil.AssertNoError(t, err)
		}

		from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)
		page := pagination.PageRequest{Page: 1, PageSize: 20}

		result, err := svc.GetSnapshots(&from, &to, page)
		testutil.AssertNoError(t, err)
		if result.TotalItems != 3 {
			t.Errorf("expected 3 snapshots in range, got %d", result.TotalItems)
		}

		// Newest first.
		if len(result.Data) == 3 && !result.Data[0].RecordedAt.After(result.Data[2].RecordedAt) {
			t.Error("expected snapshots ordered newest first")
		}

		all, err := svc.GetSnapshots(nil, nil, page)
		testutil.AssertNoError(t, err)
		if all.TotalItems != 6 {
			t.Errorf("expected 6 snapshots without range, got %d", all.TotalItems)
		}
	})
}
