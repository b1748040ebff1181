package services

import (
	"testing"
	"time"

	"plutus/internal/calc"
	"plutus/internal/models"
	"plutus/internal/pagination"
	"plutus/internal/testutil"
)

func newTestAssetService(t *testing.T) (AssetServicer, func()) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc := NewAssetService(db, calc.NewIncomeCalculator(nil))
	return svc, func() { testutil.TeardownTestDB(t, db) }
}

func TestCreateAsset(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		svc, teardown := newTestAssetService(t)
		defer teardown()

		asset, err := svc.CreateAsset(AssetInput{
			Name:             "VTI",
			Type:             models.AssetTypeStock,
			PurchaseQuantity: 100,
			CurrentPrice:     250,
		})
		testutil.AssertNoError(t, err)

		if asset.ID == "" {
			t.Fatal("expected non-empty asset ID")
		}
		if asset.Quantity != 100 {
			t.Errorf("expected quantity to start at purchase quantity 100, got %f", asset.Quantity)
		}
		if asset.Currency != "USD" {
			t.Errorf("expected default currency USD, got %s", asset.Currency)
		}
	})
}

func TestGetAssets(t *testing.T) {
	t.Run("filters_by_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, calc.NewIncomeCalculator(nil))

		testutil.CreateTestDividendAsset(t, db, 10)
		testutil.CreateTestDividendAsset(t, db, 20)
		testutil.CreateTestBondAsset(t, db, 10000, 4)

		page := pagination.PageRequest{Page: 1, PageSize: 20}
		stock := models.AssetTypeStock
		result, err := svc.GetAssets(page, &stock)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Errorf("expected 2 stock assets, got %d", result.TotalItems)
		}

		all, err := svc.GetAssets(page, nil)
		testutil.AssertNoError(t, err)
		if all.TotalItems != 3 {
			t.Errorf("expected 3 assets without filter, got %d", all.TotalItems)
		}
	})
}

func TestRecordBuySell(t *testing.T) {
	t.Run("buy_increases_quantity", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, calc.NewIncomeCalculator(nil))
		asset := testutil.CreateTestDividendAsset(t, db, 100)

		tx, err := svc.RecordBuy(asset.ID, time.Now(), 50, 248.50, 1.00, "")
		testutil.AssertNoError(t, err)
		if tx.Type != models.AssetTransactionBuy {
			t.Errorf("expected buy transaction, got %s", tx.Type)
		}

		updated, err := svc.GetAssetByID(asset.ID)
		testutil.AssertNoError(t, err)
		if updated.Quantity != 150 {
			t.Errorf("expected quantity 150 after buy, got %f", updated.Quantity)
		}
	})

	t.Run("sell_decreases_quantity", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, calc.NewIncomeCalculator(nil))
		asset := testutil.CreateTestDividendAsset(t, db, 100)

		_, err := svc.RecordSell(asset.ID, time.Now(), 40, 255, 1.00, "")
		testutil.AssertNoError(t, err)

		updated, err := svc.GetAssetByID(asset.ID)
		testutil.AssertNoError(t, err)
		if updated.Quantity != 60 {
			t.Errorf("expected quantity 60 after sell, got %f", updated.Quantity)
		}
	})

	t.Run("sell_more_than_held", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, calc.NewIncomeCalculator(nil))
		asset := testutil.CreateTestDividendAsset(t, db, 10)

		_, err := svc.RecordSell(asset.ID, time.Now(), 11, 255, 0, "")
		testutil.AssertAppError(t, err, "INSUFFICIENT_QUANTITY")

		// Quantity unchanged after the rejected sell.
		updated, err := svc.GetAssetByID(asset.ID)
		testutil.AssertNoError(t, err)
		if updated.Quantity != 10 {
			t.Errorf("expected quantity 10, got %f", updated.Quantity)
		}
	})

	t.Run("unknown_asset", func(t *testing.T) {
		svc, teardown := newTestAssetService(t)
		defer teardown()

		_, err := svc.RecordBuy("00000000-0000-0000-0000-000000000000", time.Now(), 1, 1, 0, "")
		testutil.AssertAppError(t, err, "ASSET_NOT_FOUND")
	})
}

func TestGetAssetIncome(t *testing.T) {
	t.Run("computes_and_persists_cache", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, calc.NewIncomeCalculator(nil))
		asset := testutil.CreateTestDividendAsset(t, db, 100)

		result, err := svc.GetAssetIncome(asset.ID)
		testutil.AssertNoError(t, err)

		if result.CacheHit {
			t.Error("first calculation should be a cache miss")
		}
		// $2/share quarterly, 4 payments, 100 shares: $800/yr, $66.67/mo.
		testutil.AssertFloatEquals(t, 800.0/12, result.MonthlyAmount, "monthly amount")
		testutil.AssertFloatEquals(t, 800, result.AnnualAmount, "annual amount")

		// The update was written back, so the second call hits the cache.
		second, err := svc.GetAssetIncome(asset.ID)
		testutil.AssertNoError(t, err)
		if !second.CacheHit {
			t.Error("second calculation should be a cache hit")
		}
		testutil.AssertFloatEquals(t, result.MonthlyAmount, second.MonthlyAmount, "cached monthly amount")
	})

	t.Run("recomputes_after_quantity_change", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, calc.NewIncomeCalculator(nil))
		asset := testutil.CreateTestDividendAsset(t, db, 100)

		_, err := svc.GetAssetIncome(asset.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.RecordBuy(asset.ID, time.Now(), 100, 250, 0, "")
		testutil.AssertNoError(t, err)

		result, err := svc.GetAssetIncome(asset.ID)
		testutil.AssertNoError(t, err)
		if result.CacheHit {
			t.Error("expected cache miss after quantity change")
		}
		testutil.AssertFloatEquals(t, 1600, result.AnnualAmount, "annual amount after buy")
	})
}

func TestRefreshIncomeCaches(t *testing.T) {
	t.Run("refreshes_stale_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db, calc.NewIncomeCalculator(nil))

		testutil.CreateTestDividendAsset(t, db, 100)
		testutil.CreateTestBondAsset(t, db, 10000, 4)
		testutil.CreateTestRentalAsset(t, db, 1200)

		refreshed, err := svc.RefreshIncomeCaches()
		testutil.AssertNoError(t, err)
		if refreshed != 3 {
			t.Errorf("expected 3 assets refreshed, got %d", refreshed)
		}

		// Everything is warm now, so a second pass does nothing.
		refreshed, err = svc.RefreshIncomeCaches()
		testutil.AssertNoError(t, err)
		if refreshed != 0 {
			t.Errorf("expected 0 assets refreshed on second pass, got %d", refreshed)
		}
	})
}
