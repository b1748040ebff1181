package calc

import (
	"math"
	"testing"

	"plutus/internal/models"
)

func TestGetOrCompute(t *testing.T) {
	c := NewIncomeCalculator(nil)

	t.Run("miss_without_cache_record", func(t *testing.T) {
		result := c.GetOrCompute(dividendAsset())
		if result.CacheHit {
			t.Error("expected cache miss")
		}
		if result.CacheUpdate == nil {
			t.Fatal("expected cache update payload on miss")
		}
		if !almostEqual(result.MonthlyAmount, 200.0/3) {
			t.Errorf("expected monthly %v, got %v", 200.0/3, result.MonthlyAmount)
		}
		if !almostEqual(result.AnnualAmount, 800) {
			t.Errorf("expected annual 800, got %v", result.AnnualAmount)
		}
		if result.CacheUpdate.CalculationHash == "" {
			t.Error("expected cache update to carry a hash")
		}
		if result.CacheUpdate.LastCalculated.IsZero() {
			t.Error("expected cache update to carry a timestamp")
		}
	})

	t.Run("hit_after_applying_update", func(t *testing.T) {
		a := dividendAsset()
		first := c.GetOrCompute(a)

		// The owning store applies the payload; the calculator never does.
		a.Cached = first.CacheUpdate

		second := c.GetOrCompute(a)
		if !second.CacheHit {
			t.Fatal("expected cache hit after applying update")
		}
		if second.CacheUpdate != nil {
			t.Error("expected no cache update on hit")
		}
		if second.MonthlyAmount != first.MonthlyAmount || second.AnnualAmount != first.AnnualAmount {
			t.Error("expected identical figures on hit")
		}

		// Idempotent: a third call returns the same thing again.
		third := c.GetOrCompute(a)
		if !third.CacheHit || third.MonthlyAmount != second.MonthlyAmount {
			t.Error("expected repeated calls to be identical")
		}
	})

	t.Run("relevant_mutation_invalidates", func(t *testing.T) {
		a := dividendAsset()
		first := c.GetOrCompute(a)
		a.Cached = first.CacheUpdate

		a.DividendInfo.Amount = 3

		second := c.GetOrCompute(a)
		if second.CacheHit {
			t.Fatal("expected miss after mutating dividend amount")
		}
		if second.CacheUpdate.CalculationHash == first.CacheUpdate.CalculationHash {
			t.Error("expected a different hash after mutation")
		}
		if !almostEqual(second.MonthlyAmount, 300.0/3) {
			t.Errorf("expected monthly 100, got %v", second.MonthlyAmount)
		}
	})

	t.Run("does_not_mutate_the_asset", func(t *testing.T) {
		a := dividendAsset()
		c.GetOrCompute(a)
		if a.Cached != nil {
			t.Error("expected calculator to leave the asset untouched")
		}
	})

	t.Run("non_finite_asset_yields_finite_zeroes", func(t *testing.T) {
		a := dividendAsset()
		a.Quantity = math.NaN()
		result := c.GetOrCompute(a)
		for name, v := range map[string]float64{
			"monthly": result.MonthlyAmount,
			"annual":  result.AnnualAmount,
		} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("%s: non-finite result %v", name, v)
			}
		}
		for m := 1; m <= 12; m++ {
			if v := result.MonthlyBreakdown[m]; math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("month %d: non-finite result %v", m, v)
			}
		}
	})
}

func TestTotalForMonth(t *testing.T) {
	c := NewIncomeCalculator(nil)

	t.Run("sums_across_assets", func(t *testing.T) {
		assets := []models.Asset{
			*dividendAsset(), // pays 200 in March
			{Type: models.AssetTypeRealEstate, RentalInfo: &models.RentalInfo{BaseRent: 1200}},
			{Type: models.AssetTypeBond, Value: 10000, InterestRate: 6}, // 50/month
		}
		if got := c.TotalForMonth(assets, 3); !almostEqual(got, 200+1200+50) {
			t.Errorf("expected 1450, got %v", got)
		}
		if got := c.TotalForMonth(assets, 4); !almostEqual(got, 1200+50) {
			t.Errorf("expected 1250, got %v", got)
		}
	})

	t.Run("bad_asset_contributes_zero_only", func(t *testing.T) {
		assets := []models.Asset{
			{Type: models.AssetTypeStock}, // no dividend info
			{Type: models.AssetTypeRealEstate, RentalInfo: &models.RentalInfo{BaseRent: 1200}},
		}
		if got := c.TotalForMonth(assets, 1); !almostEqual(got, 1200) {
			t.Errorf("expected 1200, got %v", got)
		}
	})

	t.Run("empty_slice", func(t *testing.T) {
		if got := c.TotalForMonth(nil, 1); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})
}

func TestAllCachedAndFastPath(t *testing.T) {
	c := NewIncomeCalculator(nil)

	cachedAssets := func() []models.Asset {
		assets := []models.Asset{
			*dividendAsset(),
			{Type: models.AssetTypeRealEstate, RentalInfo: &models.RentalInfo{BaseRent: 1200}},
			{Type: models.AssetTypeBond, Value: 10000, InterestRate: 6},
		}
		for i := range assets {
			result := c.GetOrCompute(&assets[i])
			assets[i].Cached = result.CacheUpdate
		}
		return assets
	}

	t.Run("all_cached_true_after_updates_applied", func(t *testing.T) {
		if !c.AllCached(cachedAssets()) {
			t.Error("expected all assets cached")
		}
	})

	t.Run("all_cached_false_with_stale_record", func(t *testing.T) {
		assets := cachedAssets()
		assets[0].DividendInfo.Amount = 9
		if c.AllCached(assets) {
			t.Error("expected stale record to fail AllCached")
		}
	})

	t.Run("fast_path_equals_per_asset_path", func(t *testing.T) {
		assets := cachedAssets()
		total, ok := c.SumMonthlyIfAllCached(assets)
		if !ok {
			t.Fatal("expected fast path to be available")
		}

		var slow float64
		for i := range assets {
			slow += c.GetOrCompute(&assets[i]).MonthlyAmount
		}
		if !almostEqual(total, slow) {
			t.Errorf("fast path %v != per-asset path %v", total, slow)
		}
	})

	t.Run("fast_path_declines_on_any_uncached_asset", func(t *testing.T) {
		assets := cachedAssets()
		assets[1].Cached = nil
		if _, ok := c.SumMonthlyIfAllCached(assets); ok {
			t.Error("expected fast path to decline")
		}
	})

	t.Run("empty_slice_is_trivially_cached", func(t *testing.T) {
		if !c.AllCached(nil) {
			t.Error("expected empty slice to count as all cached")
		}
		if total, ok := c.SumMonthlyIfAllCached(nil); !ok || total != 0 {
			t.Errorf("expected (0, true), got (%v, %v)", total, ok)
		}
	})
}
