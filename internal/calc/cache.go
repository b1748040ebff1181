package calc

import (
	"time"

	"go.uber.org/zap"

	"plutus/internal/models"
)

// IncomeResult is the outcome of a cache-aware income calculation. When the
// stored calculation was stale or absent, CacheUpdate carries the fresh
// record for the caller to persist; the calculation itself never mutates
// the asset.
type IncomeResult struct {
	MonthlyAmount    float64                   `json:"monthly_amount"`
	AnnualAmount     float64                   `json:"annual_amount"`
	MonthlyBreakdown models.MonthlyBreakdown   `json:"monthly_breakdown"`
	CacheHit         bool                      `json:"cache_hit"`
	CacheUpdate      *models.CachedCalculation `json:"cache_update,omitempty"`
}

// IncomeCalculator wraps the per-asset income calculation with
// check-then-compute-then-offer-update cache semantics. Construct one at
// startup and pass it to whatever needs it; it holds no mutable state.
type IncomeCalculator struct {
	log *zap.SugaredLogger
}

// NewIncomeCalculator creates an IncomeCalculator. A nil logger is replaced
// with a no-op logger so the calculator stays usable in pure unit tests.
func NewIncomeCalculator(log *zap.SugaredLogger) *IncomeCalculator {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &IncomeCalculator{log: log}
}

// GetOrCompute returns the asset's income figures, served from the attached
// cache when its hash still matches, otherwise computed fresh. On a miss the
// result carries a CacheUpdate payload with the hash recomputed now;
// repeated calls on an unchanged cached asset return identical results.
func (c *IncomeCalculator) GetOrCompute(a *models.Asset) IncomeResult {
	if CacheValid(a) {
		return IncomeResult{
			MonthlyAmount:    a.Cached.MonthlyAmount,
			AnnualAmount:     a.Cached.AnnualAmount,
			MonthlyBreakdown: a.Cached.MonthlyBreakdown,
			CacheHit:         true,
		}
	}

	monthly := AssetMonthlyIncome(a)
	annual := AssetAnnualIncome(a)
	breakdown := AssetIncomeBreakdown(a)

	return IncomeResult{
		MonthlyAmount:    monthly,
		AnnualAmount:     annual,
		MonthlyBreakdown: breakdown,
		CacheHit:         false,
		CacheUpdate: &models.CachedCalculation{
			MonthlyAmount:    monthly,
			AnnualAmount:     annual,
			MonthlyBreakdown: breakdown,
			LastCalculated:   time.Now(),
			CalculationHash:  CalculationHash(a),
		},
	}
}

// TotalForMonth sums the income every asset pays in the given calendar
// month. A failure while calculating one asset contributes 0 for that asset
// only; one bad record must not abort the aggregate.
func (c *IncomeCalculator) TotalForMonth(assets []models.Asset, month int) float64 {
	var total float64
	for i := range assets {
		total += c.monthAmountForAsset(&assets[i], month)
	}
	return finite(total)
}

// monthAmountForAsset isolates the per-asset calculation so that a panic on
// one malformed record is logged and converted to 0.
func (c *IncomeCalculator) monthAmountForAsset(a *models.Asset, month int) (amount float64) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Errorw("asset income calculation failed",
				"asset_id", a.ID,
				"month", month,
				"panic", r,
			)
			amount = 0
		}
	}()

	result := c.GetOrCompute(a)
	return finite(result.MonthlyBreakdown[month])
}

// AllCached reports whether every asset currently carries a valid cache
// record. Pure inspection — no calculation is performed.
func (c *IncomeCalculator) AllCached(assets []models.Asset) bool {
	for i := range assets {
		if !CacheValid(&assets[i]) {
			return false
		}
	}
	return true
}

// SumMonthlyIfAllCached sums the cached monthly amounts when every asset has
// a valid cache record. It returns ok=false on the first asset without one,
// without scanning further, signalling the caller to fall back to the
// per-asset path.
func (c *IncomeCalculator) SumMonthlyIfAllCached(assets []models.Asset) (total float64, ok bool) {
	for i := range assets {
		if !CacheValid(&assets[i]) {
			return 0, false
		}
		total += assets[i].Cached.MonthlyAmount
	}
	return finite(total), true
}
