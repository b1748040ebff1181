package calc

import (
	"plutus/internal/models"
)

// AssetMonthlyIncome returns the raw (uncached) monthly-equivalent income
// for a single asset, dispatching on its type:
//
//   - stock, crypto: dividend schedule amount scaled by the current quantity.
//     A non-positive quantity yields 0 without consulting the schedule.
//   - bond, cash: simple interest on the asset value, rate percent per year.
//     A non-positive value yields 0, mirroring the quantity guard.
//   - real_estate: the base rent, already monthly-denominated.
//
// Any other type, or a missing required sub-record, yields 0.
func AssetMonthlyIncome(a *models.Asset) float64 {
	if a == nil {
		return 0
	}

	switch a.Type {
	case models.AssetTypeStock, models.AssetTypeCrypto:
		if a.DividendInfo == nil {
			return 0
		}
		qty := finite(a.Quantity)
		if qty <= 0 {
			return 0
		}
		return finite(MonthlyFromSchedule(a.DividendInfo) * qty)

	case models.AssetTypeBond, models.AssetTypeCash:
		value := finite(a.Value)
		rate := finite(a.InterestRate)
		if value <= 0 || rate == 0 {
			return 0
		}
		return finite(rate * value / 100 / 12)

	case models.AssetTypeRealEstate:
		if a.RentalInfo == nil {
			return 0
		}
		return finite(a.RentalInfo.BaseRent)

	default:
		return 0
	}
}

// AssetAnnualIncome returns the annual income for an asset. For dividend
// schedules this honors the discrete payment months; for interest and
// rental income it is monthly × 12.
func AssetAnnualIncome(a *models.Asset) float64 {
	if a == nil {
		return 0
	}
	if (a.Type == models.AssetTypeStock || a.Type == models.AssetTypeCrypto) && a.DividendInfo != nil {
		qty := finite(a.Quantity)
		if qty <= 0 {
			return 0
		}
		return finite(AnnualFromSchedule(a.DividendInfo) * qty)
	}
	return finite(AssetMonthlyIncome(a) * 12)
}

// AssetIncomeBreakdown returns the per-month income for an asset across
// months 1..12. Dividend payments land in their scheduled months; interest
// and rental income occur every month regardless of schedule.
func AssetIncomeBreakdown(a *models.Asset) models.MonthlyBreakdown {
	breakdown := models.NewMonthlyBreakdown()
	if a == nil {
		return breakdown
	}

	switch a.Type {
	case models.AssetTypeStock, models.AssetTypeCrypto:
		if a.DividendInfo == nil {
			return breakdown
		}
		for m := 1; m <= 12; m++ {
			breakdown[m] = AmountForMonth(a.DividendInfo, m, a.Quantity)
		}

	case models.AssetTypeBond, models.AssetTypeCash, models.AssetTypeRealEstate:
		monthly := AssetMonthlyIncome(a)
		for m := 1; m <= 12; m++ {
			breakdown[m] = monthly
		}
	}

	return breakdown
}
