// Package calc implements the income calculation and caching layer: payment
// schedule resolution, per-asset income dispatch, content-hash cache
// invalidation, and month-by-month projections. Everything in this package is
// a pure synchronous function over in-memory data; persistence of cache
// updates is the caller's responsibility.
package calc

import (
	"math"

	"plutus/internal/models"
)

// defaultQuarterlyMonths is the payment month set assumed for quarterly
// schedules that do not list explicit months.
var defaultQuarterlyMonths = []int{3, 6, 9, 12}

// finite coerces NaN and ±Inf to 0 so that bad inputs degrade to "no income"
// instead of propagating non-finite numbers downstream.
func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// paymentsPerYear returns the number of payment events per year for a
// frequency, or 0 when the frequency does not imply a fixed count.
func paymentsPerYear(freq models.Frequency) float64 {
	switch freq {
	case models.FrequencyMonthly:
		return 12
	case models.FrequencyQuarterly:
		return 4
	case models.FrequencyAnnually:
		return 1
	default:
		return 0
	}
}

// MonthlyFromSchedule returns the monthly-equivalent amount for a schedule:
// the annual total (amount per payment event × payments per year) amortized
// over twelve months. Custom schedules amortize the sum of their per-month
// amounts; a custom schedule without explicit per-month amounts pays Amount
// once in each listed month. Unknown frequencies and frequency "none"
// resolve to 0.
func MonthlyFromSchedule(s *models.PaymentSchedule) float64 {
	if s == nil || s.Frequency == models.FrequencyNone {
		return 0
	}
	amount := finite(s.Amount)
	if amount < 0 {
		return 0
	}

	switch s.Frequency {
	case models.FrequencyMonthly, models.FrequencyQuarterly, models.FrequencyAnnually:
		return finite(amount * paymentsPerYear(s.Frequency) / 12)
	case models.FrequencyCustom:
		if len(s.CustomAmounts) > 0 {
			var total float64
			for _, v := range s.CustomAmounts {
				total += finite(v)
			}
			return finite(total / 12)
		}
		return finite(amount * float64(len(s.Months)) / 12)
	default:
		return 0
	}
}

// AnnualFromSchedule returns the annual total for a schedule. For monthly
// frequency this is exactly monthly × 12; for discrete schedules it is the
// sum of the twelve per-month amounts, so the breakdown/annual invariant
// holds by construction.
func AnnualFromSchedule(s *models.PaymentSchedule) float64 {
	if s == nil || s.Frequency == models.FrequencyNone {
		return 0
	}
	if s.Frequency == models.FrequencyMonthly {
		return finite(MonthlyFromSchedule(s) * 12)
	}
	var total float64
	for m := 1; m <= 12; m++ {
		total += AmountForMonth(s, m, 1)
	}
	return finite(total)
}

// IsPaymentMonth reports whether a discrete payment event falls in the given
// calendar month (1..12). Explicit months always win; quarterly defaults to
// {3,6,9,12} and annually to December when no months are listed. Custom
// schedules without months never pay.
func IsPaymentMonth(month int, freq models.Frequency, explicitMonths []int) bool {
	switch freq {
	case models.FrequencyMonthly:
		return true
	case models.FrequencyQuarterly:
		if len(explicitMonths) > 0 {
			return containsMonth(explicitMonths, month)
		}
		return containsMonth(defaultQuarterlyMonths, month)
	case models.FrequencyAnnually:
		if len(explicitMonths) > 0 {
			return containsMonth(explicitMonths, month)
		}
		return month == 12
	case models.FrequencyCustom:
		return containsMonth(explicitMonths, month)
	default:
		return false
	}
}

// AmountForMonth returns the amount a schedule pays in the given calendar
// month, scaled by quantity. A per-month custom amount overrides the
// schedule's base amount. Quantity ≤ 0 yields 0 across the board, guarding
// against negative positions left by unmatched sell transactions.
func AmountForMonth(s *models.PaymentSchedule, month int, quantity float64) float64 {
	if s == nil || s.Frequency == models.FrequencyNone {
		return 0
	}
	quantity = finite(quantity)
	if quantity <= 0 {
		return 0
	}

	if custom, ok := s.CustomAmounts[month]; ok {
		return finite(custom * quantity)
	}
	if IsPaymentMonth(month, s.Frequency, s.Months) {
		return finite(finite(s.Amount) * quantity)
	}
	return 0
}

func containsMonth(months []int, month int) bool {
	for _, m := range months {
		if m == month {
			return true
		}
	}
	return false
}
