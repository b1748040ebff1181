package calc

import (
	"time"

	"plutus/internal/models"
)

// MonthlyProjection is one month of a forward-looking cash flow projection.
// Month is the ISO date of the first of that month. Each record is
// independently computable; CumulativeSavings is the one running figure,
// the sum of NetCashFlow up to and including this month.
type MonthlyProjection struct {
	Month                 string  `json:"month"`
	ActiveIncome          float64 `json:"active_income"`
	PassiveIncome         float64 `json:"passive_income"`
	AssetIncome           float64 `json:"asset_income"`
	ExpenseTotal          float64 `json:"expense_total"`
	LiabilityPayments     float64 `json:"liability_payments"`
	IncomeTotal           float64 `json:"income_total"`
	NetCashFlow           float64 `json:"net_cash_flow"`
	PassiveIncomeCoverage float64 `json:"passive_income_coverage"`
	CumulativeSavings     float64 `json:"cumulative_savings"`
}

// ProjectionEngine builds month-by-month projections combining flat
// monthly-equivalent income, expenses and liability payments with per-month
// asset income, so dividend and interest timing is honored rather than
// averaged.
type ProjectionEngine struct {
	calc *IncomeCalculator
}

// NewProjectionEngine creates a ProjectionEngine on top of an
// IncomeCalculator.
func NewProjectionEngine(calc *IncomeCalculator) *ProjectionEngine {
	return &ProjectionEngine{calc: calc}
}

// Project builds projections for `months` consecutive calendar months
// starting from the month of `from`. Income sources, expenses and
// liabilities contribute their monthly-equivalent amounts; assets contribute
// their actual per-month income via the cache-aware calculator.
func (e *ProjectionEngine) Project(
	incomes []models.IncomeSource,
	expenses []models.Expense,
	liabilities []models.Liability,
	assets []models.Asset,
	months int,
	from time.Time,
) []MonthlyProjection {
	if months <= 0 {
		return []MonthlyProjection{}
	}

	var activeIncome, passiveIncome float64
	for i := range incomes {
		monthly := MonthlyFromSchedule(incomes[i].Schedule)
		if incomes[i].Category == models.IncomeCategoryPassive {
			passiveIncome += monthly
		} else {
			activeIncome += monthly
		}
	}

	var expenseTotal float64
	for i := range expenses {
		expenseTotal += MonthlyFromSchedule(expenses[i].Schedule)
	}

	var liabilityPayments float64
	for i := range liabilities {
		liabilityPayments += MonthlyFromSchedule(liabilities[i].Payment)
	}

	start := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	outgoing := expenseTotal + liabilityPayments

	projections := make([]MonthlyProjection, 0, months)
	var cumulative float64
	for offset := 0; offset < months; offset++ {
		current := start.AddDate(0, offset, 0)
		monthNumber := int(current.Month())

		assetIncome := e.calc.TotalForMonth(assets, monthNumber)
		incomeTotal := activeIncome + passiveIncome + assetIncome
		netCashFlow := incomeTotal - outgoing

		var coverage float64
		if outgoing > 0 {
			coverage = finite((passiveIncome + assetIncome) / outgoing)
		}

		cumulative += netCashFlow
		projections = append(projections, MonthlyProjection{
			Month:                 current.Format("2006-01-02"),
			ActiveIncome:          finite(activeIncome),
			PassiveIncome:         finite(passiveIncome),
			AssetIncome:           assetIncome,
			ExpenseTotal:          finite(expenseTotal),
			LiabilityPayments:     finite(liabilityPayments),
			IncomeTotal:           finite(incomeTotal),
			NetCashFlow:           finite(netCashFlow),
			PassiveIncomeCoverage: coverage,
			CumulativeSavings:     finite(cumulative),
		})
	}

	return projections
}
