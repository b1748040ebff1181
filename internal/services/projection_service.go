package services

import (
	"time"

	"gorm.io/gorm"

	"plutus/internal/calc"
	apperrors "plutus/internal/errors"
	"plutus/internal/models"
)

// projectionService builds forward-looking financial projections from the
// full set of tracked entities.
type projectionService struct {
	db     *gorm.DB
	calc   *calc.IncomeCalculator
	engine *calc.ProjectionEngine
}

// NewProjectionService creates a new ProjectionServicer.
func NewProjectionService(db *gorm.DB, calculator *calc.IncomeCalculator) ProjectionServicer {
	return &projectionService{
		db:     db,
		calc:   calculator,
		engine: calc.NewProjectionEngine(calculator),
	}
}

// loadEntities fetches everything a projection needs in one place.
func (s *projectionService) loadEntities() ([]models.IncomeSource, []models.Expense, []models.Liability, []models.Asset, error) {
	var incomes []models.IncomeSource
	if err := s.db.Find(&incomes).Error; err != nil {
		return nil, nil, nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var expenses []models.Expense
	if err := s.db.Find(&expenses).Error; err != nil {
		return nil, nil, nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var liabilities []models.Liability
	if err := s.db.Find(&liabilities).Error; err != nil {
		return nil, nil, nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var assets []models.Asset
	if err := s.db.Find(&assets).Error; err != nil {
		return nil, nil, nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return incomes, expenses, liabilities, assets, nil
}

// GetProjections builds projections for the given number of months starting
// from the current month. Any cache updates produced while computing asset
// income are persisted so subsequent calls hit the cache.
func (s *projectionService) GetProjections(months int) ([]calc.MonthlyProjection, error) {
	incomes, expenses, liabilities, assets, err := s.loadEntities()
	if err != nil {
		return nil, err
	}

	// Warm stale caches up front and persist the updates. The engine then
	// runs entirely on cache hits.
	for i := range assets {
		result := s.calc.GetOrCompute(&assets[i])
		if result.CacheUpdate == nil {
			continue
		}
		if err := s.db.Model(&assets[i]).Update("cached", result.CacheUpdate).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		assets[i].Cached = result.CacheUpdate
	}

	return s.engine.Project(incomes, expenses, liabilities, assets, months, time.Now()), nil
}

// GetSummary aggregates the tracker's current totals: net worth and the
// monthly cash flow picture. Asset income uses the cached fast path when
// every asset carries a valid calculation, falling back to the per-asset
// path otherwise.
func (s *projectionService) GetSummary() (*FinancialSummary, error) {
	incomes, expenses, liabilities, assets, err := s.loadEntities()
	if err != nil {
		return nil, err
	}

	summary := &FinancialSummary{}

	for i := range assets {
		a := &assets[i]
		if a.Quantity > 0 && a.CurrentPrice > 0 {
			summary.AssetValue += a.Quantity * a.CurrentPrice
		} else {
			summary.AssetValue += a.Value
		}
	}
	for i := range liabilities {
		summary.LiabilityBalance += liabilities[i].Balance
		summary.LiabilityPayments += calc.MonthlyFromSchedule(liabilities[i].Payment)
	}
	summary.NetWorth = summary.AssetValue - summary.LiabilityBalance

	for i := range incomes {
		monthly := calc.MonthlyFromSchedule(incomes[i].Schedule)
		if incomes[i].Category == models.IncomeCategoryPassive {
			summary.PassiveIncome += monthly
		} else {
			summary.ActiveIncome += monthly
		}
	}
	for i := range expenses {
		summary.ExpenseTotal += calc.MonthlyFromSchedule(expenses[i].Schedule)
	}

	if total, ok := s.calc.SumMonthlyIfAllCached(assets); ok {
		summary.AssetMonthlyIncome = total
	} else {
		var total float64
		for i := range assets {
			total += s.calc.GetOrCompute(&assets[i]).MonthlyAmount
		}
		summary.AssetMonthlyIncome = total
	}

	summary.NetCashFlow = summary.ActiveIncome + summary.PassiveIncome + summary.AssetMonthlyIncome -
		summary.ExpenseTotal - summary.LiabilityPayments

	return summary, nil
}
