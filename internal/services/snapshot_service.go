package services

import (
	"time"

	"gorm.io/gorm"

	"plutus/internal/calc"
	apperrors "plutus/internal/errors"
	"plutus/internal/models"
	"plutus/internal/pagination"
)

// snapshotService handles net worth snapshot operations.
type snapshotService struct {
	db   *gorm.DB
	calc *calc.IncomeCalculator
}

// NewSnapshotService creates a new SnapshotServicer.
func NewSnapshotService(db *gorm.DB, calculator *calc.IncomeCalculator) SnapshotServicer {
	return &snapshotService{db: db, calc: calculator}
}

// ComputeAndRecordSnapshot computes and stores a net worth snapshot.
// Recording twice at the same timestamp updates the existing row instead of
// duplicating it.
func (s *snapshotService) ComputeAndRecordSnapshot(recordedAt time.Time) (*models.NetWorthSnapshot, error) {
	snapshot, err := s.computeSnapshot(recordedAt)
	if err != nil {
		return nil, err
	}

	var existing models.NetWorthSnapshot
	result := s.db.Where("recorded_at = ?", recordedAt).First(&existing)
	if result.Error == nil {
		if err := s.db.Model(&existing).Updates(map[string]interface{}{
			"total_net_worth":         snapshot.TotalNetWorth,
			"asset_value":             snapshot.AssetValue,
			"liability_balance":       snapshot.LiabilityBalance,
			"projected_annual_income": snapshot.ProjectedAnnualIncome,
		}).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		existing.TotalNetWorth = snapshot.TotalNetWorth
		existing.AssetValue = snapshot.AssetValue
		existing.LiabilityBalance = snapshot.LiabilityBalance
		existing.ProjectedAnnualIncome = snapshot.ProjectedAnnualIncome
		return &existing, nil
	}

	if err := s.db.Create(snapshot).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return snapshot, nil
}

// computeSnapshot calculates the net worth breakdown at a point in time.
func (s *snapshotService) computeSnapshot(recordedAt time.Time) (*models.NetWorthSnapshot, error) {
	var assets []models.Asset
	if err := s.db.Find(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var assetValue float64
	for i := range assets {
		a := &assets[i]
		if a.Quantity > 0 && a.CurrentPrice > 0 {
			assetValue += a.Quantity * a.CurrentPrice
		} else {
			assetValue += a.Value
		}
	}

	// Projected annual income: sum cached annual amounts when every asset
	// has a valid calculation; otherwise compute per asset.
	var annualIncome float64
	if s.calc.AllCached(assets) {
		for i := range assets {
			annualIncome += assets[i].Cached.AnnualAmount
		}
	} else {
		for i := range assets {
			annualIncome += s.calc.GetOrCompute(&assets[i]).AnnualAmount
		}
	}

	var liabilityBalance float64
	if err := s.db.Model(&models.Liability{}).
		Select("COALESCE(SUM(balance), 0)").
		Scan(&liabilityBalance).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &models.NetWorthSnapshot{
		RecordedAt:            recordedAt,
		TotalNetWorth:         assetValue - liabilityBalance,
		AssetValue:            assetValue,
		LiabilityBalance:      liabilityBalance,
		ProjectedAnnualIncome: annualIncome,
	}, nil
}

// GetSnapshots returns paginated snapshots within an optional date range.
func (s *snapshotService) GetSnapshots(from, to *time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.NetWorthSnapshot], error) {
	page.Defaults()

	base := s.db.Model(&models.NetWorthSnapshot{})
	if from != nil {
		base = base.Where("recorded_at >= ?", *from)
	}
	if to != nil {
		base = base.Where("recorded_at <= ?", *to)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var snapshots []models.NetWorthSnapshot
	if err := base.Order("recorded_at DESC").Scopes(pagination.Paginate(page)).Find(&snapshots).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(snapshots, page.Page, page.PageSize, totalItems)
	return &result, nil
}
