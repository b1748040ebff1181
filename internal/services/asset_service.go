package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"plutus/internal/calc"
	apperrors "plutus/internal/errors"
	"plutus/internal/models"
	"plutus/internal/pagination"
)

// assetService handles asset-related business logic.
type assetService struct {
	db   *gorm.DB
	calc *calc.IncomeCalculator
}

// NewAssetService creates a new AssetServicer.
func NewAssetService(db *gorm.DB, calculator *calc.IncomeCalculator) AssetServicer {
	return &assetService{db: db, calc: calculator}
}

// CreateAsset creates a new asset holding. The current quantity starts at the
// purchase quantity; buy and sell transactions adjust it from there.
func (s *assetService) CreateAsset(input AssetInput) (*models.Asset, error) {
	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	asset := &models.Asset{
		Name:             input.Name,
		Type:             input.Type,
		Currency:         currency,
		Value:            input.Value,
		PurchaseQuantity: input.PurchaseQuantity,
		Quantity:         input.PurchaseQuantity,
		CurrentPrice:     input.CurrentPrice,
		InterestRate:     input.InterestRate,
		Notes:            input.Notes,
		DividendInfo:     input.DividendInfo,
		RentalInfo:       input.RentalInfo,
	}

	if err := s.db.Create(asset).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return asset, nil
}

// GetAssets returns a paginated list of assets, optionally filtered by type.
func (s *assetService) GetAssets(page pagination.PageRequest, assetType *models.AssetType) (*pagination.PageResponse[models.Asset], error) {
	page.Defaults()

	base := s.db.Model(&models.Asset{})
	if assetType != nil {
		base = base.Where("type = ?", *assetType)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var assets []models.Asset
	if err := base.Order("created_at DESC").Scopes(pagination.Paginate(page)).Find(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(assets, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetAssetByID returns a single asset.
func (s *assetService) GetAssetByID(assetID string) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.First(&asset, "id = ?", assetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &asset, nil
}

// UpdateAsset updates an asset's writable fields. The stored income
// calculation stays attached; it simply goes stale when an income-relevant
// field changed, and the next calculation replaces it.
func (s *assetService) UpdateAsset(assetID string, input AssetInput) (*models.Asset, error) {
	asset, err := s.GetAssetByID(assetID)
	if err != nil {
		return nil, err
	}

	asset.Name = input.Name
	asset.Type = input.Type
	if input.Currency != "" {
		asset.Currency = input.Currency
	}
	asset.Value = input.Value
	asset.CurrentPrice = input.CurrentPrice
	asset.InterestRate = input.InterestRate
	asset.Notes = input.Notes
	asset.DividendInfo = input.DividendInfo
	asset.RentalInfo = input.RentalInfo

	if err := s.db.Save(asset).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return asset, nil
}

// DeleteAsset soft-deletes an asset.
func (s *assetService) DeleteAsset(assetID string) error {
	if _, err := s.GetAssetByID(assetID); err != nil {
		return err
	}
	if err := s.db.Delete(&models.Asset{}, "id = ?", assetID).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// RecordBuy records a buy transaction and increases the current quantity.
func (s *assetService) RecordBuy(assetID string, date time.Time, quantity, pricePerUnit, fee float64, notes string) (*models.AssetTransaction, error) {
	asset, err := s.GetAssetByID(assetID)
	if err != nil {
		return nil, err
	}

	var assetTx models.AssetTransaction
	err = s.db.Transaction(func(tx *gorm.DB) error {
		assetTx = models.AssetTransaction{
			AssetID:      assetID,
			Type:         models.AssetTransactionBuy,
			Date:         date,
			Quantity:     quantity,
			PricePerUnit: pricePerUnit,
			Fee:          fee,
			Notes:        notes,
		}
		if txErr := tx.Create(&assetTx).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}

		if txErr := tx.Model(asset).Update("quantity", asset.Quantity+quantity).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &assetTx, nil
}

// RecordSell records a sell transaction and decreases the current quantity.
// Selling more than the current holding is rejected.
func (s *assetService) RecordSell(assetID string, date time.Time, quantity, pricePerUnit, fee float64, notes string) (*models.AssetTransaction, error) {
	asset, err := s.GetAssetByID(assetID)
	if err != nil {
		return nil, err
	}

	if quantity > asset.Quantity {
		return nil, apperrors.ErrInsufficientQuantity
	}

	var assetTx models.AssetTransaction
	err = s.db.Transaction(func(tx *gorm.DB) error {
		assetTx = models.AssetTransaction{
			AssetID:      assetID,
			Type:         models.AssetTransactionSell,
			Date:         date,
			Quantity:     quantity,
			PricePerUnit: pricePerUnit,
			Fee:          fee,
			Notes:        notes,
		}
		if txErr := tx.Create(&assetTx).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}

		if txErr := tx.Model(asset).Update("quantity", asset.Quantity-quantity).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &assetTx, nil
}

// GetAssetTransactions returns a paginated list of transactions for an asset.
func (s *assetService) GetAssetTransactions(assetID string, page pagination.PageRequest) (*pagination.PageResponse[models.AssetTransaction], error) {
	if _, err := s.GetAssetByID(assetID); err != nil {
		return nil, err
	}

	page.Defaults()

	base := s.db.Model(&models.AssetTransaction{}).Where("asset_id = ?", assetID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.AssetTransaction
	if err := base.Order("date DESC").Scopes(pagination.Paginate(page)).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetAssetIncome returns the asset's income figures through the cache-aware
// calculator. When the calculation produced a cache update, this service —
// as the owner of persistence — writes it back onto the asset before
// returning.
func (s *assetService) GetAssetIncome(assetID string) (*calc.IncomeResult, error) {
	asset, err := s.GetAssetByID(assetID)
	if err != nil {
		return nil, err
	}

	result := s.calc.GetOrCompute(asset)
	if result.CacheUpdate != nil {
		if err := s.db.Model(asset).Update("cached", result.CacheUpdate).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return &result, nil
}

// RefreshIncomeCaches recomputes the income calculation for every asset whose
// cache is stale or missing, persisting the fresh records. Returns the number
// of assets refreshed.
func (s *assetService) RefreshIncomeCaches() (int, error) {
	var assets []models.Asset
	if err := s.db.Find(&assets).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	refreshed := 0
	for i := range assets {
		result := s.calc.GetOrCompute(&assets[i])
		if result.CacheUpdate == nil {
			continue
		}
		if err := s.db.Model(&assets[i]).Update("cached", result.CacheUpdate).Error; err != nil {
			return refreshed, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		refreshed++
	}
	return refreshed, nil
}
