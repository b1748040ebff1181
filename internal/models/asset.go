package models

import "time"

// AssetType represents the kind of asset being tracked.
type AssetType string

const (
	AssetTypeStock      AssetType = "stock"
	AssetTypeBond       AssetType = "bond"
	AssetTypeRealEstate AssetType = "real_estate"
	AssetTypeCrypto     AssetType = "crypto"
	AssetTypeCash       AssetType = "cash"
	AssetTypeOther      AssetType = "other"
)

// RentalInfo holds rental income details for real estate assets.
// BaseRent is already monthly-denominated.
type RentalInfo struct {
	BaseRent float64 `json:"base_rent"`
}

// Asset represents a holding: a stock position, a bond, a property, etc.
// Quantity is the current signed position after buy/sell transactions;
// PurchaseQuantity is the initially purchased amount.
type Asset struct {
	Base
	Name             string    `gorm:"not null" json:"name"`
	Type             AssetType `gorm:"not null" json:"type"`
	Currency         string    `gorm:"not null;default:'USD'" json:"currency"`
	Value            float64   `json:"value"`
	PurchaseQuantity float64   `json:"purchase_quantity"`
	Quantity         float64   `json:"quantity"`
	CurrentPrice     float64   `json:"current_price"`
	InterestRate     float64   `json:"interest_rate,omitempty"` // Annual rate in percent, for bond/cash
	Notes            string    `json:"notes,omitempty"`

	DividendInfo *PaymentSchedule   `gorm:"serializer:json" json:"dividend_info,omitempty"`
	RentalInfo   *RentalInfo        `gorm:"serializer:json" json:"rental_info,omitempty"`
	Cached       *CachedCalculation `gorm:"serializer:json" json:"cached_calculation,omitempty"`

	// Relationships
	Transactions []AssetTransaction `gorm:"foreignKey:AssetID" json:"transactions,omitempty"`
}

// AssetTransactionType represents the type of asset transaction.
type AssetTransactionType string

const (
	AssetTransactionBuy  AssetTransactionType = "buy"
	AssetTransactionSell AssetTransactionType = "sell"
)

// AssetTransaction records a buy or sell against an asset. Sells reduce the
// asset's current quantity; the net position may reach zero or, for imported
// data with unmatched sells, go negative (the calculation layer guards this).
type AssetTransaction struct {
	Base
	AssetID      string               `gorm:"type:uuid;not null" json:"asset_id"`
	Type         AssetTransactionType `gorm:"not null" json:"type"`
	Date         time.Time            `gorm:"not null" json:"date"`
	Quantity     float64              `gorm:"not null" json:"quantity"`
	PricePerUnit float64              `json:"price_per_unit"`
	Fee          float64              `json:"fee"`
	Notes        string               `json:"notes,omitempty"`

	// Relationships
	Asset Asset `gorm:"foreignKey:AssetID" json:"-"`
}
