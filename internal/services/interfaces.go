package services

import (
	"time"

	"plutus/internal/calc"
	"plutus/internal/models"
	"plutus/internal/pagination"
)

// AssetInput carries the writable fields of an asset for create/update.
type AssetInput struct {
	Name             string
	Type             models.AssetType
	Currency         string
	Value            float64
	PurchaseQuantity float64
	CurrentPrice     float64
	InterestRate     float64
	Notes            string
	DividendInfo     *models.PaymentSchedule
	RentalInfo       *models.RentalInfo
}

// AssetServicer defines the contract for asset-related business logic.
type AssetServicer interface {
	CreateAsset(input AssetInput) (*models.Asset, error)
	GetAssets(page pagination.PageRequest, assetType *models.AssetType) (*pagination.PageResponse[models.Asset], error)
	GetAssetByID(assetID string) (*models.Asset, error)
	UpdateAsset(assetID string, input AssetInput) (*models.Asset, error)
	DeleteAsset(assetID string) error
	RecordBuy(assetID string, date time.Time, quantity, pricePerUnit, fee float64, notes string) (*models.AssetTransaction, error)
	RecordSell(assetID string, date time.Time, quantity, pricePerUnit, fee float64, notes string) (*models.AssetTransaction, error)
	GetAssetTransactions(assetID string, page pagination.PageRequest) (*pagination.PageResponse[models.AssetTransaction], error)
	GetAssetIncome(assetID string) (*calc.IncomeResult, error)
	RefreshIncomeCaches() (int, error)
}

// IncomeServicer defines the contract for income-source business logic.
type IncomeServicer interface {
	CreateIncomeSource(name string, category models.IncomeCategory, schedule *models.PaymentSchedule, notes string) (*models.IncomeSource, error)
	GetIncomeSources(page pagination.PageRequest) (*pagination.PageResponse[models.IncomeSource], error)
	GetIncomeSourceByID(incomeID string) (*models.IncomeSource, error)
	UpdateIncomeSource(incomeID, name string, category models.IncomeCategory, schedule *models.PaymentSchedule, notes string) (*models.IncomeSource, error)
	DeleteIncomeSource(incomeID string) error
	MonthlyTotals() (active float64, passive float64, err error)
}

// ExpenseServicer defines the contract for expense business logic.
type ExpenseServicer interface {
	CreateExpense(name, category string, schedule *models.PaymentSchedule, notes string) (*models.Expense, error)
	GetExpenses(page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	GetExpenseByID(expenseID string) (*models.Expense, error)
	UpdateExpense(expenseID, name, category string, schedule *models.PaymentSchedule, notes string) (*models.Expense, error)
	DeleteExpense(expenseID string) error
	MonthlyTotal() (float64, error)
}

// LiabilityServicer defines the contract for liability business logic.
type LiabilityServicer interface {
	CreateLiability(name string, liabilityType models.LiabilityType, balance, interestRate float64, payment *models.PaymentSchedule, notes string) (*models.Liability, error)
	GetLiabilities(page pagination.PageRequest) (*pagination.PageResponse[models.Liability], error)
	GetLiabilityByID(liabilityID string) (*models.Liability, error)
	UpdateLiability(liabilityID, name string, balance, interestRate *float64, payment *models.PaymentSchedule, notes *string) (*models.Liability, error)
	DeleteLiability(liabilityID string) error
	MonthlyPaymentTotal() (float64, error)
}

// FinancialSummary aggregates current totals across the whole tracker.
type FinancialSummary struct {
	AssetValue         float64 `json:"asset_value"`
	LiabilityBalance   float64 `json:"liability_balance"`
	NetWorth           float64 `json:"net_worth"`
	ActiveIncome       float64 `json:"active_income"`
	PassiveIncome      float64 `json:"passive_income"`
	AssetMonthlyIncome float64 `json:"asset_monthly_income"`
	ExpenseTotal       float64 `json:"expense_total"`
	LiabilityPayments  float64 `json:"liability_payments"`
	NetCashFlow        float64 `json:"net_cash_flow"`
}

// ProjectionServicer defines the contract for financial projections.
type ProjectionServicer interface {
	GetProjections(months int) ([]calc.MonthlyProjection, error)
	GetSummary() (*FinancialSummary, error)
}

// SnapshotServicer defines the contract for net worth snapshots.
type SnapshotServicer interface {
	ComputeAndRecordSnapshot(recordedAt time.Time) (*models.NetWorthSnapshot, error)
	GetSnapshots(from, to *time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.NetWorthSnapshot], error)
}
