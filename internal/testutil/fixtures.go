package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"plutus/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestDividendAsset creates a stock holding that pays a quarterly
// dividend of $2.00 per share in March, June, September and December.
func CreateTestDividendAsset(t *testing.T, db *gorm.DB, quantity float64) *models.Asset {
	t.Helper()

	asset := &models.Asset{
		Name:             fmt.Sprintf("Test Stock %d", nextID()),
		Type:             models.AssetTypeStock,
		Currency:         "USD",
		PurchaseQuantity: quantity,
		Quantity:         quantity,
		CurrentPrice:     250,
		DividendInfo: &models.PaymentSchedule{
			Frequency: models.FrequencyQuarterly,
			Amount:    2,
			Months:    []int{3, 6, 9, 12},
		},
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test dividend asset: %v", err)
	}
	return asset
}

// CreateTestBondAsset creates a bond with the given face value and annual
// interest rate in percent.
func CreateTestBondAsset(t *testing.T, db *gorm.DB, value, rate float64) *models.Asset {
	t.Helper()

	asset := &models.Asset{
		Name:         fmt.Sprintf("Test Bond %d", nextID()),
		Type:         models.AssetTypeBond,
		Currency:     "USD",
		Value:        value,
		InterestRate: rate,
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test bond asset: %v", err)
	}
	return asset
}

// CreateTestRentalAsset creates a real estate asset with the given monthly
// base rent.
func CreateTestRentalAsset(t *testing.T, db *gorm.DB, baseRent float64) *models.Asset {
	t.Helper()

	asset := &models.Asset{
		Name:       fmt.Sprintf("Test Property %d", nextID()),
		Type:       models.AssetTypeRealEstate,
		Currency:   "USD",
		Value:      300000,
		RentalInfo: &models.RentalInfo{BaseRent: baseRent},
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test rental asset: %v", err)
	}
	return asset
}

// CreateTestIncomeSource creates a monthly income source of the given
// category and amount.
func CreateTestIncomeSource(t *testing.T, db *gorm.DB, category models.IncomeCategory, amount float64) *models.IncomeSource {
	t.Helper()

	income := &models.IncomeSource{
		Name:     fmt.Sprintf("Test Income %d", nextID()),
		Category: category,
		Schedule: &models.PaymentSchedule{
			Frequency: models.FrequencyMonthly,
			Amount:    amount,
		},
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income source: %v", err)
	}
	return income
}

// CreateTestExpense creates a monthly expense of the given amount.
func CreateTestExpense(t *testing.T, db *gorm.DB, amount float64) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Name:     fmt.Sprintf("Test Expense %d", nextID()),
		Category: "housing",
		Schedule: &models.PaymentSchedule{
			Frequency: models.FrequencyMonthly,
			Amount:    amount,
		},
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestLiability creates a loan with the given balance and monthly
// payment.
func CreateTestLiability(t *testing.T, db *gorm.DB, balance, monthlyPayment float64) *models.Liability {
	t.Helper()

	liability := &models.Liability{
		Name:    fmt.Sprintf("Test Loan %d", nextID()),
		Type:    models.LiabilityTypeLoan,
		Balance: balance,
		Payment: &models.PaymentSchedule{
			Frequency: models.FrequencyMonthly,
			Amount:    monthlyPayment,
		},
	}
	if err := db.Create(liability).Error; err != nil {
		t.Fatalf("failed to create test liability: %v", err)
	}
	return liability
}
