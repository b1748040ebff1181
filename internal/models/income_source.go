package models

// IncomeCategory distinguishes earned income from income that arrives
// without ongoing work (rental contracts, royalties, annuities).
type IncomeCategory string

const (
	IncomeCategoryActive  IncomeCategory = "active"
	IncomeCategoryPassive IncomeCategory = "passive"
)

// IncomeSource represents a recurring income stream outside of asset
// holdings: salary, freelance retainers, royalties.
type IncomeSource struct {
	Base
	Name     string           `gorm:"not null" json:"name"`
	Category IncomeCategory   `gorm:"not null;default:'active'" json:"category"`
	Schedule *PaymentSchedule `gorm:"serializer:json" json:"schedule,omitempty"`
	Notes    string           `json:"notes,omitempty"`
}
