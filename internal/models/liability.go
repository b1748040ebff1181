package models

// LiabilityType represents the kind of debt.
type LiabilityType string

const (
	LiabilityTypeMortgage   LiabilityType = "mortgage"
	LiabilityTypeLoan       LiabilityType = "loan"
	LiabilityTypeCreditCard LiabilityType = "credit_card"
	LiabilityTypeOther      LiabilityType = "other"
)

// Liability represents a debt with an outstanding balance and a recurring
// payment schedule.
type Liability struct {
	Base
	Name         string           `gorm:"not null" json:"name"`
	Type         LiabilityType    `gorm:"not null" json:"type"`
	Balance      float64          `json:"balance"`
	InterestRate float64          `json:"interest_rate,omitempty"` // Annual rate in percent
	Payment      *PaymentSchedule `gorm:"serializer:json" json:"payment,omitempty"`
	Notes        string           `json:"notes,omitempty"`
}
