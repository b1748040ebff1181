package models

// Expense represents a recurring expense: rent, subscriptions, insurance
// premiums paid once or twice a year, and so on.
type Expense struct {
	Base
	Name     string           `gorm:"not null" json:"name"`
	Category string           `json:"category,omitempty"`
	Schedule *PaymentSchedule `gorm:"serializer:json" json:"schedule,omitempty"`
	Notes    string           `json:"notes,omitempty"`
}
