package models

import "time"

// Frequency describes how often a recurring cash flow pays out.
type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyAnnually  Frequency = "annually"
	FrequencyCustom    Frequency = "custom"
	FrequencyNone      Frequency = "none"
)

// PaymentSchedule describes a recurring payment: how much is paid per payment
// event, how often, and optionally in which calendar months. CustomAmounts
// overrides Amount on a per-month basis when present.
type PaymentSchedule struct {
	Frequency Frequency `json:"frequency"`
	// Amount is the amount per payment event, not per month. A quarterly
	// schedule with Amount=300 pays 300 four times a year.
	Amount        float64         `json:"amount"`
	Months        []int           `json:"months,omitempty"`
	CustomAmounts map[int]float64 `json:"custom_amounts,omitempty"`
}

// MonthlyBreakdown maps calendar month (1..12) to the amount paid in that
// month. All twelve keys are always present; months without a payment hold 0.
type MonthlyBreakdown map[int]float64

// NewMonthlyBreakdown returns a breakdown with all twelve months set to 0.
func NewMonthlyBreakdown() MonthlyBreakdown {
	b := make(MonthlyBreakdown, 12)
	for m := 1; m <= 12; m++ {
		b[m] = 0
	}
	return b
}

// Sum returns the total across all twelve months.
func (b MonthlyBreakdown) Sum() float64 {
	var total float64
	for m := 1; m <= 12; m++ {
		total += b[m]
	}
	return total
}

// CachedCalculation is a previously computed income result attached to an
// asset. It is valid as long as CalculationHash still matches the hash of the
// asset's income-relevant fields. The calculation layer never writes this
// record itself; the owning service applies it.
type CachedCalculation struct {
	MonthlyAmount    float64          `json:"monthly_amount"`
	AnnualAmount     float64          `json:"annual_amount"`
	MonthlyBreakdown MonthlyBreakdown `json:"monthly_breakdown"`
	LastCalculated   time.Time        `json:"last_calculated"`
	CalculationHash  string           `json:"calculation_hash"`
}
