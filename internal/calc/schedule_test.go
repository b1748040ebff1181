package calc

import (
	"math"
	"testing"

	"plutus/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestMonthlyFromSchedule(t *testing.T) {
	t.Run("monthly", func(t *testing.T) {
		s := &models.PaymentSchedule{Frequency: models.FrequencyMonthly, Amount: 100}
		if got := MonthlyFromSchedule(s); got != 100 {
			t.Errorf("expected 100, got %v", got)
		}
	})

	t.Run("quarterly", func(t *testing.T) {
		s := &models.PaymentSchedule{Frequency: models.FrequencyQuarterly, Amount: 300}
		if got := MonthlyFromSchedule(s); !almostEqual(got, 100) {
			t.Errorf("expected 100, got %v", got)
		}
	})

	t.Run("annually", func(t *testing.T) {
		s := &models.PaymentSchedule{Frequency: models.FrequencyAnnually, Amount: 1200}
		if got := MonthlyFromSchedule(s); !almostEqual(got, 100) {
			t.Errorf("expected 100, got %v", got)
		}
	})

	t.Run("custom_with_months", func(t *testing.T) {
		s := &models.PaymentSchedule{Frequency: models.FrequencyCustom, Amount: 600, Months: []int{1, 7}}
		if got := MonthlyFromSchedule(s); !almostEqual(got, 100) {
			t.Errorf("expected 100, got %v", got)
		}
	})

	t.Run("custom_with_per_month_amounts", func(t *testing.T) {
		s := &models.PaymentSchedule{
			Frequency:     models.FrequencyCustom,
			CustomAmounts: map[int]float64{1: 500, 7: 500},
		}
		if got := MonthlyFromSchedule(s); !almostEqual(got, 1000.0/12) {
			t.Errorf("expected %v, got %v", 1000.0/12, got)
		}
	})

	t.Run("none", func(t *testing.T) {
		s := &models.PaymentSchedule{Frequency: models.FrequencyNone, Amount: 100}
		if got := MonthlyFromSchedule(s); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})

	t.Run("nil_schedule", func(t *testing.T) {
		if got := MonthlyFromSchedule(nil); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})

	t.Run("unknown_frequency", func(t *testing.T) {
		s := &models.PaymentSchedule{Frequency: "fortnightly", Amount: 100}
		if got := MonthlyFromSchedule(s); got != 0 {
			t.Errorf("expected 0 for unknown frequency, got %v", got)
		}
	})

	t.Run("negative_amount", func(t *testing.T) {
		s := &models.PaymentSchedule{Frequency: models.FrequencyMonthly, Amount: -50}
		if got := MonthlyFromSchedule(s); got != 0 {
			t.Errorf("expected 0 for negative amount, got %v", got)
		}
	})

	t.Run("non_finite_amount", func(t *testing.T) {
		for _, amount := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			s := &models.PaymentSchedule{Frequency: models.FrequencyMonthly, Amount: amount}
			got := MonthlyFromSchedule(s)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("non-finite result %v for amount %v", got, amount)
			}
			if got != 0 {
				t.Errorf("expected 0 for amount %v, got %v", amount, got)
			}
		}
	})

	t.Run("non_finite_custom_amounts", func(t *testing.T) {
		s := &models.PaymentSchedule{
			Frequency:     models.FrequencyCustom,
			CustomAmounts: map[int]float64{1: math.Inf(1), 7: 500},
		}
		got := MonthlyFromSchedule(s)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Fatalf("non-finite result %v", got)
		}
		if !almostEqual(got, 500.0/12) {
			t.Errorf("expected %v, got %v", 500.0/12, got)
		}
	})
}

func TestAnnualFromSchedule(t *testing.T) {
	t.Run("monthly_is_exactly_twelve_times_monthly", func(t *testing.T) {
		s := &models.PaymentSchedule{Frequency: models.FrequencyMonthly, Amount: 123.45}
		if got := AnnualFromSchedule(s); got != 123.45*12 {
			t.Errorf("expected %v, got %v", 123.45*12, got)
		}
	})

	t.Run("quarterly_sums_payment_months", func(t *testing.T) {
		s := &models.PaymentSchedule{Frequency: models.FrequencyQuarterly, Amount: 300}
		if got := AnnualFromSchedule(s); !almostEqual(got, 1200) {
			t.Errorf("expected 1200, got %v", got)
		}
	})

	t.Run("custom_sums_custom_amounts", func(t *testing.T) {
		s := &models.PaymentSchedule{
			Frequency:     models.FrequencyCustom,
			CustomAmounts: map[int]float64{1: 500, 7: 500},
		}
		if got := AnnualFromSchedule(s); !almostEqual(got, 1000) {
			t.Errorf("expected 1000, got %v", got)
		}
	})
}

func TestIsPaymentMonth(t *testing.T) {
	t.Run("monthly_always_pays", func(t *testing.T) {
		for m := 1; m <= 12; m++ {
			if !IsPaymentMonth(m, models.FrequencyMonthly, nil) {
				t.Errorf("expected month %d to be a payment month", m)
			}
		}
	})

	t.Run("quarterly_defaults", func(t *testing.T) {
		payingMonths := map[int]bool{3: true, 6: true, 9: true, 12: true}
		for m := 1; m <= 12; m++ {
			if got := IsPaymentMonth(m, models.FrequencyQuarterly, nil); got != payingMonths[m] {
				t.Errorf("month %d: expected %v, got %v", m, payingMonths[m], got)
			}
		}
	})

	t.Run("quarterly_explicit_months_override_defaults", func(t *testing.T) {
		months := []int{1, 4, 7, 10}
		if !IsPaymentMonth(1, models.FrequencyQuarterly, months) {
			t.Error("expected month 1 to pay with explicit months")
		}
		if IsPaymentMonth(3, models.FrequencyQuarterly, months) {
			t.Error("expected month 3 not to pay with explicit months")
		}
	})

	t.Run("annually_defaults_to_december", func(t *testing.T) {
		if !IsPaymentMonth(12, models.FrequencyAnnually, nil) {
			t.Error("expected December to pay")
		}
		if IsPaymentMonth(6, models.FrequencyAnnually, nil) {
			t.Error("expected June not to pay")
		}
	})

	t.Run("annually_explicit_month", func(t *testing.T) {
		if !IsPaymentMonth(4, models.FrequencyAnnually, []int{4}) {
			t.Error("expected April to pay with explicit month")
		}
		if IsPaymentMonth(12, models.FrequencyAnnually, []int{4}) {
			t.Error("expected December not to pay with explicit month")
		}
	})

	t.Run("custom_without_months_never_pays", func(t *testing.T) {
		for m := 1; m <= 12; m++ {
			if IsPaymentMonth(m, models.FrequencyCustom, nil) {
				t.Errorf("expected month %d not to pay", m)
			}
		}
	})

	t.Run("none_and_unknown_never_pay", func(t *testing.T) {
		if IsPaymentMonth(1, models.FrequencyNone, []int{1}) {
			t.Error("expected frequency none not to pay")
		}
		if IsPaymentMonth(1, "weekly", []int{1}) {
			t.Error("expected unknown frequency not to pay")
		}
	})
}

func TestAmountForMonth(t *testing.T) {
	t.Run("custom_amount_overrides_base_amount", func(t *testing.T) {
		s := &models.PaymentSchedule{
			Frequency:     models.FrequencyCustom,
			Amount:        100,
			Months:        []int{1},
			CustomAmounts: map[int]float64{1: 500},
		}
		if got := AmountForMonth(s, 1, 1); got != 500 {
			t.Errorf("expected 500, got %v", got)
		}
	})

	t.Run("payment_month_scales_by_quantity", func(t *testing.T) {
		s := &models.PaymentSchedule{Frequency: models.FrequencyQuarterly, Amount: 2}
		if got := AmountForMonth(s, 3, 100); got != 200 {
			t.Errorf("expected 200, got %v", got)
		}
	})

	t.Run("non_payment_month", func(t *testing.T) {
		s := &models.PaymentSchedule{Frequency: models.FrequencyQuarterly, Amount: 2}
		if got := AmountForMonth(s, 4, 100); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})

	t.Run("zero_or_negative_quantity", func(t *testing.T) {
		s := &models.PaymentSchedule{Frequency: models.FrequencyMonthly, Amount: 100}
		if got := AmountForMonth(s, 1, 0); got != 0 {
			t.Errorf("expected 0 for zero quantity, got %v", got)
		}
		if got := AmountForMonth(s, 1, -5); got != 0 {
			t.Errorf("expected 0 for negative quantity, got %v", got)
		}
	})

	t.Run("non_finite_quantity", func(t *testing.T) {
		s := &models.PaymentSchedule{Frequency: models.FrequencyMonthly, Amount: 100}
		for _, qty := range []float64{math.NaN(), math.Inf(1)} {
			got := AmountForMonth(s, 1, qty)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("non-finite result %v for quantity %v", got, qty)
			}
		}
	})

	t.Run("frequency_none_short_circuits", func(t *testing.T) {
		s := &models.PaymentSchedule{
			Frequency:     models.FrequencyNone,
			Amount:        100,
			CustomAmounts: map[int]float64{1: 500},
		}
		if got := AmountForMonth(s, 1, 1); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})
}
