package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTax(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  TaxMode
	}{
		{"small positive is percent", 2, TaxPercent},
		{"boundary 100 is percent", 100, TaxPercent},
		{"above 100 is fixed", 100.01, TaxFixed},
		{"large value is fixed", 500, TaxFixed},
		{"zero is fixed", 0, TaxFixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveTax(tt.value)
			assert.Equal(t, tt.want, got.Mode)
			assert.Equal(t, tt.value, got.Value)
		})
	}
}

func TestCalculateOverlap(t *testing.T) {
	t.Run("prorated month with percent tax", func(t *testing.T) {
		b := Calculate(PolicyOverlap, CalcInput{
			BasicPay:        30000,
			Tax:             Percent(10),
			Bonus:           1000,
			WorkingDays:     22,
			UnpaidLeaveDays: 2,
		})

		assert.Equal(t, 1363.64, b.PerDayRate)
		assert.Equal(t, 2727.28, b.Deduction)
		assert.Equal(t, 2827.27, b.TaxAmount)
		assert.Equal(t, 25445.45, b.NetPay)
	})

	t.Run("fixed tax is subtracted as-is", func(t *testing.T) {
		b := Calculate(PolicyOverlap, CalcInput{
			BasicPay:    30000,
			Tax:         Fixed(500),
			WorkingDays: 22,
		})

		assert.Equal(t, 500.0, b.TaxAmount)
		assert.Equal(t, 29500.0, b.NetPay)
	})

	t.Run("legacy value above 100 resolves to fixed", func(t *testing.T) {
		b := Calculate(PolicyOverlap, CalcInput{
			BasicPay:    30000,
			Tax:         ResolveTax(500),
			WorkingDays: 22,
		})

		assert.Equal(t, 500.0, b.TaxAmount)
	})

	t.Run("weekend-only period yields zero deduction", func(t *testing.T) {
		b := Calculate(PolicyOverlap, CalcInput{
			BasicPay:        30000,
			Tax:             Fixed(0),
			WorkingDays:     0,
			UnpaidLeaveDays: 2,
		})

		assert.Zero(t, b.PerDayRate)
		assert.Zero(t, b.Deduction)
		assert.Equal(t, 30000.0, b.NetPay)
	})

	t.Run("no unpaid days means no deduction", func(t *testing.T) {
		b := Calculate(PolicyOverlap, CalcInput{
			BasicPay:    30000,
			Tax:         Fixed(0),
			WorkingDays: 22,
		})

		assert.Zero(t, b.Deduction)
	})

	t.Run("net pay floors at zero", func(t *testing.T) {
		b := Calculate(PolicyOverlap, CalcInput{
			BasicPay:       1000,
			Tax:            Fixed(5000),
			WorkingDays:    22,
			ExtraDeduction: 2000,
		})

		assert.Zero(t, b.NetPay)
	})

	t.Run("extra deduction reduces net pay", func(t *testing.T) {
		b := Calculate(PolicyOverlap, CalcInput{
			BasicPay:       30000,
			Tax:            Fixed(0),
			WorkingDays:    22,
			ExtraDeduction: 1500,
		})

		assert.Equal(t, 28500.0, b.NetPay)
	})
}

func TestCalculateAnchor(t *testing.T) {
	t.Run("normalized month with percent tax on gross", func(t *testing.T) {
		b := Calculate(PolicyAnchor, CalcInput{
			BasicPay:        30000,
			Tax:             Percent(2),
			Bonus:           100,
			PresentDays:     20,
			PaidLeaveDays:   2,
			UnpaidLeaveDays: 8,
		})

		assert.Equal(t, 1000.0, b.PerDayRate)
		assert.Equal(t, 8000.0, b.Deduction)
		assert.Equal(t, 602.0, b.TaxAmount)
		assert.Equal(t, 21498.0, b.NetPay)
	})

	t.Run("percent base ignores the deduction", func(t *testing.T) {
		withUnpaid := Calculate(PolicyAnchor, CalcInput{
			BasicPay:        30000,
			Tax:             Percent(10),
			UnpaidLeaveDays: 5,
		})
		withoutUnpaid := Calculate(PolicyAnchor, CalcInput{
			BasicPay: 30000,
			Tax:      Percent(10),
		})

		assert.Equal(t, withoutUnpaid.TaxAmount, withUnpaid.TaxAmount)
	})
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1363.64, round2(30000.0/22))
	assert.Equal(t, 2827.27, round2(28272.72*0.10))
	assert.Equal(t, 0.13, round2(0.125))
	assert.Equal(t, 1.0, round2(0.999))
}
