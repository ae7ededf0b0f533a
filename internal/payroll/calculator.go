package payroll

import "math"

// CalcInput carries everything the calculator needs. Day counts come from
// the attendance and leave aggregators.
type CalcInput struct {
	BasicPay       float64
	Tax            TaxInput
	Bonus          float64
	ExtraDeduction float64

	WorkingDays     int
	PresentDays     float64
	PaidLeaveDays   float64
	UnpaidLeaveDays float64
}

// Breakdown is the computed monetary result.
type Breakdown struct {
	PerDayRate float64
	Deduction  float64
	TaxAmount  float64
	NetPay     float64
}

// round2 rounds half-up to 2 decimal places. Applied at every monetary
// step so repeated runs cannot drift.
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// Calculate runs the variant selected by policy. Unknown policies fall
// back to overlap proration.
func Calculate(policy string, in CalcInput) Breakdown {
	if policy == PolicyAnchor {
		return calculateAnchor(in)
	}
	return calculateOverlap(in)
}

// calculateOverlap prorates against the period's real working days. The
// percentage tax base is basicPay - deduction + bonus.
func calculateOverlap(in CalcInput) Breakdown {
	var perDay float64
	if in.WorkingDays > 0 {
		perDay = round2(in.BasicPay / float64(in.WorkingDays))
	}
	deduction := round2(perDay * in.UnpaidLeaveDays)
	taxAmount := in.Tax.Amount(in.BasicPay - deduction + in.Bonus)

	net := round2(in.BasicPay - deduction - taxAmount + in.Bonus - in.ExtraDeduction)
	if net < 0 {
		net = 0
	}

	return Breakdown{
		PerDayRate: perDay,
		Deduction:  deduction,
		TaxAmount:  taxAmount,
		NetPay:     net,
	}
}

// calculateAnchor normalizes to a 30-day month. The percentage tax base
// is the gross basicPay + bonus.
func calculateAnchor(in CalcInput) Breakdown {
	daily := round2(in.BasicPay / anchorMonthDays)
	deduction := round2(daily * in.UnpaidLeaveDays)
	taxAmount := in.Tax.Amount(in.BasicPay + in.Bonus)

	net := round2(in.BasicPay - deduction - taxAmount + in.Bonus - in.ExtraDeduction)
	if net < 0 {
		net = 0
	}

	return Breakdown{
		PerDayRate: daily,
		Deduction:  deduction,
		TaxAmount:  taxAmount,
		NetPay:     net,
	}
}
