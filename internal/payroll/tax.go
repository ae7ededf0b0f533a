package payroll

// TaxMode tags how the tax value is interpreted, instead of inferring it
// from the value's magnitude.
type TaxMode string

const (
	TaxPercent TaxMode = "percent"
	TaxFixed   TaxMode = "fixed"
)

// TaxInput is an explicit tagged tax: either a percentage rate applied to
// the policy's tax base, or a fixed currency amount.
type TaxInput struct {
	Mode  TaxMode
	Value float64
}

func Percent(rate float64) TaxInput {
	return TaxInput{Mode: TaxPercent, Value: rate}
}

func Fixed(amount float64) TaxInput {
	return TaxInput{Mode: TaxFixed, Value: amount}
}

// ResolveTax maps a bare numeric tax to a tagged one the way legacy
// callers expect: 0 < v <= 100 is a percentage, anything else a fixed
// amount. New callers should pass the mode explicitly; this inference
// cannot tell a 100-unit fixed tax from a 100% rate.
func ResolveTax(v float64) TaxInput {
	if v > 0 && v <= 100 {
		return Percent(v)
	}
	return Fixed(v)
}

// Amount computes the currency tax for a given base. The base is the
// policy-specific percentage base; fixed taxes ignore it.
func (t TaxInput) Amount(base float64) float64 {
	if t.Mode == TaxPercent {
		return round2(base * t.Value / 100)
	}
	return t.Value
}
