package notification

import (
	"fmt"
	"strings"
)

// PayrollSummary carries every figure the payroll email shows. Float
// amounts are already rounded by the calculator.
type PayrollSummary struct {
	EmployeeName string
	EmployeeMail string
	PeriodStart  string
	PeriodEnd    string
	BasicPay     float64
	Bonus        float64
	Tax          float64
	TaxAmount    float64
	Deduction    float64
	NetPay       float64
}

func PayrollEmailSubject(s PayrollSummary) string {
	return fmt.Sprintf("Your payslip for %s - %s", s.PeriodStart, s.PeriodEnd)
}

func PayrollEmailBody(s PayrollSummary) string {
	var b strings.Builder

	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto;">`)
	fmt.Fprintf(&b, `<h2>Payroll Summary</h2><p>Hi <b>%s</b>, your payroll for <b>%s</b> to <b>%s</b> has been processed.</p>`,
		s.EmployeeName, s.PeriodStart, s.PeriodEnd)

	b.WriteString(`<table width="100%" style="border-collapse: collapse;">`)
	row := func(label string, value float64) {
		fmt.Fprintf(&b,
			`<tr><td style="padding:6px;border:1px solid #ddd;">%s</td><td style="padding:6px;border:1px solid #ddd;text-align:right;">%.2f</td></tr>`,
			label, value)
	}
	row("Basic Pay", s.BasicPay)
	row("Bonus", s.Bonus)
	row("Tax", s.TaxAmount)
	row("Deduction for Unpaid Leaves", s.Deduction)
	b.WriteString(`</table>`)

	fmt.Fprintf(&b, `<h3>Net Pay: %.2f</h3></div>`, s.NetPay)

	return b.String()
}
