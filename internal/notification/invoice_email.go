package notification

import (
	"fmt"
	"strings"
)

// InvoiceLine is one billed row as it appears in the email table.
type InvoiceLine struct {
	ItemName string
	Quantity int
	Rate     float64
	Amount   float64
}

type InvoiceSummary struct {
	InvoiceNo  string
	ClientName string
	Email      string
	Items      []InvoiceLine
	Subtotal   float64
	GSTPercent float64
	GSTAmount  float64
	GrandTotal float64
}

func InvoiceEmailSubject(s InvoiceSummary) string {
	return fmt.Sprintf("Your Invoice %s", s.InvoiceNo)
}

func InvoiceEmailBody(s InvoiceSummary) string {
	var b strings.Builder

	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto;">`)
	fmt.Fprintf(&b, `<h2>Invoice %s</h2><p>Hi <b>%s</b>, please find your invoice details below.</p>`,
		s.InvoiceNo, s.ClientName)

	b.WriteString(`<table width="100%" style="border-collapse: collapse;">`)
	b.WriteString(`<tr>` +
		`<th style="padding:6px;border:1px solid #ddd;">#</th>` +
		`<th style="padding:6px;border:1px solid #ddd;">Item</th>` +
		`<th style="padding:6px;border:1px solid #ddd;">Qty</th>` +
		`<th style="padding:6px;border:1px solid #ddd;">Rate</th>` +
		`<th style="padding:6px;border:1px solid #ddd;">Amount</th>` +
		`</tr>`)
	for i, item := range s.Items {
		fmt.Fprintf(&b,
			`<tr><td style="padding:6px;border:1px solid #ddd;">%d</td>`+
				`<td style="padding:6px;border:1px solid #ddd;">%s</td>`+
				`<td style="padding:6px;border:1px solid #ddd;text-align:right;">%d</td>`+
				`<td style="padding:6px;border:1px solid #ddd;text-align:right;">%.2f</td>`+
				`<td style="padding:6px;border:1px solid #ddd;text-align:right;">%.2f</td></tr>`,
			i+1, item.ItemName, item.Quantity, item.Rate, item.Amount)
	}
	b.WriteString(`</table>`)

	fmt.Fprintf(&b, `<p>Subtotal: %.2f<br>GST (%.0f%%): %.2f</p>`, s.Subtotal, s.GSTPercent, s.GSTAmount)
	fmt.Fprintf(&b, `<h3>Grand Total: %.2f</h3></div>`, s.GrandTotal)

	return b.String()
}
