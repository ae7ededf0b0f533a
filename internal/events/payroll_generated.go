package events

import "time"

const PayrollGeneratedTopic = "hr.payroll.generated.v1"

// PayrollGeneratedEvent is published through the outbox after a payroll
// record is committed. The notification consumer turns it into an email.
type PayrollGeneratedEvent struct {
	EventType     string    `json:"event_type"`
	PayrollID     string    `json:"payroll_id"`
	EmployeeID    string    `json:"employee_id"`
	EmployeeName  string    `json:"employee_name"`
	EmployeeEmail string    `json:"employee_email"`
	PeriodStart   string    `json:"period_start"`
	PeriodEnd     string    `json:"period_end"`
	BasicPay      float64   `json:"basic_pay"`
	Bonus         float64   `json:"bonus"`
	Tax           float64   `json:"tax"`
	TaxAmount     float64   `json:"tax_amount"`
	Deduction     float64   `json:"deduction"`
	NetPay        float64   `json:"net_pay"`
	OccurredAt    time.Time `json:"occurred_at"`
}
