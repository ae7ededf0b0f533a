package payroll

type GeneratePayrollRequest struct {
	EmployeeID  string `json:"employee_id"`
	PeriodStart string `json:"period_start" binding:"required"`
	PeriodEnd   string `json:"period_end" binding:"required"`

	BasicPay float64 `json:"basic_pay" binding:"omitempty,gt=0"`

	// Tax is a percentage when TaxMode is "percent", a currency amount
	// when "fixed". Without TaxMode the legacy magnitude inference
	// applies: 0 < tax <= 100 means percent.
	Tax     float64 `json:"tax" binding:"omitempty,gte=0"`
	TaxMode string  `json:"tax_mode" binding:"omitempty,oneof=percent fixed"`

	Bonus          float64 `json:"bonus" binding:"omitempty,gte=0"`
	ExtraDeduction float64 `json:"extra_deduction" binding:"omitempty,gte=0"`

	LeavePolicy string `json:"leave_policy" binding:"omitempty,oneof=overlap anchor"`
}

type ListQuery struct {
	Employee string `form:"employee"`
	Month    int    `form:"month" binding:"omitempty,min=1,max=12"`
	Year     int    `form:"year" binding:"omitempty,min=2000"`
	Search   string `form:"search"`
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit    int    `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}

type PayrollResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code,omitempty"`
	EmployeeName string `json:"employee_name,omitempty"`
	Email        string `json:"email,omitempty"`

	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`

	BasicPay       float64 `json:"basic_pay"`
	Tax            float64 `json:"tax"`
	TaxMode        string  `json:"tax_mode"`
	Bonus          float64 `json:"bonus"`
	ExtraDeduction float64 `json:"extra_deduction"`

	LeavePolicy string `json:"leave_policy"`

	TotalDaysInPeriod int     `json:"total_days_in_period"`
	TotalWorkingDays  int     `json:"total_working_days"`
	PresentDays       float64 `json:"present_days"`
	PaidLeaveDays     float64 `json:"paid_leave_days"`
	UnpaidLeaveDays   float64 `json:"unpaid_leave_days"`

	Deduction float64 `json:"deduction"`
	TaxAmount float64 `json:"tax_amount"`
	NetPay    float64 `json:"net_pay"`

	CreatedAt string `json:"created_at,omitempty"`
}

type GenerateResponse struct {
	Message        string           `json:"message"`
	GeneratedCount int              `json:"generated_count"`
	Payroll        *PayrollResponse `json:"payroll,omitempty"`
}
