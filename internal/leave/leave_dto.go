package leave

type ApplyLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	DayType   string `json:"day_type" binding:"omitempty,oneof=FULL HALF"`
	Reason    string `json:"reason" binding:"required"`
}

type DecideLeaveRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
	Search string `form:"search"`
	Page   int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int    `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeCode string  `json:"employee_code,omitempty"`
	EmployeeName string  `json:"employee_name,omitempty"`
	LeaveType    string  `json:"leave_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	DayType      string  `json:"day_type"`
	TotalDays    float64 `json:"total_days"`
	Reason       string  `json:"reason,omitempty"`
	Status       string  `json:"status"`
	Paid         bool    `json:"paid"`
	ApprovedBy   *string `json:"approved_by,omitempty"`
}

type DecisionResponse struct {
	Message string        `json:"message"`
	Leave   LeaveResponse `json:"leave"`
}
