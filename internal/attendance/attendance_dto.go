package attendance

type AddBreakRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type ListQuery struct {
	Month  int    `form:"month" binding:"omitempty,min=1,max=12"`
	Year   int    `form:"year" binding:"omitempty,min=2000"`
	Date   string `form:"date"`
	Search string `form:"search"`
	Page   int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int    `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}

type BreakResponse struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"duration_minutes"`
	Extended        bool   `json:"extended"`
}

type AttendanceResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	EmployeeCode   string          `json:"employee_code,omitempty"`
	EmployeeName   string          `json:"employee_name,omitempty"`
	Department     string          `json:"department,omitempty"`
	Designation    string          `json:"designation,omitempty"`
	AttendanceDate string          `json:"attendance_date"`
	PunchIn        *string         `json:"punch_in,omitempty"`
	PunchOut       *string         `json:"punch_out,omitempty"`
	Status         string          `json:"status"`
	FaceScore      *float64        `json:"face_score,omitempty"`
	Breaks         []BreakResponse `json:"breaks,omitempty"`
}

type PunchResponse struct {
	Message    string             `json:"message"`
	Attendance AttendanceResponse `json:"attendance"`
}
