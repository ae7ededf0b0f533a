package employee

type CreateEmployeeRequest struct {
	EmployeeCode     string  `json:"employee_code" binding:"required"`
	FullName         string  `json:"full_name" binding:"required"`
	Gender           string  `json:"gender" binding:"omitempty,oneof=MALE FEMALE OTHER"`
	DateOfBirth      string  `json:"date_of_birth" binding:"required"`
	Email            string  `json:"email" binding:"required,email"`
	Mobile           string  `json:"mobile" binding:"required"`
	JoiningDate      string  `json:"joining_date" binding:"required"`
	Department       string  `json:"department" binding:"required"`
	Designation      string  `json:"designation" binding:"required"`
	ReportingManager *string `json:"reporting_manager"`
	EmploymentType   string  `json:"employment_type" binding:"required,oneof=FULL_TIME INTERN CONTRACT"`
	BasicPay         float64 `json:"basic_pay" binding:"omitempty,gt=0"`
	PaidLeaveBalance float64 `json:"paid_leave_balance" binding:"omitempty,gte=0"`
}

type UpdateEmployeeRequest struct {
	FullName         string  `json:"full_name" binding:"required"`
	Gender           string  `json:"gender" binding:"omitempty,oneof=MALE FEMALE OTHER"`
	Mobile           string  `json:"mobile" binding:"required"`
	Department       string  `json:"department" binding:"required"`
	Designation      string  `json:"designation" binding:"required"`
	ReportingManager *string `json:"reporting_manager"`
	EmploymentType   string  `json:"employment_type" binding:"required,oneof=FULL_TIME INTERN CONTRACT"`
	Status           string  `json:"status" binding:"required,oneof=ACTIVE ON_NOTICE RESIGNED"`
	BasicPay         float64 `json:"basic_pay" binding:"omitempty,gt=0"`

	// Pointer so an omitted field leaves the stored balance untouched; the
	// zero value is a legitimate balance.
	PaidLeaveBalance *float64 `json:"paid_leave_balance" binding:"omitempty,gte=0"`
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	EmployeeCode     string  `json:"employee_code"`
	FullName         string  `json:"full_name"`
	Gender           string  `json:"gender,omitempty"`
	DateOfBirth      string  `json:"date_of_birth,omitempty"`
	Email            string  `json:"email"`
	Mobile           string  `json:"mobile,omitempty"`
	JoiningDate      string  `json:"joining_date,omitempty"`
	Department       string  `json:"department,omitempty"`
	Designation      string  `json:"designation,omitempty"`
	ReportingManager *string `json:"reporting_manager,omitempty"`
	EmploymentType   string  `json:"employment_type"`
	Status           string  `json:"status"`
	BasicPay         float64 `json:"basic_pay"`
	PaidLeaveBalance float64 `json:"paid_leave_balance"`
	FaceEnrolled     bool    `json:"face_enrolled"`
}

type EnrollFaceResponse struct {
	EmployeeID   string `json:"employee_id"`
	FaceEnrolled bool   `json:"face_enrolled"`
	Dimensions   int    `json:"dimensions"`
}
