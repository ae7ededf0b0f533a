package payroll

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payroll is one generated record per employee per period. The unique
// index is the duplicate-prevention mechanism: a conflicting insert means
// the record already exists, there is no read-then-write check.
type Payroll struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_payroll_employee_period"`

	PeriodStart time.Time `gorm:"type:date;not null;uniqueIndex:idx_payroll_employee_period;index"`
	PeriodEnd   time.Time `gorm:"type:date;not null;uniqueIndex:idx_payroll_employee_period"`

	BasicPay       float64 `gorm:"type:numeric(12,2);not null"`
	Tax            float64 `gorm:"type:numeric(12,2);not null;default:0"`
	TaxMode        string  `gorm:"type:varchar(10);not null;default:'percent'"`
	Bonus          float64 `gorm:"type:numeric(12,2);not null;default:0"`
	ExtraDeduction float64 `gorm:"type:numeric(12,2);not null;default:0"`

	LeavePolicy string `gorm:"type:varchar(10);not null;default:'overlap'"`

	TotalDaysInPeriod int     `gorm:"not null"`
	TotalWorkingDays  int     `gorm:"not null"`
	PresentDays       float64 `gorm:"type:numeric(5,1);not null;default:0"`
	PaidLeaveDays     float64 `gorm:"type:numeric(5,1);not null;default:0"`
	UnpaidLeaveDays   float64 `gorm:"type:numeric(5,1);not null;default:0"`

	Deduction float64 `gorm:"type:numeric(12,2);not null;default:0"`
	TaxAmount float64 `gorm:"type:numeric(12,2);not null;default:0"`
	NetPay    float64 `gorm:"type:numeric(12,2);not null"`

	CreatedBy *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Payroll) TableName() string {
	return "payrolls"
}

type EmployeeRef struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode string    `gorm:"column:employee_code"`
	FullName     string    `gorm:"column:full_name"`
	Email        string    `gorm:"column:email"`
	Department   string    `gorm:"column:department"`
	Designation  string    `gorm:"column:designation"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
