package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

const (
	DayTypeFull = "FULL"
	DayTypeHalf = "HALF"
)

type Leave struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`
	LeaveType  string    `gorm:"type:varchar(30);not null"`
	StartDate  time.Time `gorm:"type:date;not null"`
	EndDate    time.Time `gorm:"type:date;not null"`
	DayType    string    `gorm:"type:varchar(10);not null;default:'FULL'"`

	// TotalDays is the requested span in days; a half day counts 0.5.
	TotalDays float64 `gorm:"type:numeric(5,1);not null"`

	Reason string `gorm:"type:text"`
	Status string `gorm:"type:varchar(20);not null;default:'PENDING';index"`

	// Paid is decided at approval by comparing TotalDays against the
	// employee's remaining balance. Meaningless while PENDING.
	Paid bool `gorm:"not null;default:false"`

	ApprovedBy *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Leave) TableName() string {
	return "leaves"
}

type EmployeeRef struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeCode     string     `gorm:"column:employee_code"`
	FullName         string     `gorm:"column:full_name"`
	Email            string     `gorm:"column:email"`
	ReportingManager *uuid.UUID `gorm:"column:reporting_manager"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
