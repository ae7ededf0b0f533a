package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive   = "ACTIVE"
	StatusOnNotice = "ON_NOTICE"
	StatusResigned = "RESIGNED"
)

const (
	EmploymentFullTime = "FULL_TIME"
	EmploymentIntern   = "INTERN"
	EmploymentContract = "CONTRACT"
)

type Employee struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeCode string    `gorm:"type:varchar(30);not null;uniqueIndex"`
	FullName     string    `gorm:"type:varchar(120);not null"`
	Gender       string    `gorm:"type:varchar(10)"`
	DateOfBirth  time.Time `gorm:"type:date"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Mobile       string    `gorm:"type:varchar(20)"`
	JoiningDate  time.Time `gorm:"type:date"`
	Department   string    `gorm:"type:varchar(80)"`
	Designation  string    `gorm:"type:varchar(80)"`

	// ReportingManager references another employee row.
	ReportingManager *uuid.UUID `gorm:"type:uuid;index"`

	EmploymentType string  `gorm:"type:varchar(20);not null;default:'FULL_TIME'"`
	Status         string  `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	BasicPay       float64 `gorm:"type:numeric(12,2);not null;default:0"`

	// PaidLeaveBalance is decremented on leave approval, never by payroll.
	PaidLeaveBalance float64 `gorm:"type:numeric(5,1);not null;default:0"`

	// FaceEmbedding is the enrolled face vector, JSON-encoded []float64.
	// Nil until the employee enrolls.
	FaceEmbedding []byte `gorm:"type:jsonb"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
