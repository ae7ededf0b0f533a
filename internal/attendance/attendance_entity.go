package attendance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Day classifications. LEAVE and HOLIDAY rows are written by other
// modules (leave approval, calendar imports), never by a punch.
const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
	StatusHalfDay = "HALF_DAY"
	StatusWFH     = "WFH"
	StatusLeave   = "LEAVE"
	StatusHoliday = "HOLIDAY"
)

type Attendance struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_employee_date"`

	// AttendanceDate is the day at midnight, one row per employee per day.
	AttendanceDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_attendance_employee_date"`

	// Month and Year are denormalized from AttendanceDate for list filters.
	Month int `gorm:"not null;index"`
	Year  int `gorm:"not null;index"`

	PunchIn  *time.Time `gorm:"type:timestamptz"`
	PunchOut *time.Time `gorm:"type:timestamptz"`

	Status string `gorm:"type:varchar(20);not null;default:'PRESENT';index"`

	// FaceScore is the similarity score (0..100) of a verified punch-in.
	// Nil when the employee had no enrolled embedding.
	FaceScore *float64 `gorm:"type:numeric(5,2)"`

	Breaks []Break `gorm:"foreignKey:AttendanceID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendances"
}

type Break struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AttendanceID uuid.UUID `gorm:"type:uuid;not null;index"`
	StartTime    time.Time `gorm:"type:timestamptz;not null"`
	EndTime      time.Time `gorm:"type:timestamptz;not null"`

	DurationMinutes int `gorm:"not null"`

	// Extended marks breaks longer than an hour.
	Extended bool `gorm:"not null;default:false"`

	CreatedAt time.Time
}

func (Break) TableName() string {
	return "attendance_breaks"
}

// EmployeeRef is a read-only projection of the employees table used to
// preload names into listings.
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
