package attendance

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ListFilter narrows listings. Zero values mean "no filter".
type ListFilter struct {
	EmployeeID string
	Month      int
	Year       int
	Date       *time.Time
	Search     string
	Page       int
	Limit      int
}

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, a *Attendance) error
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	FindPaged(ctx context.Context, filter ListFilter) ([]Attendance, int64, error)
	Update(ctx context.Context, a *Attendance) error
	AddBreak(ctx context.Context, b *Break) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Preload("Breaks").
		Where("employee_id = ?", employeeID).
		Where("attendance_date = ?", date.Format("2006-01-02")).
		First(&a).Error
	return &a, err
}

func (r *repository) FindPaged(ctx context.Context, filter ListFilter) ([]Attendance, int64, error) {
	q := r.db.WithContext(ctx).Model(&Attendance{})

	if filter.EmployeeID != "" {
		q = q.Where("attendances.employee_id = ?", filter.EmployeeID)
	}
	if filter.Month > 0 {
		q = q.Where("attendances.month = ?", filter.Month)
	}
	if filter.Year > 0 {
		q = q.Where("attendances.year = ?", filter.Year)
	}
	if filter.Date != nil {
		q = q.Where("attendances.attendance_date = ?", filter.Date.Format("2006-01-02"))
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(
			"attendances.employee_id IN (SELECT id FROM employees WHERE full_name ILIKE ? OR email ILIKE ?)",
			pattern, pattern,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	var rows []Attendance
	err := q.
		Preload("Breaks").
		Preload("Employee").
		Order("attendance_date DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) AddBreak(ctx context.Context, b *Break) error {
	return r.db.WithContext(ctx).Create(b).Error
}
