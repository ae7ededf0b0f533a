package payroll

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const payrollUniqueConstraint = "idx_payroll_employee_period"

type ListFilter struct {
	EmployeeID string
	Month      int
	Year       int
	Search     string
	Page       int
	Limit      int
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, p *Payroll) error
	FindByID(ctx context.Context, id string) (*Payroll, error)
	FindPaged(ctx context.Context, filter ListFilter) ([]Payroll, int64, error)
	CountPresentDays(ctx context.Context, employeeID string, start, end time.Time) (int64, error)
	FindApprovedLeaves(ctx context.Context, employeeID string, start, end time.Time) ([]LeaveSpan, error)
	FindActiveEmployees(ctx context.Context) ([]ActiveEmployee, error)
	FindEmployee(ctx context.Context, id string) (*ActiveEmployee, error)
}

// ActiveEmployee is the slice of the employees table payroll generation
// reads. It never writes employees.
type ActiveEmployee struct {
	ID       string
	FullName string
	Email    string
	BasicPay float64
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// IsDuplicatePayroll reports whether err is the unique-index violation
// raised when a record already exists for the employee and period.
func IsDuplicatePayroll(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, payrollUniqueConstraint)
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key value") && strings.Contains(msg, payrollUniqueConstraint)
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payroll, error) {
	var p Payroll
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) FindPaged(ctx context.Context, filter ListFilter) ([]Payroll, int64, error) {
	q := r.db.WithContext(ctx).Model(&Payroll{})

	if filter.EmployeeID != "" {
		q = q.Where("payrolls.employee_id = ?", filter.EmployeeID)
	}
	if filter.Month > 0 && filter.Year > 0 {
		monthStart := time.Date(filter.Year, time.Month(filter.Month), 1, 0, 0, 0, 0, time.UTC)
		monthEnd := monthStart.AddDate(0, 1, -1)
		q = q.Where("payrolls.period_start BETWEEN ? AND ?",
			monthStart.Format("2006-01-02"), monthEnd.Format("2006-01-02"))
	} else if filter.Year > 0 {
		q = q.Where("EXTRACT(YEAR FROM payrolls.period_start) = ?", filter.Year)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(
			"payrolls.employee_id IN (SELECT id FROM employees WHERE full_name ILIKE ? OR email ILIKE ?)",
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

	var rows []Payroll
	err := q.
		Preload("Employee").
		Order("period_start DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error
	return rows, total, err
}

// CountPresentDays counts attendance rows classified Present with a date
// in [start, end]. The comparison runs on the date-typed column so the
// server timezone cannot shift a boundary day out of the period.
func (r *repository) CountPresentDays(ctx context.Context, employeeID string, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("attendances").
		Where("employee_id = ?", employeeID).
		Where("status = ?", "PRESENT").
		Where("attendance_date BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count, err
}

// FindApprovedLeaves returns the approved leaves overlapping [start, end].
func (r *repository) FindApprovedLeaves(ctx context.Context, employeeID string, start, end time.Time) ([]LeaveSpan, error) {
	var rows []struct {
		StartDate time.Time
		EndDate   time.Time
		Paid      bool
	}
	err := r.db.WithContext(ctx).
		Table("leaves").
		Select("start_date, end_date, paid").
		Where("employee_id = ?", employeeID).
		Where("status = ?", "APPROVED").
		Where("start_date <= ? AND end_date >= ?", end.Format("2006-01-02"), start.Format("2006-01-02")).
		Where("deleted_at IS NULL").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	spans := make([]LeaveSpan, len(rows))
	for i, row := range rows {
		spans[i] = LeaveSpan{StartDate: row.StartDate, EndDate: row.EndDate, Paid: row.Paid}
	}
	return spans, nil
}

func (r *repository) FindActiveEmployees(ctx context.Context) ([]ActiveEmployee, error) {
	var rows []ActiveEmployee
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("id, full_name, email, basic_pay").
		Where("status = ?", "ACTIVE").
		Where("deleted_at IS NULL").
		Order("employee_code ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindEmployee(ctx context.Context, id string) (*ActiveEmployee, error) {
	var e ActiveEmployee
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("id, full_name, email, basic_pay").
		Where("id = ?", id).
		Where("deleted_at IS NULL").
		Take(&e).Error
	return &e, err
}
