package leave

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type ListFilter struct {
	// EmployeeID restricts to one employee's own requests.
	EmployeeID string
	// ManagerID restricts to a manager's reports plus the manager.
	ManagerID string
	Status    string
	Search    string
	Page      int
	Limit     int
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, l *Leave) error
	FindByID(ctx context.Context, id string) (*Leave, error)
	FindPaged(ctx context.Context, filter ListFilter) ([]Leave, int64, error)
	HasOverlappingPeriod(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	Update(ctx context.Context, l *Leave) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindPaged(ctx context.Context, filter ListFilter) ([]Leave, int64, error) {
	q := r.db.WithContext(ctx).Model(&Leave{})

	if filter.EmployeeID != "" {
		q = q.Where("leaves.employee_id = ?", filter.EmployeeID)
	}
	if filter.ManagerID != "" {
		q = q.Where(
			"leaves.employee_id = ? OR leaves.employee_id IN (SELECT id FROM employees WHERE reporting_manager = ?)",
			filter.ManagerID, filter.ManagerID,
		)
	}
	if filter.Status != "" {
		q = q.Where("leaves.status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(
			"leaves.employee_id IN (SELECT id FROM employees WHERE full_name ILIKE ? OR email ILIKE ?)",
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

	var rows []Leave
	err := q.
		Preload("Employee").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error
	return rows, total, err
}

// HasOverlappingPeriod reports whether the employee already has a pending
// or approved request touching [start, end].
func (r *repository) HasOverlappingPeriod(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("employee_id = ?", employeeID).
		Where("status IN ?", []string{StatusPending, StatusApproved}).
		Where("start_date <= ? AND end_date >= ?", end.Format("2006-01-02"), start.Format("2006-01-02")).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Save(l).Error
}
