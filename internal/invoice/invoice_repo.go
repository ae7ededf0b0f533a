package invoice

import (
	"context"

	"gorm.io/gorm"
)

type ListFilter struct {
	Search string
	Page   int
	Limit  int
}

//go:generate mockgen -source=invoice_repo.go -destination=mock/invoice_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, inv *Invoice) error
	FindByID(ctx context.Context, id string) (*Invoice, error)
	FindPaged(ctx context.Context, filter ListFilter) ([]Invoice, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, inv *Invoice) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Invoice, error) {
	var inv Invoice
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&inv, "id = ?", id).Error
	return &inv, err
}

func (r *repository) FindPaged(ctx context.Context, filter ListFilter) ([]Invoice, int64, error) {
	q := r.db.WithContext(ctx).Model(&Invoice{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("invoice_no ILIKE ? OR email ILIKE ?", pattern, pattern)
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

	var rows []Invoice
	err := q.
		Preload("Items").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error
	return rows, total, err
}
