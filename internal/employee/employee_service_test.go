package employee

import (
	"context"
	"errors"
	"testing"

	employeeerrors "go-hrms/internal/employee/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeEmployeeRepo struct {
	createFn           func(ctx context.Context, e *Employee) error
	findAllFn          func(ctx context.Context) ([]Employee, error)
	findByManagerFn    func(ctx context.Context, managerID string) ([]Employee, error)
	findByIDFn         func(ctx context.Context, id string) (*Employee, error)
	findByEmailFn      func(ctx context.Context, email string) (*Employee, error)
	findManagersFn     func(ctx context.Context) ([]Employee, error)
	updateFn           func(ctx context.Context, e *Employee) error
	setFaceEmbeddingFn func(ctx context.Context, id string, embedding []byte) error
	deleteFn           func(ctx context.Context, id string) error
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e *Employee) error {
	return f.createFn(ctx, e)
}

func (f *fakeEmployeeRepo) FindAll(ctx context.Context) ([]Employee, error) {
	return f.findAllFn(ctx)
}

func (f *fakeEmployeeRepo) FindByManager(ctx context.Context, managerID string) ([]Employee, error) {
	return f.findByManagerFn(ctx, managerID)
}

func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id string) (*Employee, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeEmployeeRepo) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	return f.findByEmailFn(ctx, email)
}

func (f *fakeEmployeeRepo) FindManagers(ctx context.Context) ([]Employee, error) {
	return f.findManagersFn(ctx)
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e *Employee) error {
	return f.updateFn(ctx, e)
}

func (f *fakeEmployeeRepo) SetFaceEmbedding(ctx context.Context, id string, embedding []byte) error {
	return f.setFaceEmbeddingFn(ctx, id, embedding)
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

type fakeExtractor struct {
	extractFn func(ctx context.Context, image []byte) ([]float64, error)
}

func (f *fakeExtractor) Extract(ctx context.Context, image []byte) ([]float64, error) {
	return f.extractFn(ctx, image)
}

func validCreateRequest() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		EmployeeCode:   "EMP-001",
		FullName:       "Asha Verma",
		DateOfBirth:    "1994-03-12",
		Email:          "asha@example.com",
		Mobile:         "9876543210",
		JoiningDate:    "2024-01-15",
		Department:     "Engineering",
		Designation:    "Backend Engineer",
		EmploymentType: EmploymentFullTime,
		BasicPay:       42000,
	}
}

func TestServiceCreate(t *testing.T) {
	t.Run("creates an active employee", func(t *testing.T) {
		var persisted *Employee
		repo := &fakeEmployeeRepo{
			findByEmailFn: func(ctx context.Context, email string) (*Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
			createFn: func(ctx context.Context, e *Employee) error {
				persisted = e
				return nil
			},
		}

		svc := NewService(repo, &fakeExtractor{})
		resp, err := svc.Create(context.Background(), validCreateRequest())

		require.NoError(t, err)
		require.NotNil(t, persisted)
		assert.Equal(t, StatusActive, persisted.Status)
		assert.Equal(t, "EMP-001", resp.EmployeeCode)
		assert.Equal(t, 42000.0, resp.BasicPay)
		assert.False(t, resp.FaceEnrolled)
	})

	t.Run("rejects a taken email", func(t *testing.T) {
		repo := &fakeEmployeeRepo{
			findByEmailFn: func(ctx context.Context, email string) (*Employee, error) {
				return &Employee{ID: uuid.New(), Email: email}, nil
			},
		}

		svc := NewService(repo, &fakeExtractor{})
		_, err := svc.Create(context.Background(), validCreateRequest())

		assert.ErrorIs(t, err, employeeerrors.ErrEmailTaken)
	})

	t.Run("rejects an unknown reporting manager", func(t *testing.T) {
		managerID := uuid.New().String()
		repo := &fakeEmployeeRepo{
			findByEmailFn: func(ctx context.Context, email string) (*Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
			findByIDFn: func(ctx context.Context, id string) (*Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		req := validCreateRequest()
		req.ReportingManager = &managerID

		svc := NewService(repo, &fakeExtractor{})
		_, err := svc.Create(context.Background(), req)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		req := validCreateRequest()
		req.DateOfBirth = "12-03-1994"

		svc := NewService(&fakeEmployeeRepo{}, &fakeExtractor{})
		_, err := svc.Create(context.Background(), req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidDateFormat)
	})
}

func TestServiceGetAllScoping(t *testing.T) {
	adminID := uuid.New()
	managerID := uuid.New()
	reportID := uuid.New()

	all := []Employee{
		{ID: adminID, EmployeeCode: "EMP-001", FullName: "Admin"},
		{ID: managerID, EmployeeCode: "EMP-002", FullName: "Manager"},
		{ID: reportID, EmployeeCode: "EMP-003", FullName: "Report"},
	}

	repo := &fakeEmployeeRepo{
		findAllFn: func(ctx context.Context) ([]Employee, error) {
			return all, nil
		},
		findByManagerFn: func(ctx context.Context, id string) ([]Employee, error) {
			assert.Equal(t, managerID.String(), id)
			return []Employee{all[2]}, nil
		},
		findByIDFn: func(ctx context.Context, id string) (*Employee, error) {
			for i := range all {
				if all[i].ID.String() == id {
					return &all[i], nil
				}
			}
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewService(repo, &fakeExtractor{})

	t.Run("admin sees everyone", func(t *testing.T) {
		rows, err := svc.GetAll(context.Background(), "admin", adminID.String())
		require.NoError(t, err)
		assert.Len(t, rows, 3)
	})

	t.Run("manager sees reports plus self", func(t *testing.T) {
		rows, err := svc.GetAll(context.Background(), "manager", managerID.String())
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "EMP-003", rows[0].EmployeeCode)
		assert.Equal(t, "EMP-002", rows[1].EmployeeCode)
	})

	t.Run("employee sees only their own record", func(t *testing.T) {
		rows, err := svc.GetAll(context.Background(), "employee", reportID.String())
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "EMP-003", rows[0].EmployeeCode)
	})

	t.Run("employee without a record sees nothing", func(t *testing.T) {
		rows, err := svc.GetAll(context.Background(), "employee", uuid.New().String())
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestServiceEnrollFace(t *testing.T) {
	id := uuid.New()

	t.Run("stores the extracted embedding", func(t *testing.T) {
		var stored []byte
		repo := &fakeEmployeeRepo{
			findByIDFn: func(ctx context.Context, _ string) (*Employee, error) {
				return &Employee{ID: id}, nil
			},
			setFaceEmbeddingFn: func(ctx context.Context, _ string, embedding []byte) error {
				stored = embedding
				return nil
			},
		}
		extractor := &fakeExtractor{
			extractFn: func(ctx context.Context, image []byte) ([]float64, error) {
				return []float64{0.1, 0.2, 0.3}, nil
			},
		}

		svc := NewService(repo, extractor)
		resp, err := svc.EnrollFace(context.Background(), id.String(), []byte("jpeg-bytes"))

		require.NoError(t, err)
		assert.True(t, resp.FaceEnrolled)
		assert.Equal(t, 3, resp.Dimensions)
		assert.JSONEq(t, `[0.1,0.2,0.3]`, string(stored))
	})

	t.Run("rejects an empty image", func(t *testing.T) {
		svc := NewService(&fakeEmployeeRepo{}, &fakeExtractor{})
		_, err := svc.EnrollFace(context.Background(), id.String(), nil)

		assert.ErrorIs(t, err, employeeerrors.ErrFaceImageRequired)
	})

	t.Run("propagates extraction failures", func(t *testing.T) {
		extractErr := errors.New("no face detected")
		repo := &fakeEmployeeRepo{
			findByIDFn: func(ctx context.Context, _ string) (*Employee, error) {
				return &Employee{ID: id}, nil
			},
		}
		extractor := &fakeExtractor{
			extractFn: func(ctx context.Context, image []byte) ([]float64, error) {
				return nil, extractErr
			},
		}

		svc := NewService(repo, extractor)
		_, err := svc.EnrollFace(context.Background(), id.String(), []byte("jpeg-bytes"))

		assert.ErrorIs(t, err, extractErr)
	})
}

func TestServiceUpdate(t *testing.T) {
	id := uuid.New()
	managerID := uuid.New()

	newRepo := func(stored **Employee) *fakeEmployeeRepo {
		return &fakeEmployeeRepo{
			findByIDFn: func(ctx context.Context, _ string) (*Employee, error) {
				return &Employee{
					ID:               id,
					EmployeeCode:     "EMP-001",
					FullName:         "Asha Verma",
					Status:           StatusActive,
					BasicPay:         42000,
					PaidLeaveBalance: 12,
					ReportingManager: &managerID,
				}, nil
			},
			updateFn: func(ctx context.Context, e *Employee) error {
				*stored = e
				return nil
			},
		}
	}

	baseRequest := func() UpdateEmployeeRequest {
		return UpdateEmployeeRequest{
			FullName:       "Asha V",
			Mobile:         "9876543210",
			Department:     "Engineering",
			Designation:    "Senior Engineer",
			EmploymentType: EmploymentFullTime,
			Status:         StatusOnNotice,
		}
	}

	t.Run("updates profile fields", func(t *testing.T) {
		var stored *Employee
		svc := NewService(newRepo(&stored), &fakeExtractor{})

		req := baseRequest()
		req.BasicPay = 50000

		resp, err := svc.Update(context.Background(), id.String(), req)
		require.NoError(t, err)
		assert.Equal(t, "Asha V", resp.FullName)
		assert.Equal(t, StatusOnNotice, resp.Status)
		assert.Equal(t, 50000.0, resp.BasicPay)
	})

	t.Run("omitted balance and manager keep stored values", func(t *testing.T) {
		var stored *Employee
		svc := NewService(newRepo(&stored), &fakeExtractor{})

		_, err := svc.Update(context.Background(), id.String(), baseRequest())
		require.NoError(t, err)

		require.NotNil(t, stored)
		assert.Equal(t, 12.0, stored.PaidLeaveBalance)
		require.NotNil(t, stored.ReportingManager)
		assert.Equal(t, managerID, *stored.ReportingManager)
	})

	t.Run("explicit zero balance is stored", func(t *testing.T) {
		var stored *Employee
		svc := NewService(newRepo(&stored), &fakeExtractor{})

		req := baseRequest()
		zero := 0.0
		req.PaidLeaveBalance = &zero

		_, err := svc.Update(context.Background(), id.String(), req)
		require.NoError(t, err)

		require.NotNil(t, stored)
		assert.Equal(t, 0.0, stored.PaidLeaveBalance)
	})

	t.Run("empty manager clears the reference", func(t *testing.T) {
		var stored *Employee
		svc := NewService(newRepo(&stored), &fakeExtractor{})

		req := baseRequest()
		none := ""
		req.ReportingManager = &none

		_, err := svc.Update(context.Background(), id.String(), req)
		require.NoError(t, err)

		require.NotNil(t, stored)
		assert.Nil(t, stored.ReportingManager)
	})
}

func TestServiceDelete(t *testing.T) {
	t.Run("unknown employee", func(t *testing.T) {
		repo := &fakeEmployeeRepo{
			findByIDFn: func(ctx context.Context, _ string) (*Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		svc := NewService(repo, &fakeExtractor{})
		err := svc.Delete(context.Background(), uuid.New().String())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}
