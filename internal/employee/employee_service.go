package employee

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/facerec"
	"go-hrms/internal/rbac"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, actorRole, actorEmployeeID string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetManagers(ctx context.Context) ([]EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	EnrollFace(ctx context.Context, id string, image []byte) (EnrollFaceResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	extractor facerec.Extractor
	logger    *zap.Logger
}

func NewService(repo Repository, extractor facerec.Extractor, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, extractor: extractor, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return EmployeeResponse{}, err
	}
	joining, err := parseDate(req.JoiningDate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return EmployeeResponse{}, employeeerrors.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return EmployeeResponse{}, err
	}

	var manager *uuid.UUID
	if req.ReportingManager != nil && *req.ReportingManager != "" {
		managerID, err := uuid.Parse(*req.ReportingManager)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
		}
		if _, err := s.repo.FindByID(ctx, managerID.String()); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			}
			return EmployeeResponse{}, err
		}
		manager = &managerID
	}

	e := &Employee{
		ID:               uuid.New(),
		EmployeeCode:     req.EmployeeCode,
		FullName:         req.FullName,
		Gender:           req.Gender,
		DateOfBirth:      dob,
		Email:            req.Email,
		Mobile:           req.Mobile,
		JoiningDate:      joining,
		Department:       req.Department,
		Designation:      req.Designation,
		ReportingManager: manager,
		EmploymentType:   req.EmploymentType,
		Status:           StatusActive,
		BasicPay:         req.BasicPay,
		PaidLeaveBalance: req.PaidLeaveBalance,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("employee created",
		zap.String("employee_id", e.ID.String()),
		zap.String("employee_code", e.EmployeeCode),
	)

	return mapToResponse(*e), nil
}

// GetAll scopes the listing by role: admins see everyone, managers see
// their reports plus themselves, employees see only their own record.
func (s *service) GetAll(ctx context.Context, actorRole, actorEmployeeID string) ([]EmployeeResponse, error) {
	var (
		rows []Employee
		err  error
	)

	switch actorRole {
	case rbac.RoleAdmin:
		rows, err = s.repo.FindAll(ctx)
	case rbac.RoleManager:
		rows, err = s.repo.FindByManager(ctx, actorEmployeeID)
		if err == nil {
			if self, selfErr := s.repo.FindByID(ctx, actorEmployeeID); selfErr == nil {
				rows = append(rows, *self)
			}
		}
	default:
		if actorEmployeeID == "" {
			return []EmployeeResponse{}, nil
		}
		var e *Employee
		e, err = s.repo.FindByID(ctx, actorEmployeeID)
		if err == nil {
			rows = []Employee{*e}
		}
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []EmployeeResponse{}, nil
		}
		return nil, err
	}

	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}
	return mapToResponse(*e), nil
}

func (s *service) GetManagers(ctx context.Context) ([]EmployeeResponse, error) {
	rows, err := s.repo.FindManagers(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}

	e.FullName = req.FullName
	e.Gender = req.Gender
	e.Mobile = req.Mobile
	e.Department = req.Department
	e.Designation = req.Designation
	e.EmploymentType = req.EmploymentType
	e.Status = req.Status

	// Omitted fields keep their stored values; an explicit empty manager
	// clears the reference.
	if req.ReportingManager != nil {
		if *req.ReportingManager == "" {
			e.ReportingManager = nil
		} else {
			managerID, parseErr := uuid.Parse(*req.ReportingManager)
			if parseErr != nil {
				return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
			}
			e.ReportingManager = &managerID
		}
	}
	if req.BasicPay > 0 {
		e.BasicPay = req.BasicPay
	}
	if req.PaidLeaveBalance != nil {
		e.PaidLeaveBalance = *req.PaidLeaveBalance
	}

	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("update employee persist failed",
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	return mapToResponse(*e), nil
}

// EnrollFace extracts an embedding from the submitted image and stores it
// on the employee row. Punch-in verification compares against this vector.
func (s *service) EnrollFace(ctx context.Context, id string, image []byte) (EnrollFaceResponse, error) {
	if len(image) == 0 {
		return EnrollFaceResponse{}, employeeerrors.ErrFaceImageRequired
	}

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EnrollFaceResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EnrollFaceResponse{}, err
	}

	embedding, err := s.extractor.Extract(ctx, image)
	if err != nil {
		s.logger.Warn("face enrollment extraction failed",
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return EnrollFaceResponse{}, err
	}

	encoded, err := json.Marshal(embedding)
	if err != nil {
		return EnrollFaceResponse{}, err
	}

	if err := s.repo.SetFaceEmbedding(ctx, e.ID.String(), encoded); err != nil {
		return EnrollFaceResponse{}, err
	}

	s.logger.Info("face enrolled",
		zap.String("employee_id", id),
		zap.Int("dimensions", len(embedding)),
	)

	return EnrollFaceResponse{
		EmployeeID:   e.ID.String(),
		FaceEnrolled: true,
		Dimensions:   len(embedding),
	}, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employeeerrors.ErrEmployeeNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, employeeerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:               e.ID.String(),
		EmployeeCode:     e.EmployeeCode,
		FullName:         e.FullName,
		Gender:           e.Gender,
		Email:            e.Email,
		Mobile:           e.Mobile,
		Department:       e.Department,
		Designation:      e.Designation,
		EmploymentType:   e.EmploymentType,
		Status:           e.Status,
		BasicPay:         e.BasicPay,
		PaidLeaveBalance: e.PaidLeaveBalance,
		FaceEnrolled:     len(e.FaceEmbedding) > 0,
	}
	if !e.DateOfBirth.IsZero() {
		resp.DateOfBirth = e.DateOfBirth.Format("2006-01-02")
	}
	if !e.JoiningDate.IsZero() {
		resp.JoiningDate = e.JoiningDate.Format("2006-01-02")
	}
	if e.ReportingManager != nil {
		v := e.ReportingManager.String()
		resp.ReportingManager = &v
	}
	return resp
}

func mapToListResponse(rows []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(rows))
	for i, e := range rows {
		resp[i] = mapToResponse(e)
	}
	return resp
}
