package leave

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-hrms/internal/employee"
	leaveerrors "go-hrms/internal/leave/errors"
	"go-hrms/internal/rbac"
	"go-hrms/internal/shared/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DayMarker overwrites the attendance classification for one day. The
// attendance service implements it.
type DayMarker interface {
	MarkLeave(ctx context.Context, employeeID uuid.UUID, date time.Time) error
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Apply(ctx context.Context, employeeID string, req ApplyLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, actorRole, actorEmployeeID string, q ListQuery) ([]LeaveResponse, response.PaginationMeta, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	Decide(ctx context.Context, actorUserID, id string, req DecideLeaveRequest) (DecisionResponse, error)
}

type service struct {
	repo      Repository
	employees employee.Repository
	marker    DayMarker
	logger    *zap.Logger
}

func NewService(repo Repository, employees employee.Repository, marker DayMarker, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{repo: repo, employees: employees, marker: marker, logger: l}
}

func (s *service) Apply(ctx context.Context, employeeID string, req ApplyLeaveRequest) (LeaveResponse, error) {
	emp, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrEmployeeNotFound
		}
		return LeaveResponse{}, err
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	if end.Before(start) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	dayType := req.DayType
	if dayType == "" {
		dayType = DayTypeFull
	}

	var totalDays float64
	switch dayType {
	case DayTypeHalf:
		if !start.Equal(end) {
			return LeaveResponse{}, leaveerrors.ErrHalfDaySpan
		}
		totalDays = 0.5
	default:
		totalDays = float64(int(end.Sub(start).Hours()/24) + 1)
	}

	overlap, err := s.repo.HasOverlappingPeriod(ctx, employeeID, start, end)
	if err != nil {
		return LeaveResponse{}, err
	}
	if overlap {
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	l := &Leave{
		ID:         uuid.New(),
		EmployeeID: emp.ID,
		LeaveType:  req.LeaveType,
		StartDate:  start,
		EndDate:    end,
		DayType:    dayType,
		TotalDays:  totalDays,
		Reason:     req.Reason,
		Status:     StatusPending,
	}

	if err := s.repo.Create(ctx, l); err != nil {
		s.logger.Error("apply leave persist failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	s.logger.Info("leave applied",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", employeeID),
		zap.Float64("total_days", totalDays),
	)

	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context, actorRole, actorEmployeeID string, q ListQuery) ([]LeaveResponse, response.PaginationMeta, error) {
	filter := ListFilter{
		Status: q.Status,
		Search: q.Search,
		Page:   q.Page,
		Limit:  q.Limit,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	switch actorRole {
	case rbac.RoleAdmin:
	case rbac.RoleManager:
		filter.ManagerID = actorEmployeeID
	default:
		filter.EmployeeID = actorEmployeeID
	}

	rows, total, err := s.repo.FindPaged(ctx, filter)
	if err != nil {
		return nil, response.PaginationMeta{}, err
	}

	res := make([]LeaveResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, response.NewPaginationMeta(total, filter.Page, filter.Limit), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	return mapToResponse(*l), nil
}

// Decide approves or rejects a pending request, exactly once. Approval
// fixes the paid flag against the remaining balance, decrements it, and
// overwrites the attendance rows in the span.
func (s *service) Decide(ctx context.Context, actorUserID, id string, req DecideLeaveRequest) (DecisionResponse, error) {
	status := strings.ToUpper(req.Status)
	if status != StatusApproved && status != StatusRejected {
		return DecisionResponse{}, leaveerrors.ErrInvalidStatus
	}

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DecisionResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return DecisionResponse{}, err
	}
	if l.Status != StatusPending {
		return DecisionResponse{}, leaveerrors.ErrAlreadyDecided
	}

	if status == StatusApproved {
		emp, err := s.employees.FindByID(ctx, l.EmployeeID.String())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return DecisionResponse{}, leaveerrors.ErrEmployeeNotFound
			}
			return DecisionResponse{}, err
		}

		l.Paid = emp.PaidLeaveBalance >= l.TotalDays
		if l.Paid {
			emp.PaidLeaveBalance -= l.TotalDays
			if emp.PaidLeaveBalance < 0 {
				emp.PaidLeaveBalance = 0
			}
			if err := s.employees.Update(ctx, emp); err != nil {
				return DecisionResponse{}, err
			}
		}
	}

	l.Status = status
	if approver, err := uuid.Parse(actorUserID); err == nil {
		l.ApprovedBy = &approver
	}

	if err := s.repo.Update(ctx, l); err != nil {
		s.logger.Error("leave decision persist failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return DecisionResponse{}, err
	}

	if status == StatusApproved {
		s.markDays(ctx, l)
	}

	s.logger.Info("leave decided",
		zap.String("leave_id", id),
		zap.String("status", status),
		zap.Bool("paid", l.Paid),
	)

	return DecisionResponse{
		Message: "Leave " + strings.ToLower(status) + " successfully",
		Leave:   mapToResponse(*l),
	}, nil
}

// markDays is best-effort: a failed day is logged, the rest still run.
func (s *service) markDays(ctx context.Context, l *Leave) {
	for d := l.StartDate; !d.After(l.EndDate); d = d.AddDate(0, 0, 1) {
		if err := s.marker.MarkLeave(ctx, l.EmployeeID, d); err != nil {
			s.logger.Warn("attendance overwrite failed",
				zap.String("leave_id", l.ID.String()),
				zap.Time("date", d),
				zap.Error(err),
			)
		}
	}
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:         l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		LeaveType:  l.LeaveType,
		StartDate:  l.StartDate.Format("2006-01-02"),
		EndDate:    l.EndDate.Format("2006-01-02"),
		DayType:    l.DayType,
		TotalDays:  l.TotalDays,
		Reason:     l.Reason,
		Status:     l.Status,
		Paid:       l.Paid,
	}
	if l.ApprovedBy != nil {
		v := l.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if l.Employee != nil {
		resp.EmployeeCode = l.Employee.EmployeeCode
		resp.EmployeeName = l.Employee.FullName
	}
	return resp
}
