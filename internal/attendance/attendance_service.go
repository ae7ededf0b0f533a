package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	attendanceerrors "go-hrms/internal/attendance/errors"
	"go-hrms/internal/employee"
	"go-hrms/internal/facerec"
	"go-hrms/internal/shared/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// breakCutoffHour is the local hour after which breaks can no longer be
// recorded for the day.
const breakCutoffHour = 18

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	PunchIn(ctx context.Context, employeeID string, image []byte) (PunchResponse, error)
	PunchOut(ctx context.Context, employeeID string) (PunchResponse, error)
	AddBreak(ctx context.Context, employeeID string, req AddBreakRequest) (PunchResponse, error)
	GetMy(ctx context.Context, employeeID string, q ListQuery) ([]AttendanceResponse, response.PaginationMeta, error)
	GetAll(ctx context.Context, q ListQuery) ([]AttendanceResponse, response.PaginationMeta, error)
	MarkLeave(ctx context.Context, employeeID uuid.UUID, date time.Time) error
}

type service struct {
	repo      Repository
	employees employee.Repository
	extractor facerec.Extractor
	threshold float64
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(repo Repository, employees employee.Repository, extractor facerec.Extractor, threshold float64, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		repo:      repo,
		employees: employees,
		extractor: extractor,
		threshold: threshold,
		logger:    l,
		now:       time.Now,
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// PunchIn records today's attendance as Present. When the employee has an
// enrolled face embedding the submitted image must match it; employees
// without an enrollment punch in unverified.
func (s *service) PunchIn(ctx context.Context, employeeID string, image []byte) (PunchResponse, error) {
	emp, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PunchResponse{}, attendanceerrors.ErrEmployeeNotFound
		}
		return PunchResponse{}, err
	}

	var faceScore *float64
	if len(emp.FaceEmbedding) > 0 {
		score, err := s.verifyFace(ctx, emp.FaceEmbedding, image)
		if err != nil {
			return PunchResponse{}, err
		}
		faceScore = &score
	}

	now := s.now()
	today := midnight(now)

	if _, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, today); err == nil {
		return PunchResponse{}, attendanceerrors.ErrAlreadyPunchedIn
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return PunchResponse{}, err
	}

	row := &Attendance{
		ID:             uuid.New(),
		EmployeeID:     emp.ID,
		AttendanceDate: today,
		Month:          int(now.Month()),
		Year:           now.Year(),
		PunchIn:        &now,
		Status:         StatusPresent,
		FaceScore:      faceScore,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Error("punch-in persist failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return PunchResponse{}, err
	}

	s.logger.Info("punched in",
		zap.String("employee_id", employeeID),
		zap.Bool("face_verified", faceScore != nil),
	)

	return PunchResponse{
		Message:    "Punched in successfully",
		Attendance: mapToResponse(*row),
	}, nil
}

func (s *service) verifyFace(ctx context.Context, stored []byte, image []byte) (float64, error) {
	if len(image) == 0 {
		return 0, attendanceerrors.ErrFaceImageRequired
	}

	var enrolled []float64
	if err := json.Unmarshal(stored, &enrolled); err != nil {
		return 0, err
	}

	probe, err := s.extractor.Extract(ctx, image)
	if err != nil {
		return 0, err
	}

	if !facerec.Match(enrolled, probe, s.threshold) {
		s.logger.Warn("face verification rejected punch",
			zap.Float64("distance", facerec.Distance(enrolled, probe)),
		)
		return 0, attendanceerrors.ErrFaceMismatch
	}

	return facerec.SimilarityScore(enrolled, probe), nil
}

func (s *service) PunchOut(ctx context.Context, employeeID string) (PunchResponse, error) {
	now := s.now()

	row, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, midnight(now))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PunchResponse{}, attendanceerrors.ErrNoPunchInToday
		}
		return PunchResponse{}, err
	}
	if row.PunchOut != nil {
		return PunchResponse{}, attendanceerrors.ErrAlreadyPunchedOut
	}

	row.PunchOut = &now
	if err := s.repo.Update(ctx, row); err != nil {
		return PunchResponse{}, err
	}

	return PunchResponse{
		Message:    "Punched out successfully",
		Attendance: mapToResponse(*row),
	}, nil
}

func (s *service) AddBreak(ctx context.Context, employeeID string, req AddBreakRequest) (PunchResponse, error) {
	now := s.now()
	if now.Hour() >= breakCutoffHour {
		return PunchResponse{}, attendanceerrors.ErrBreaksClosed
	}

	row, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, midnight(now))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PunchResponse{}, attendanceerrors.ErrNoAttendanceToday
		}
		return PunchResponse{}, err
	}

	start, err := time.Parse(time.RFC3339, req.Start)
	if err != nil {
		return PunchResponse{}, attendanceerrors.ErrBreakTimesRequired
	}
	end, err := time.Parse(time.RFC3339, req.End)
	if err != nil {
		return PunchResponse{}, attendanceerrors.ErrBreakTimesRequired
	}
	if !end.After(start) {
		return PunchResponse{}, attendanceerrors.ErrBreakEndBeforeStart
	}

	duration := int(end.Sub(start).Minutes())
	b := &Break{
		ID:              uuid.New(),
		AttendanceID:    row.ID,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: duration,
		Extended:        duration > 60,
	}

	if err := s.repo.AddBreak(ctx, b); err != nil {
		return PunchResponse{}, err
	}
	row.Breaks = append(row.Breaks, *b)

	msg := "Break recorded successfully"
	if b.Extended {
		msg = "Break recorded (Extended)"
	}

	return PunchResponse{
		Message:    msg,
		Attendance: mapToResponse(*row),
	}, nil
}

func (s *service) GetMy(ctx context.Context, employeeID string, q ListQuery) ([]AttendanceResponse, response.PaginationMeta, error) {
	filter, err := buildFilter(q)
	if err != nil {
		return nil, response.PaginationMeta{}, err
	}
	filter.EmployeeID = employeeID

	return s.list(ctx, filter)
}

func (s *service) GetAll(ctx context.Context, q ListQuery) ([]AttendanceResponse, response.PaginationMeta, error) {
	filter, err := buildFilter(q)
	if err != nil {
		return nil, response.PaginationMeta{}, err
	}

	return s.list(ctx, filter)
}

func (s *service) list(ctx context.Context, filter ListFilter) ([]AttendanceResponse, response.PaginationMeta, error) {
	rows, total, err := s.repo.FindPaged(ctx, filter)
	if err != nil {
		return nil, response.PaginationMeta{}, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, response.NewPaginationMeta(total, filter.Page, filter.Limit), nil
}

// MarkLeave overwrites the day's classification to Leave, creating the row
// when the employee never punched. Called on leave approval.
func (s *service) MarkLeave(ctx context.Context, employeeID uuid.UUID, date time.Time) error {
	day := midnight(date)

	row, err := s.repo.FindByEmployeeAndDate(ctx, employeeID.String(), day)
	if err == nil {
		row.Status = StatusLeave
		return s.repo.Update(ctx, row)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.repo.Create(ctx, &Attendance{
		ID:             uuid.New(),
		EmployeeID:     employeeID,
		AttendanceDate: day,
		Month:          int(day.Month()),
		Year:           day.Year(),
		Status:         StatusLeave,
	})
}

func buildFilter(q ListQuery) (ListFilter, error) {
	filter := ListFilter{
		Month:  q.Month,
		Year:   q.Year,
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
	if q.Date != "" {
		d, err := time.Parse("2006-01-02", q.Date)
		if err != nil {
			return ListFilter{}, attendanceerrors.ErrInvalidDateFilter
		}
		day := midnight(d)
		filter.Date = &day
	}
	return filter, nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID.String(),
		EmployeeID:     a.EmployeeID.String(),
		AttendanceDate: a.AttendanceDate.Format("2006-01-02"),
		Status:         a.Status,
		FaceScore:      a.FaceScore,
	}
	if a.PunchIn != nil {
		v := a.PunchIn.Format(time.RFC3339)
		resp.PunchIn = &v
	}
	if a.PunchOut != nil {
		v := a.PunchOut.Format(time.RFC3339)
		resp.PunchOut = &v
	}
	if a.Employee != nil {
		resp.EmployeeCode = a.Employee.EmployeeCode
		resp.EmployeeName = a.Employee.FullName
		resp.Department = a.Employee.Department
		resp.Designation = a.Employee.Designation
	}
	for _, b := range a.Breaks {
		resp.Breaks = append(resp.Breaks, BreakResponse{
			Start:           b.StartTime.Format(time.RFC3339),
			End:             b.EndTime.Format(time.RFC3339),
			DurationMinutes: b.DurationMinutes,
			Extended:        b.Extended,
		})
	}
	return resp
}
