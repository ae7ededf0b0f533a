package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	payrollerrors "go-hrms/internal/payroll/errors"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	// Generate creates payroll records for a period. Duplicate handling
	// differs by mode: a batch run skips employees that already have a
	// record and reports the remaining count, while a single-employee
	// request for an existing period returns ErrPayrollExists (409) so
	// the caller learns the record was not regenerated.
	Generate(ctx context.Context, actorUserID string, req GeneratePayrollRequest) (GenerateResponse, error)
	GetAll(ctx context.Context, q ListQuery) ([]PayrollResponse, response.PaginationMeta, error)
	GetByID(ctx context.Context, id string) (PayrollResponse, error)
	Payslip(ctx context.Context, id string) ([]byte, string, error)
}

// Config carries the tunables the calculator must not hard-code.
type Config struct {
	// FallbackBasicPay substitutes a missing basic pay in batch runs.
	FallbackBasicPay float64
	// DefaultLeavePolicy applies when the request names none.
	DefaultLeavePolicy string
}

type service struct {
	repo   Repository
	outbox kafka.OutboxRepository
	cfg    Config
	logger *zap.Logger
}

func NewService(repo Repository, outbox kafka.OutboxRepository, cfg Config, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	if cfg.DefaultLeavePolicy == "" {
		cfg.DefaultLeavePolicy = PolicyOverlap
	}
	return &service{repo: repo, outbox: outbox, cfg: cfg, logger: l}
}

// Generate runs a single-employee generation when employee_id is set,
// otherwise a sequential batch over all active employees. Batch mode
// skips employees that already have a record for the period and keeps
// going; storage failures abort the remaining batch but leave earlier
// inserts committed.
func (s *service) Generate(ctx context.Context, actorUserID string, req GeneratePayrollRequest) (GenerateResponse, error) {
	start, end, err := parsePeriod(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return GenerateResponse{}, err
	}

	policy := req.LeavePolicy
	if policy == "" {
		policy = s.cfg.DefaultLeavePolicy
	}

	tax := resolveTaxInput(req)

	var createdBy *uuid.UUID
	if actor, err := uuid.Parse(actorUserID); err == nil {
		createdBy = &actor
	}

	if req.EmployeeID != "" {
		return s.generateSingle(ctx, req, start, end, policy, tax, createdBy)
	}
	return s.generateBatch(ctx, req, start, end, policy, tax, createdBy)
}

func (s *service) generateSingle(ctx context.Context, req GeneratePayrollRequest, start, end time.Time, policy string, tax TaxInput, createdBy *uuid.UUID) (GenerateResponse, error) {
	emp, err := s.repo.FindEmployee(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GenerateResponse{}, payrollerrors.ErrEmployeeNotFound
		}
		return GenerateResponse{}, err
	}

	basicPay := req.BasicPay
	if basicPay <= 0 {
		basicPay = emp.BasicPay
	}
	if basicPay <= 0 {
		return GenerateResponse{}, payrollerrors.ErrBasicPayRequired
	}

	row, err := s.generateOne(ctx, emp, basicPay, req, start, end, policy, tax, createdBy)
	if err != nil {
		if IsDuplicatePayroll(err) {
			return GenerateResponse{}, payrollerrors.ErrPayrollExists
		}
		return GenerateResponse{}, err
	}

	resp := mapToResponse(*row)
	resp.EmployeeName = emp.FullName
	resp.Email = emp.Email

	return GenerateResponse{
		Message:        "Payroll generated",
		GeneratedCount: 1,
		Payroll:        &resp,
	}, nil
}

func (s *service) generateBatch(ctx context.Context, req GeneratePayrollRequest, start, end time.Time, policy string, tax TaxInput, createdBy *uuid.UUID) (GenerateResponse, error) {
	employees, err := s.repo.FindActiveEmployees(ctx)
	if err != nil {
		return GenerateResponse{}, err
	}

	generated := 0
	for i := range employees {
		emp := &employees[i]

		basicPay := req.BasicPay
		if basicPay <= 0 {
			basicPay = emp.BasicPay
		}
		if basicPay <= 0 {
			basicPay = s.cfg.FallbackBasicPay
		}

		if _, err := s.generateOne(ctx, emp, basicPay, req, start, end, policy, tax, createdBy); err != nil {
			if IsDuplicatePayroll(err) {
				continue
			}
			s.logger.Error("batch generation aborted",
				zap.String("employee_id", emp.ID),
				zap.Int("generated_so_far", generated),
				zap.Error(err),
			)
			return GenerateResponse{}, err
		}
		generated++
	}

	s.logger.Info("batch payroll generation finished",
		zap.Int("generated_count", generated),
		zap.Int("active_employees", len(employees)),
		zap.String("leave_policy", policy),
	)

	return GenerateResponse{
		Message:        "Payroll generation completed",
		GeneratedCount: generated,
	}, nil
}

func (s *service) generateOne(ctx context.Context, emp *ActiveEmployee, basicPay float64, req GeneratePayrollRequest, start, end time.Time, policy string, tax TaxInput, createdBy *uuid.UUID) (*Payroll, error) {
	present, err := s.repo.CountPresentDays(ctx, emp.ID, start, end)
	if err != nil {
		return nil, err
	}

	leaves, err := s.repo.FindApprovedLeaves(ctx, emp.ID, start, end)
	if err != nil {
		return nil, err
	}

	var paidDays, unpaidDays float64
	if policy == PolicyAnchor {
		paidDays, unpaidDays = AnchorLeaveDays(leaves, start, end, float64(present))
	} else {
		paidDays, unpaidDays = OverlapLeaveDays(leaves, start, end)
	}

	breakdown := Calculate(policy, CalcInput{
		BasicPay:        basicPay,
		Tax:             tax,
		Bonus:           req.Bonus,
		ExtraDeduction:  req.ExtraDeduction,
		WorkingDays:     WorkingDays(start, end),
		PresentDays:     float64(present),
		PaidLeaveDays:   paidDays,
		UnpaidLeaveDays: unpaidDays,
	})

	employeeID, err := uuid.Parse(emp.ID)
	if err != nil {
		return nil, err
	}

	row := &Payroll{
		ID:                uuid.New(),
		EmployeeID:        employeeID,
		PeriodStart:       midnight(start),
		PeriodEnd:         midnight(end),
		BasicPay:          basicPay,
		Tax:               tax.Value,
		TaxMode:           string(tax.Mode),
		Bonus:             req.Bonus,
		ExtraDeduction:    req.ExtraDeduction,
		LeavePolicy:       policy,
		TotalDaysInPeriod: InclusiveDays(start, end),
		TotalWorkingDays:  WorkingDays(start, end),
		PresentDays:       float64(present),
		PaidLeaveDays:     paidDays,
		UnpaidLeaveDays:   unpaidDays,
		Deduction:         breakdown.Deduction,
		TaxAmount:         breakdown.TaxAmount,
		NetPay:            breakdown.NetPay,
		CreatedBy:         createdBy,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}

	s.publishGenerated(ctx, emp, row)

	return row, nil
}

// publishGenerated enqueues the notification event. Best-effort: an
// outbox failure is logged and swallowed, it never fails generation.
func (s *service) publishGenerated(ctx context.Context, emp *ActiveEmployee, row *Payroll) {
	event := events.PayrollGeneratedEvent{
		EventType:     "payroll.generated",
		PayrollID:     row.ID.String(),
		EmployeeID:    emp.ID,
		EmployeeName:  emp.FullName,
		EmployeeEmail: emp.Email,
		PeriodStart:   row.PeriodStart.Format("2006-01-02"),
		PeriodEnd:     row.PeriodEnd.Format("2006-01-02"),
		BasicPay:      row.BasicPay,
		Bonus:         row.Bonus,
		Tax:           row.Tax,
		TaxAmount:     row.TaxAmount,
		Deduction:     row.Deduction,
		NetPay:        row.NetPay,
		OccurredAt:    time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Warn("payroll event marshal failed", zap.Error(err))
		return
	}

	err = s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "payroll",
		AggregateID:   row.ID.String(),
		EventType:     event.EventType,
		Topic:         events.PayrollGeneratedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
	if err != nil {
		s.logger.Warn("payroll event enqueue failed",
			zap.String("payroll_id", row.ID.String()),
			zap.Error(err),
		)
	}
}

func (s *service) GetAll(ctx context.Context, q ListQuery) ([]PayrollResponse, response.PaginationMeta, error) {
	filter := ListFilter{
		EmployeeID: q.Employee,
		Month:      q.Month,
		Year:       q.Year,
		Search:     q.Search,
		Page:       q.Page,
		Limit:      q.Limit,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	rows, total, err := s.repo.FindPaged(ctx, filter)
	if err != nil {
		return nil, response.PaginationMeta{}, err
	}

	res := make([]PayrollResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, response.NewPaginationMeta(total, filter.Page, filter.Limit), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollResponse{}, payrollerrors.ErrPayrollNotFound
		}
		return PayrollResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) Payslip(ctx context.Context, id string) ([]byte, string, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", payrollerrors.ErrPayrollNotFound
		}
		return nil, "", err
	}

	pdf, err := renderPayslip(*p)
	if err != nil {
		return nil, "", err
	}

	filename := "payslip-" + p.PeriodStart.Format("2006-01") + "-" + p.EmployeeID.String() + ".pdf"
	return pdf, filename, nil
}

func parsePeriod(startStr, endStr string) (time.Time, time.Time, error) {
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, payrollerrors.ErrPeriodRequired
	}

	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidDateFormat
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidDateRange
	}

	return start, end, nil
}

func resolveTaxInput(req GeneratePayrollRequest) TaxInput {
	switch TaxMode(req.TaxMode) {
	case TaxPercent:
		return Percent(req.Tax)
	case TaxFixed:
		return Fixed(req.Tax)
	default:
		return ResolveTax(req.Tax)
	}
}

func mapToResponse(p Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:                p.ID.String(),
		EmployeeID:        p.EmployeeID.String(),
		PeriodStart:       p.PeriodStart.Format("2006-01-02"),
		PeriodEnd:         p.PeriodEnd.Format("2006-01-02"),
		BasicPay:          p.BasicPay,
		Tax:               p.Tax,
		TaxMode:           p.TaxMode,
		Bonus:             p.Bonus,
		ExtraDeduction:    p.ExtraDeduction,
		LeavePolicy:       p.LeavePolicy,
		TotalDaysInPeriod: p.TotalDaysInPeriod,
		TotalWorkingDays:  p.TotalWorkingDays,
		PresentDays:       p.PresentDays,
		PaidLeaveDays:     p.PaidLeaveDays,
		UnpaidLeaveDays:   p.UnpaidLeaveDays,
		Deduction:         p.Deduction,
		TaxAmount:         p.TaxAmount,
		NetPay:            p.NetPay,
	}
	if !p.CreatedAt.IsZero() {
		resp.CreatedAt = p.CreatedAt.Format(time.RFC3339)
	}
	if p.Employee != nil {
		resp.EmployeeCode = p.Employee.EmployeeCode
		resp.EmployeeName = p.Employee.FullName
		resp.Email = p.Employee.Email
	}
	return resp
}
