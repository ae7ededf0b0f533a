package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	payrollerrors "go-hrms/internal/payroll/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePayrollRepo struct {
	createFn              func(ctx context.Context, p *Payroll) error
	findByIDFn            func(ctx context.Context, id string) (*Payroll, error)
	findPagedFn           func(ctx context.Context, filter ListFilter) ([]Payroll, int64, error)
	countPresentDaysFn    func(ctx context.Context, employeeID string, start, end time.Time) (int64, error)
	findApprovedLeavesFn  func(ctx context.Context, employeeID string, start, end time.Time) ([]LeaveSpan, error)
	findActiveEmployeesFn func(ctx context.Context) ([]ActiveEmployee, error)
	findEmployeeFn        func(ctx context.Context, id string) (*ActiveEmployee, error)
}

func (f *fakePayrollRepo) Create(ctx context.Context, p *Payroll) error {
	return f.createFn(ctx, p)
}

func (f *fakePayrollRepo) FindByID(ctx context.Context, id string) (*Payroll, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakePayrollRepo) FindPaged(ctx context.Context, filter ListFilter) ([]Payroll, int64, error) {
	return f.findPagedFn(ctx, filter)
}

func (f *fakePayrollRepo) CountPresentDays(ctx context.Context, employeeID string, start, end time.Time) (int64, error) {
	return f.countPresentDaysFn(ctx, employeeID, start, end)
}

func (f *fakePayrollRepo) FindApprovedLeaves(ctx context.Context, employeeID string, start, end time.Time) ([]LeaveSpan, error) {
	return f.findApprovedLeavesFn(ctx, employeeID, start, end)
}

func (f *fakePayrollRepo) FindActiveEmployees(ctx context.Context) ([]ActiveEmployee, error) {
	return f.findActiveEmployeesFn(ctx)
}

func (f *fakePayrollRepo) FindEmployee(ctx context.Context, id string) (*ActiveEmployee, error) {
	return f.findEmployeeFn(ctx, id)
}

type fakeOutbox struct {
	events []kafka.OutboxEvent
	err    error
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

func duplicateErr() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: payrollUniqueConstraint}
}

func testConfig() Config {
	return Config{FallbackBasicPay: 30000, DefaultLeavePolicy: PolicyOverlap}
}

func activeEmp(basicPay float64) ActiveEmployee {
	return ActiveEmployee{
		ID:       uuid.New().String(),
		FullName: "Asha Verma",
		Email:    "asha@example.com",
		BasicPay: basicPay,
	}
}

// march2026 is a 22-working-day month.
func march2026() GeneratePayrollRequest {
	return GeneratePayrollRequest{
		PeriodStart: "2026-03-01",
		PeriodEnd:   "2026-03-31",
	}
}

func TestGenerateSingle(t *testing.T) {
	actor := uuid.New().String()

	t.Run("computes and persists the full record", func(t *testing.T) {
		emp := activeEmp(0)
		var saved *Payroll
		repo := &fakePayrollRepo{
			findEmployeeFn: func(ctx context.Context, _ string) (*ActiveEmployee, error) {
				return &emp, nil
			},
			countPresentDaysFn: func(ctx context.Context, _ string, _, _ time.Time) (int64, error) {
				return 20, nil
			},
			findApprovedLeavesFn: func(ctx context.Context, _ string, _, _ time.Time) ([]LeaveSpan, error) {
				return []LeaveSpan{
					{StartDate: date(2026, 3, 9), EndDate: date(2026, 3, 10), Paid: false},
				}, nil
			},
			createFn: func(ctx context.Context, p *Payroll) error {
				saved = p
				return nil
			},
		}
		outbox := &fakeOutbox{}

		req := march2026()
		req.EmployeeID = emp.ID
		req.BasicPay = 30000
		req.Tax = 10
		req.Bonus = 1000

		svc := NewService(repo, outbox, testConfig())
		resp, err := svc.Generate(context.Background(), actor, req)

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, 1, resp.GeneratedCount)
		assert.Equal(t, 31, saved.TotalDaysInPeriod)
		assert.Equal(t, 22, saved.TotalWorkingDays)
		assert.Equal(t, 20.0, saved.PresentDays)
		assert.Equal(t, 2.0, saved.UnpaidLeaveDays)
		assert.Equal(t, 2727.28, saved.Deduction)
		assert.Equal(t, 2827.27, saved.TaxAmount)
		assert.Equal(t, 25445.45, saved.NetPay)
		assert.Equal(t, string(TaxPercent), saved.TaxMode)

		require.NotNil(t, resp.Payroll)
		assert.Equal(t, 25445.45, resp.Payroll.NetPay)
		assert.Equal(t, "asha@example.com", resp.Payroll.Email)

		require.Len(t, outbox.events, 1)
		var event events.PayrollGeneratedEvent
		require.NoError(t, json.Unmarshal(outbox.events[0].Payload, &event))
		assert.Equal(t, "asha@example.com", event.EmployeeEmail)
		assert.Equal(t, 25445.45, event.NetPay)
		assert.Equal(t, events.PayrollGeneratedTopic, outbox.events[0].Topic)
	})

	t.Run("employee basic pay is used when the request has none", func(t *testing.T) {
		emp := activeEmp(42000)
		var saved *Payroll
		repo := &fakePayrollRepo{
			findEmployeeFn: func(ctx context.Context, _ string) (*ActiveEmployee, error) {
				return &emp, nil
			},
			countPresentDaysFn: func(ctx context.Context, _ string, _, _ time.Time) (int64, error) {
				return 22, nil
			},
			findApprovedLeavesFn: func(ctx context.Context, _ string, _, _ time.Time) ([]LeaveSpan, error) {
				return nil, nil
			},
			createFn: func(ctx context.Context, p *Payroll) error {
				saved = p
				return nil
			},
		}

		req := march2026()
		req.EmployeeID = emp.ID

		svc := NewService(repo, &fakeOutbox{}, testConfig())
		_, err := svc.Generate(context.Background(), actor, req)

		require.NoError(t, err)
		assert.Equal(t, 42000.0, saved.BasicPay)
	})

	t.Run("no resolvable basic pay is a validation error", func(t *testing.T) {
		emp := activeEmp(0)
		repo := &fakePayrollRepo{
			findEmployeeFn: func(ctx context.Context, _ string) (*ActiveEmployee, error) {
				return &emp, nil
			},
		}

		req := march2026()
		req.EmployeeID = emp.ID

		svc := NewService(repo, &fakeOutbox{}, testConfig())
		_, err := svc.Generate(context.Background(), actor, req)

		assert.ErrorIs(t, err, payrollerrors.ErrBasicPayRequired)
	})

	t.Run("unknown employee", func(t *testing.T) {
		repo := &fakePayrollRepo{
			findEmployeeFn: func(ctx context.Context, _ string) (*ActiveEmployee, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		req := march2026()
		req.EmployeeID = uuid.New().String()
		req.BasicPay = 30000

		svc := NewService(repo, &fakeOutbox{}, testConfig())
		_, err := svc.Generate(context.Background(), actor, req)

		assert.ErrorIs(t, err, payrollerrors.ErrEmployeeNotFound)
	})

	t.Run("duplicate period is a conflict", func(t *testing.T) {
		emp := activeEmp(30000)
		repo := &fakePayrollRepo{
			findEmployeeFn: func(ctx context.Context, _ string) (*ActiveEmployee, error) {
				return &emp, nil
			},
			countPresentDaysFn: func(ctx context.Context, _ string, _, _ time.Time) (int64, error) {
				return 22, nil
			},
			findApprovedLeavesFn: func(ctx context.Context, _ string, _, _ time.Time) ([]LeaveSpan, error) {
				return nil, nil
			},
			createFn: func(ctx context.Context, p *Payroll) error {
				return duplicateErr()
			},
		}

		req := march2026()
		req.EmployeeID = emp.ID

		svc := NewService(repo, &fakeOutbox{}, testConfig())
		_, err := svc.Generate(context.Background(), actor, req)

		assert.ErrorIs(t, err, payrollerrors.ErrPayrollExists)
	})

	t.Run("period validation", func(t *testing.T) {
		svc := NewService(&fakePayrollRepo{}, &fakeOutbox{}, testConfig())

		_, err := svc.Generate(context.Background(), actor, GeneratePayrollRequest{PeriodStart: "2026-03-01"})
		assert.ErrorIs(t, err, payrollerrors.ErrPeriodRequired)

		_, err = svc.Generate(context.Background(), actor, GeneratePayrollRequest{
			PeriodStart: "2026-03-31",
			PeriodEnd:   "2026-03-01",
		})
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidDateRange)

		_, err = svc.Generate(context.Background(), actor, GeneratePayrollRequest{
			PeriodStart: "03/01/2026",
			PeriodEnd:   "2026-03-31",
		})
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidDateFormat)
	})
}

func TestGenerateBatch(t *testing.T) {
	actor := uuid.New().String()

	newBatchRepo := func(employees []ActiveEmployee, createFn func(ctx context.Context, p *Payroll) error) *fakePayrollRepo {
		return &fakePayrollRepo{
			findActiveEmployeesFn: func(ctx context.Context) ([]ActiveEmployee, error) {
				return employees, nil
			},
			countPresentDaysFn: func(ctx context.Context, _ string, _, _ time.Time) (int64, error) {
				return 20, nil
			},
			findApprovedLeavesFn: func(ctx context.Context, _ string, _, _ time.Time) ([]LeaveSpan, error) {
				return nil, nil
			},
			createFn: createFn,
		}
	}

	t.Run("generates one record per active employee", func(t *testing.T) {
		employees := []ActiveEmployee{activeEmp(30000), activeEmp(45000), activeEmp(60000)}
		var saved []*Payroll
		repo := newBatchRepo(employees, func(ctx context.Context, p *Payroll) error {
			saved = append(saved, p)
			return nil
		})

		svc := NewService(repo, &fakeOutbox{}, testConfig())
		resp, err := svc.Generate(context.Background(), actor, march2026())

		require.NoError(t, err)
		assert.Equal(t, 3, resp.GeneratedCount)
		assert.Equal(t, "Payroll generation completed", resp.Message)
		assert.Nil(t, resp.Payroll)
		assert.Len(t, saved, 3)
	})

	t.Run("missing basic pay falls back to the configured value", func(t *testing.T) {
		employees := []ActiveEmployee{activeEmp(0)}
		var saved *Payroll
		repo := newBatchRepo(employees, func(ctx context.Context, p *Payroll) error {
			saved = p
			return nil
		})

		svc := NewService(repo, &fakeOutbox{}, testConfig())
		_, err := svc.Generate(context.Background(), actor, march2026())

		require.NoError(t, err)
		assert.Equal(t, 30000.0, saved.BasicPay)
	})

	t.Run("duplicates are skipped silently", func(t *testing.T) {
		employees := []ActiveEmployee{activeEmp(30000), activeEmp(30000), activeEmp(30000)}
		calls := 0
		repo := newBatchRepo(employees, func(ctx context.Context, p *Payroll) error {
			calls++
			if calls == 2 {
				return duplicateErr()
			}
			return nil
		})

		svc := NewService(repo, &fakeOutbox{}, testConfig())
		resp, err := svc.Generate(context.Background(), actor, march2026())

		require.NoError(t, err)
		assert.Equal(t, 2, resp.GeneratedCount)
	})

	t.Run("second identical run generates nothing", func(t *testing.T) {
		employees := []ActiveEmployee{activeEmp(30000), activeEmp(30000)}
		inserted := map[string]bool{}
		repo := newBatchRepo(employees, func(ctx context.Context, p *Payroll) error {
			key := p.EmployeeID.String() + p.PeriodStart.String()
			if inserted[key] {
				return duplicateErr()
			}
			inserted[key] = true
			return nil
		})

		svc := NewService(repo, &fakeOutbox{}, testConfig())

		first, err := svc.Generate(context.Background(), actor, march2026())
		require.NoError(t, err)
		assert.Equal(t, 2, first.GeneratedCount)

		second, err := svc.Generate(context.Background(), actor, march2026())
		require.NoError(t, err)
		assert.Equal(t, 0, second.GeneratedCount)
		assert.Equal(t, "Payroll generation completed", second.Message)
	})

	t.Run("storage failure aborts the remaining batch", func(t *testing.T) {
		employees := []ActiveEmployee{activeEmp(30000), activeEmp(30000), activeEmp(30000)}
		calls := 0
		repo := newBatchRepo(employees, func(ctx context.Context, p *Payroll) error {
			calls++
			if calls == 2 {
				return errors.New("connection reset")
			}
			return nil
		})

		svc := NewService(repo, &fakeOutbox{}, testConfig())
		_, err := svc.Generate(context.Background(), actor, march2026())

		assert.Error(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("outbox failure never fails generation", func(t *testing.T) {
		employees := []ActiveEmployee{activeEmp(30000)}
		repo := newBatchRepo(employees, func(ctx context.Context, p *Payroll) error {
			return nil
		})

		svc := NewService(repo, &fakeOutbox{err: errors.New("outbox table missing")}, testConfig())
		resp, err := svc.Generate(context.Background(), actor, march2026())

		require.NoError(t, err)
		assert.Equal(t, 1, resp.GeneratedCount)
	})

	t.Run("anchor policy is applied when requested", func(t *testing.T) {
		employees := []ActiveEmployee{activeEmp(30000)}
		var saved *Payroll
		repo := newBatchRepo(employees, func(ctx context.Context, p *Payroll) error {
			saved = p
			return nil
		})
		repo.findApprovedLeavesFn = func(ctx context.Context, _ string, _, _ time.Time) ([]LeaveSpan, error) {
			return []LeaveSpan{
				{StartDate: date(2026, 3, 9), EndDate: date(2026, 3, 13), Paid: true},
				{StartDate: date(2026, 3, 20), EndDate: date(2026, 3, 20), Paid: true},
			}, nil
		}

		req := march2026()
		req.LeavePolicy = PolicyAnchor
		req.Tax = 2
		req.Bonus = 100

		svc := NewService(repo, &fakeOutbox{}, testConfig())
		_, err := svc.Generate(context.Background(), actor, req)

		require.NoError(t, err)
		assert.Equal(t, PolicyAnchor, saved.LeavePolicy)
		assert.Equal(t, 2.0, saved.PaidLeaveDays)
		assert.Equal(t, 8.0, saved.UnpaidLeaveDays)
		assert.Equal(t, 8000.0, saved.Deduction)
		assert.Equal(t, 602.0, saved.TaxAmount)
		assert.Equal(t, 21498.0, saved.NetPay)
	})
}

func TestGetByID(t *testing.T) {
	t.Run("missing record", func(t *testing.T) {
		repo := &fakePayrollRepo{
			findByIDFn: func(ctx context.Context, _ string) (*Payroll, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		svc := NewService(repo, &fakeOutbox{}, testConfig())
		_, err := svc.GetByID(context.Background(), uuid.New().String())

		assert.ErrorIs(t, err, payrollerrors.ErrPayrollNotFound)
	})

	t.Run("populates employee fields", func(t *testing.T) {
		id := uuid.New()
		repo := &fakePayrollRepo{
			findByIDFn: func(ctx context.Context, _ string) (*Payroll, error) {
				return &Payroll{
					ID:         id,
					EmployeeID: uuid.New(),
					NetPay:     25445.45,
					Employee:   &EmployeeRef{FullName: "Asha Verma", Email: "asha@example.com"},
				}, nil
			},
		}

		svc := NewService(repo, &fakeOutbox{}, testConfig())
		resp, err := svc.GetByID(context.Background(), id.String())

		require.NoError(t, err)
		assert.Equal(t, "Asha Verma", resp.EmployeeName)
		assert.Equal(t, 25445.45, resp.NetPay)
	})
}

func TestIsDuplicatePayroll(t *testing.T) {
	assert.True(t, IsDuplicatePayroll(duplicateErr()))
	assert.True(t, IsDuplicatePayroll(errors.New(`duplicate key value violates unique constraint "idx_payroll_employee_period"`)))
	assert.False(t, IsDuplicatePayroll(errors.New("connection reset")))
	assert.False(t, IsDuplicatePayroll(&pgconn.PgError{Code: "23503"}))
}
