package app

import (
	"go-hrms/internal/attendance"
	"go-hrms/internal/auth"
	"go-hrms/internal/employee"
	"go-hrms/internal/invoice"
	"go-hrms/internal/leave"
	"go-hrms/internal/payroll"

	"gorm.io/gorm"
)

// The outbox and counters tables are driven by raw SQL repositories, so
// their schema lives here instead of behind gorm models.
const createOutboxTable = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id uuid PRIMARY KEY,
	request_id text,
	aggregate_type text NOT NULL,
	aggregate_id uuid NOT NULL,
	event_type text NOT NULL,
	topic text NOT NULL,
	payload jsonb NOT NULL,
	status text NOT NULL DEFAULT 'pending',
	retry_count int NOT NULL DEFAULT 0,
	error_message text,
	next_retry_at timestamptz,
	processed_at timestamptz,
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now()
)`

const createCountersTable = `
CREATE TABLE IF NOT EXISTS counters (
	counter_type text PRIMARY KEY,
	last_value bigint NOT NULL DEFAULT 0,
	updated_at timestamptz NOT NULL DEFAULT now()
)`

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&auth.User{},
		&employee.Employee{},
		&attendance.Attendance{},
		&attendance.Break{},
		&leave.Leave{},
		&payroll.Payroll{},
		&invoice.Invoice{},
		&invoice.InvoiceItem{},
	); err != nil {
		return err
	}

	if err := db.Exec(createOutboxTable).Error; err != nil {
		return err
	}
	return db.Exec(createCountersTable).Error
}
