package consumer

import (
	"context"
	"encoding/json"

	"go-hrms/internal/events"
	"go-hrms/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePayrollGenerated reads payroll-generated events and mails the
// summary to the employee. Delivery failures are logged and the message is
// committed anyway: notifications are best-effort and must never wedge the
// consumer group behind a bad mailbox.
func ConsumePayrollGenerated(
	ctx context.Context,
	reader *kafkago.Reader,
	mailer notification.Mailer,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_generated")
	log.Info("payroll notification consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll notification consumer stopped")
				return
			}
			log.Error("fetch payroll_generated message failed", zap.Error(err))
			continue
		}

		var event events.PayrollGeneratedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payroll_generated event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		summary := notification.PayrollSummary{
			EmployeeName: event.EmployeeName,
			EmployeeMail: event.EmployeeEmail,
			PeriodStart:  event.PeriodStart,
			PeriodEnd:    event.PeriodEnd,
			BasicPay:     event.BasicPay,
			Bonus:        event.Bonus,
			Tax:          event.Tax,
			TaxAmount:    event.TaxAmount,
			Deduction:    event.Deduction,
			NetPay:       event.NetPay,
		}

		if err := mailer.Send(
			event.EmployeeEmail,
			notification.PayrollEmailSubject(summary),
			notification.PayrollEmailBody(summary),
		); err != nil {
			log.Warn("payroll summary email failed, skipping",
				zap.String("payroll_id", event.PayrollID),
				zap.String("employee_email", event.EmployeeEmail),
				zap.Error(err),
			)
		} else {
			log.Info("payroll summary email sent",
				zap.String("payroll_id", event.PayrollID),
				zap.String("employee_email", event.EmployeeEmail),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll_generated message failed", zap.Error(err))
		}
	}
}
