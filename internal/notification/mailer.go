package notification

import (
	"go-hrms/internal/shared/config"

	"gopkg.in/gomail.v2"
)

// Mailer delivers a single HTML message. Delivery is best-effort
// everywhere in this codebase: callers log failures and move on.
//
//go:generate mockgen -source=mailer.go -destination=mock/mailer_mock.go -package=mock
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type noopMailer struct{}

func (noopMailer) Send(to, subject, htmlBody string) error {
	return nil
}

type gomailMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer returns a noop mailer when SMTP is not configured, so local
// environments run without a mail server.
func NewMailer(cfg config.Config) Mailer {
	if cfg.SMTPHost == "" {
		return noopMailer{}
	}
	return &gomailMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}
}

func (m *gomailMailer) Send(to, subject, htmlBody string) error {
	if to == "" {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	return m.dialer.DialAndSend(msg)
}
