package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/podomus/clinic-api/config"
	"github.com/podomus/clinic-api/internal/model"
)

// Notifier forwards new contact messages to the clinic inbox.
type Notifier interface {
	NotifyContactMessage(ctx context.Context, msg *model.ContactMessage) error
}

// NewNotifier returns an SMTP-backed notifier, or a no-op one when SMTP is
// not configured.
func NewNotifier(cfg config.SMTPConfig) Notifier {
	if cfg.Host == "" {
		return noopNotifier{}
	}
	return &smtpNotifier{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		to:     cfg.To,
	}
}

type noopNotifier struct{}

func (noopNotifier) NotifyContactMessage(ctx context.Context, msg *model.ContactMessage) error {
	return nil
}

type smtpNotifier struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func (n *smtpNotifier) NotifyContactMessage(ctx context.Context, msg *model.ContactMessage) error {
	subject := "New contact message: " + msg.Subject
	if msg.IsAppointmentRequest {
		subject = "New appointment request: " + msg.Subject
	}

	body := fmt.Sprintf("From: %s <%s>\n", msg.Name, msg.Email)
	if msg.Phone != nil {
		body += fmt.Sprintf("Phone: %s\n", *msg.Phone)
	}
	body += "\n" + msg.Message

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}
	return nil
}
