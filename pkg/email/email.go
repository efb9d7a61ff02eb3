package email

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"go-contact-backend/config"
	"go-contact-backend/internal/domain"
)

// Service sends email through the configured SMTP relay using STARTTLS and
// plain auth. It implements domain.EmailSender.
type Service struct {
	host     string
	port     int
	username string
	password string
	timeout  time.Duration
}

// NewService creates a new email service from the SMTP relay configuration.
func NewService(cfg *config.Config) *Service {
	return &Service{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		timeout:  30 * time.Second,
	}
}

// Send delivers a single message. There is no retry; any relay failure is
// returned to the caller.
func (s *Service) Send(ctx context.Context, msg domain.EmailMessage) error {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return fmt.Errorf("invalid reply-to address: %w", err)
		}
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)

	client, err := mail.NewClient(s.host,
		mail.WithPort(s.port),
		mail.WithTimeout(s.timeout),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.username),
		mail.WithPassword(s.password),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("smtp client setup failed: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *Service) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
