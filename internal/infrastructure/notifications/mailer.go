package notifications

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"github.com/prajalbasnet/Authority-Accesss/domain"
)

// SMTPMailer implements domain.Mailer over SMTP.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

// NewSMTPMailer creates a new SMTP mailer. With an empty host the mailer
// logs instead of sending, which keeps local development working without a
// mail relay.
func NewSMTPMailer(host string, port int, username, password, from string, logger *zap.Logger) domain.Mailer {
	var dialer *gomail.Dialer
	if host != "" {
		dialer = gomail.NewDialer(host, port, username, password)
	}
	return &SMTPMailer{
		dialer: dialer,
		from:   from,
		logger: logger,
	}
}

// SendOtpEmail implements domain.Mailer with the purpose-specific template.
func (m *SMTPMailer) SendOtpEmail(user *domain.User, code string, purpose domain.OtpPurpose) error {
	body := htmlBody(purpose.MessageBody(user.FullName, code))
	return m.SendEmail(user.Email, purpose.Subject(), body)
}

// SendApprovalEmail implements domain.Mailer.
func (m *SMTPMailer) SendApprovalEmail(user *domain.User) error {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Congratulations! Your profile has been successfully verified. You can now log in and access all features.</p><p>HamroGunaso Team</p>",
		user.FullName,
	)
	return m.SendEmail(user.Email, "Your profile is verified", body)
}

// SendRejectionEmail implements domain.Mailer.
func (m *SMTPMailer) SendRejectionEmail(user *domain.User, reason string) error {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Unfortunately, your profile has been rejected.</p><p>Reason: <strong>%s</strong></p><p>Please re-submit your documents correctly.</p><p>HamroGunaso Team</p>",
		user.FullName, reason,
	)
	return m.SendEmail(user.Email, "Your profile was rejected", body)
}

// SendEmail implements domain.Mailer.
func (m *SMTPMailer) SendEmail(to, subject, body string) error {
	if m.dialer == nil {
		m.logger.Info("smtp not configured, skipping mail",
			zap.String("to", to),
			zap.String("subject", subject))
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// htmlBody converts a plain-text template to a minimal HTML mail body.
func htmlBody(text string) string {
	return "<p>" + strings.ReplaceAll(text, "\n\n", "</p><p>") + "</p>"
}
