package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/laundrahub/admin-service/internal/config"
)

// Mailer sends plain-text mail, used for password reset links.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer delivers through an authenticated SMTP relay.
type SMTPMailer struct {
	cfg config.EmailConfig
}

// NewSMTPMailer builds the mailer. Returns nil when credentials are not
// configured.
func NewSMTPMailer(cfg config.EmailConfig) *SMTPMailer {
	if cfg.Username == "" || cfg.Password == "" {
		return nil
	}
	return &SMTPMailer{cfg: cfg}
}

// Send writes one message to the relay.
func (m *SMTPMailer) Send(to, subject, body string) error {
	from := m.cfg.From
	if from == "" {
		from = m.cfg.Username
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	return smtp.SendMail(addr, auth, from, []string{to}, []byte(msg.String()))
}
