// internal/app/system/mailer/mailer.go
//
// Package mailer sends transactional email over SMTP. Delivery is
// best-effort: callers log failures and move on, a lost notification never
// fails the request that triggered it.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

// Email is a single outbound message.
type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Sender delivers email. The SMTP Mailer implements it for production;
// tests substitute a recording fake.
type Sender interface {
	Send(e Email) error
}

// Mailer sends email through an SMTP relay.
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
	log  *zap.Logger
}

// New creates an SMTP Mailer. With an empty host the Mailer logs and drops
// every message instead of failing, so local setups work without a relay.
func New(host string, port int, user, pass, from string, logger *zap.Logger) *Mailer {
	return &Mailer{host: host, port: port, user: user, pass: pass, from: from, log: logger}
}

// Send delivers one message. The HTML body wins when both are set.
func (m *Mailer) Send(e Email) error {
	if m.host == "" {
		m.log.Warn("mailer not configured, dropping email",
			zap.String("to", e.To),
			zap.String("subject", e.Subject))
		return nil
	}

	msg := m.buildMessage(e)
	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.pass, m.host)
	}

	if err := smtp.SendMail(addr, auth, m.from, []string{e.To}, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", e.To, err)
	}
	m.log.Info("email sent", zap.String("to", e.To), zap.String("subject", e.Subject))
	return nil
}

func (m *Mailer) buildMessage(e Email) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", e.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", e.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	if e.HTMLBody != "" {
		b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
		b.WriteString(e.HTMLBody)
	} else {
		b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
		b.WriteString(e.TextBody)
	}
	b.WriteString("\r\n")
	return []byte(b.String())
}
