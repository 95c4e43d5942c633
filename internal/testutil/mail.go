// internal/testutil/mail.go
package testutil

import (
	"sync"

	"github.com/institutojk/mentoria/internal/app/system/mailer"
)

// MailRecorder is a mailer.Sender that captures outbound email for
// assertions instead of delivering it.
type MailRecorder struct {
	mu   sync.Mutex
	sent []mailer.Email
}

var _ mailer.Sender = (*MailRecorder)(nil)

// NewMailRecorder returns an empty recorder.
func NewMailRecorder() *MailRecorder {
	return &MailRecorder{}
}

// Send records the email and reports success.
func (m *MailRecorder) Send(e mailer.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, e)
	return nil
}

// Sent returns a copy of everything recorded so far.
func (m *MailRecorder) Sent() []mailer.Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]mailer.Email, len(m.sent))
	copy(out, m.sent)
	return out
}
