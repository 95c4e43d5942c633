// internal/app/features/sendmail/send_test.go
package sendmail_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/features/sendmail"
	"github.com/institutojk/mentoria/internal/testutil"
)

func waitForMail(rec *testutil.MailRecorder) int {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if n := len(rec.Sent()); n > 0 {
			return n
		}
		time.Sleep(5 * time.Millisecond)
	}
	return len(rec.Sent())
}

func TestHandleSend_SanitizesHTML(t *testing.T) {
	mail := testutil.NewMailRecorder()
	h := sendmail.NewHandler(mail, zap.NewNop())

	req := testutil.NewJSONRequest(t, "POST", "/send-email", map[string]string{
		"recipient_email": "ana@example.com",
		"subject":         "Novidades",
		"html_content":    `<div style="color: #DAA520;">Olá!</div><script>alert(1)</script>`,
	})
	rec := httptest.NewRecorder()
	h.HandleSend(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d (%s)", rec.Code, rec.Body.String())
	}
	var body map[string]string
	testutil.DecodeJSON(t, rec, &body)
	if body["message"] != "Email enviado para ana@example.com" {
		t.Errorf("message: got %q", body["message"])
	}

	if n := waitForMail(mail); n != 1 {
		t.Fatalf("sent %d emails, want 1", n)
	}
	sent := mail.Sent()[0]
	if strings.Contains(sent.HTMLBody, "<script>") {
		t.Errorf("script tag survived sanitization: %q", sent.HTMLBody)
	}
	if !strings.Contains(sent.HTMLBody, "Olá!") {
		t.Errorf("content stripped: %q", sent.HTMLBody)
	}
}

func TestHandleSend_BadRecipient(t *testing.T) {
	mail := testutil.NewMailRecorder()
	h := sendmail.NewHandler(mail, zap.NewNop())

	req := testutil.NewJSONRequest(t, "POST", "/send-email", map[string]string{
		"recipient_email": "not-an-email",
		"subject":         "Novidades",
		"html_content":    "<p>Olá</p>",
	})
	rec := httptest.NewRecorder()
	h.HandleSend(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}
	if n := len(mail.Sent()); n != 0 {
		t.Errorf("sent %d emails, want 0", n)
	}
}
