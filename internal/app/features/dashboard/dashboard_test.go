// internal/app/features/dashboard/dashboard_test.go
package dashboard_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/features/dashboard"
	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/testutil"
)

func newHandler(t *testing.T) (*dashboard.Handler, *testutil.Fixtures) {
	t.Helper()
	ms := testutil.NewMemStore()
	h := dashboard.NewHandler(ms, zap.NewNop())
	return h, testutil.NewFixtures(t, ms)
}

func serve(t *testing.T, h *dashboard.Handler, fx *testutil.Fixtures, userID string) map[string]json.RawMessage {
	t.Helper()
	ctx := context.Background()
	user, err := fx.Store().GetUser(ctx, userID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	req := testutil.WithUser(testutil.NewRequest("GET", "/dashboard"), *user)
	rec := httptest.NewRecorder()
	h.ServeDashboard(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d (%s)", rec.Code, rec.Body.String())
	}
	var body map[string]json.RawMessage
	testutil.DecodeJSON(t, rec, &body)
	return body
}

func str(t *testing.T, body map[string]json.RawMessage, key string) string {
	t.Helper()
	var s string
	if err := json.Unmarshal(body[key], &s); err != nil {
		t.Fatalf("field %q: %v", key, err)
	}
	return s
}

func TestServeDashboard_NoActiveEnrollment(t *testing.T) {
	ctx := context.Background()
	h, fx := newHandler(t)

	mentee := fx.CreateMentee(ctx, "Ana Silva", "ana@example.com")

	body := serve(t, h, fx, mentee.ID)
	if string(body["has_active_mentoria"]) != "false" {
		t.Errorf("has_active_mentoria: got %s", body["has_active_mentoria"])
	}
	if got := str(t, body, "message"); got != "Nenhuma mentoria ativa no momento" {
		t.Errorf("message: got %q", got)
	}
}

func TestServeDashboard_Snapshot(t *testing.T) {
	ctx := context.Background()
	h, fx := newHandler(t)

	mentee := fx.CreateMentee(ctx, "Ana Silva", "ana@example.com")
	admin := fx.CreateAdmin(ctx, "Jussara", "jussara@example.com")
	program := fx.CreateProgram(ctx, "Essência")
	enrollment := fx.CreateEnrollment(ctx, mentee.ID, program.ID)
	fx.CreateSession(ctx, enrollment.ID, 1)
	fx.CreateSession(ctx, enrollment.ID, 2)
	fx.CreateTask(ctx, enrollment.ID, "Escrever carta para si mesma")
	record := fx.CreateFinancialRecord(ctx, enrollment.ID, 900, 3)
	fx.CreatePaidInstallment(ctx, record.ID, 1, 300, store.Now())
	fx.CreateInstallment(ctx, record.ID, 2, 300, store.Now())
	fx.CreateMessage(ctx, mentee.ID, admin.ID, "Bem-vinda!")

	body := serve(t, h, fx, mentee.ID)
	if string(body["has_active_mentoria"]) != "true" {
		t.Fatalf("has_active_mentoria: got %s", body["has_active_mentoria"])
	}
	if got := str(t, body, "mentoria_name"); got != "Essência" {
		t.Errorf("mentoria_name: got %q", got)
	}
	if string(body["current_session"]) != "2" {
		t.Errorf("current_session: got %s", body["current_session"])
	}
	if got := str(t, body, "next_task"); got != "Escrever carta para si mesma" {
		t.Errorf("next_task: got %q", got)
	}
	if got := str(t, body, "financial_status"); got != "1/2 parcelas pagas" {
		t.Errorf("financial_status: got %q", got)
	}
	if string(body["unread_messages"]) != "1" {
		t.Errorf("unread_messages: got %s", body["unread_messages"])
	}
}

func TestServeDashboard_NoBilling(t *testing.T) {
	ctx := context.Background()
	h, fx := newHandler(t)

	mentee := fx.CreateMentee(ctx, "Ana Silva", "ana@example.com")
	program := fx.CreateProgram(ctx, "Essência")
	fx.CreateEnrollment(ctx, mentee.ID, program.ID)

	body := serve(t, h, fx, mentee.ID)
	if got := str(t, body, "financial_status"); got != "Não configurado" {
		t.Errorf("financial_status: got %q", got)
	}
	if got := str(t, body, "next_task"); got != "Nenhuma tarefa pendente" {
		t.Errorf("next_task: got %q", got)
	}
}
