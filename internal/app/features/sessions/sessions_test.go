// internal/app/features/sessions/sessions_test.go
package sessions_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/features/sessions"
	"github.com/institutojk/mentoria/internal/app/policy/ownership"
	"github.com/institutojk/mentoria/internal/domain/models"
	"github.com/institutojk/mentoria/internal/testutil"
)

func newHandler(t *testing.T) (*sessions.Handler, *testutil.Fixtures) {
	t.Helper()
	ms := testutil.NewMemStore()
	h := sessions.NewHandler(ms, ownership.NewEvaluator(ms), zap.NewNop())
	return h, testutil.NewFixtures(t, ms)
}

func TestHandleCreate(t *testing.T) {
	ctx := context.Background()
	h, fx := newHandler(t)

	mentee := fx.CreateMentee(ctx, "Ana Silva", "ana@example.com")
	program := fx.CreateProgram(ctx, "Essência")
	enrollment := fx.CreateEnrollment(ctx, mentee.ID, program.ID)

	req := testutil.NewJSONRequest(t, "POST", "/sessoes", map[string]any{
		"mentorada_mentoria_id": enrollment.ID,
		"session_number":        1,
		"tema":                  "Autoconhecimento",
		"session_date":          "2026-03-10T14:00:00Z",
	})
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d (%s)", rec.Code, rec.Body.String())
	}
	var session models.Session
	testutil.DecodeJSON(t, rec, &session)
	if session.ID == "" || session.Theme != "Autoconhecimento" {
		t.Errorf("unexpected session: %+v", session)
	}
}

func TestHandleCreate_MissingTheme(t *testing.T) {
	h, _ := newHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/sessoes", map[string]any{
		"mentorada_mentoria_id": "e1",
		"session_number":        1,
		"session_date":          "2026-03-10T14:00:00Z",
	})
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}
}

func TestServeByEnrollment_OrderAndOwnership(t *testing.T) {
	ctx := context.Background()
	h, fx := newHandler(t)

	mentee := fx.CreateMentee(ctx, "Ana Silva", "ana@example.com")
	other := fx.CreateMentee(ctx, "Bia Costa", "bia@example.com")
	program := fx.CreateProgram(ctx, "Essência")
	enrollment := fx.CreateEnrollment(ctx, mentee.ID, program.ID)
	fx.CreateSession(ctx, enrollment.ID, 3)
	fx.CreateSession(ctx, enrollment.ID, 1)
	fx.CreateSession(ctx, enrollment.ID, 2)

	req := testutil.NewRequest("GET", "/sessoes/mentoria/"+enrollment.ID)
	req = testutil.WithChiURLParam(testutil.WithUser(req, mentee), "enrollmentID", enrollment.ID)
	rec := httptest.NewRecorder()
	h.ServeByEnrollment(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d (%s)", rec.Code, rec.Body.String())
	}
	var list []models.Session
	testutil.DecodeJSON(t, rec, &list)
	if len(list) != 3 {
		t.Fatalf("got %d sessions, want 3", len(list))
	}
	for i, s := range list {
		if s.SessionNumber != i+1 {
			t.Errorf("position %d: session_number %d", i, s.SessionNumber)
		}
	}

	req = testutil.NewRequest("GET", "/sessoes/mentoria/"+enrollment.ID)
	req = testutil.WithChiURLParam(testutil.WithUser(req, other), "enrollmentID", enrollment.ID)
	rec = httptest.NewRecorder()
	h.ServeByEnrollment(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("other mentee: got %d, want 403", rec.Code)
	}
}

func TestServeByEnrollment_MissingEnrollment(t *testing.T) {
	ctx := context.Background()
	h, fx := newHandler(t)

	mentee := fx.CreateMentee(ctx, "Ana Silva", "ana@example.com")

	req := testutil.NewRequest("GET", "/sessoes/mentoria/missing")
	req = testutil.WithChiURLParam(testutil.WithUser(req, mentee), "enrollmentID", "missing")
	rec := httptest.NewRecorder()
	h.ServeByEnrollment(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404", rec.Code)
	}
	if detail := testutil.ErrorDetail(t, rec); detail != "Mentoria não encontrada" {
		t.Errorf("detail: got %q", detail)
	}
}
