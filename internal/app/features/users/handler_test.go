// internal/app/features/users/handler_test.go
package users_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/features/users"
	"github.com/institutojk/mentoria/internal/app/policy/ownership"
	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/app/system/cascade"
	"github.com/institutojk/mentoria/internal/domain/models"
	"github.com/institutojk/mentoria/internal/testutil"
)

func newHandler(t *testing.T) (*users.Handler, *testutil.Fixtures) {
	t.Helper()
	ms := testutil.NewMemStore()
	h := users.NewHandler(ms, ownership.NewEvaluator(ms), cascade.NewEngine(ms, zap.NewNop()), zap.NewNop())
	return h, testutil.NewFixtures(t, ms)
}

func TestServeGet_NotFound(t *testing.T) {
	h, fx := newHandler(t)
	admin := fx.CreateAdmin(context.Background(), "Jussara", "jussara@example.com")

	req := testutil.WithUser(testutil.NewRequest("GET", "/users/missing"), admin)
	req = testutil.WithChiURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()
	h.ServeGet(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404", rec.Code)
	}
}

func TestHandleDelete_CascadesMentee(t *testing.T) {
	ctx := context.Background()
	h, fx := newHandler(t)

	admin := fx.CreateAdmin(ctx, "Jussara", "jussara@example.com")
	mentee := fx.CreateMentee(ctx, "Ana Silva", "ana@example.com")
	program := fx.CreateProgram(ctx, "Essência")
	enrollment := fx.CreateEnrollment(ctx, mentee.ID, program.ID)
	fx.CreateTask(ctx, enrollment.ID, "Tarefa")

	req := testutil.WithUser(testutil.NewRequest("DELETE", "/users/"+mentee.ID), admin)
	req = testutil.WithChiURLParam(req, "id", mentee.ID)
	rec := httptest.NewRecorder()
	h.HandleDelete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d (%s)", rec.Code, rec.Body.String())
	}
	if _, err := fx.Store().GetUser(ctx, mentee.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("user still present: %v", err)
	}
	if _, err := fx.Store().GetEnrollment(ctx, enrollment.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("enrollment still present: %v", err)
	}
}

func TestHandleDelete_AdminTargetForbidden(t *testing.T) {
	ctx := context.Background()
	h, fx := newHandler(t)

	admin := fx.CreateAdmin(ctx, "Jussara", "jussara@example.com")
	other := fx.CreateAdmin(ctx, "Coordenadora", "coord@example.com")

	req := testutil.WithUser(testutil.NewRequest("DELETE", "/users/"+other.ID), admin)
	req = testutil.WithChiURLParam(req, "id", other.ID)
	rec := httptest.NewRecorder()
	h.HandleDelete(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("got %d, want 403", rec.Code)
	}
	if _, err := fx.Store().GetUser(ctx, other.ID); err != nil {
		t.Errorf("admin should still exist: %v", err)
	}
}

func TestServeMentora(t *testing.T) {
	ctx := context.Background()
	h, fx := newHandler(t)

	first := fx.CreateAdmin(ctx, "Jussara", "jussara@example.com")
	fx.CreateAdmin(ctx, "Coordenadora", "coord@example.com")
	mentee := fx.CreateMentee(ctx, "Ana Silva", "ana@example.com")

	req := testutil.WithUser(testutil.NewRequest("GET", "/mentora"), mentee)
	rec := httptest.NewRecorder()
	h.ServeMentora(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d", rec.Code)
	}
	var got models.User
	testutil.DecodeJSON(t, rec, &got)
	if got.ID != first.ID {
		t.Errorf("mentora: got %q, want first admin %q", got.ID, first.ID)
	}
}
