// internal/app/features/programs/programs_test.go
package programs_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/features/programs"
	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/app/system/cascade"
	"github.com/institutojk/mentoria/internal/domain/models"
	"github.com/institutojk/mentoria/internal/testutil"
)

func newHandler(t *testing.T) (*programs.Handler, *testutil.Fixtures) {
	t.Helper()
	ms := testutil.NewMemStore()
	h := programs.NewHandler(ms, cascade.NewEngine(ms, zap.NewNop()), zap.NewNop())
	return h, testutil.NewFixtures(t, ms)
}

func TestHandleCreate(t *testing.T) {
	h, _ := newHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/mentorias", map[string]string{
		"name":        "Essência",
		"description": "Programa de 6 meses",
	})
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d (%s)", rec.Code, rec.Body.String())
	}
	var program models.Program
	testutil.DecodeJSON(t, rec, &program)
	if program.ID == "" || program.Name != "Essência" {
		t.Errorf("unexpected program: %+v", program)
	}
}

func TestHandleCreate_MissingName(t *testing.T) {
	h, _ := newHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/mentorias", map[string]string{"description": "sem nome"})
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}
}

func TestServeGet_NotFound(t *testing.T) {
	h, _ := newHandler(t)

	req := testutil.WithChiURLParam(testutil.NewRequest("GET", "/mentorias/missing"), "id", "missing")
	rec := httptest.NewRecorder()
	h.ServeGet(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404", rec.Code)
	}
	if detail := testutil.ErrorDetail(t, rec); detail != "Mentoria não encontrada" {
		t.Errorf("detail: got %q", detail)
	}
}

func TestHandleDelete_Cascades(t *testing.T) {
	ctx := context.Background()
	h, fx := newHandler(t)

	mentee := fx.CreateMentee(ctx, "Ana Silva", "ana@example.com")
	program := fx.CreateProgram(ctx, "Essência")
	enrollment := fx.CreateEnrollment(ctx, mentee.ID, program.ID)
	fx.CreateSession(ctx, enrollment.ID, 1)

	req := testutil.WithChiURLParam(testutil.NewRequest("DELETE", "/mentorias/"+program.ID), "id", program.ID)
	rec := httptest.NewRecorder()
	h.HandleDelete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d (%s)", rec.Code, rec.Body.String())
	}
	if _, err := fx.Store().GetProgram(ctx, program.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("program still present: %v", err)
	}
	if _, err := fx.Store().GetEnrollment(ctx, enrollment.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("enrollment still present: %v", err)
	}
}
