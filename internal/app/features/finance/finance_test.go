// internal/app/features/finance/finance_test.go
package finance_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/features/finance"
	"github.com/institutojk/mentoria/internal/app/policy/ownership"
	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/app/system/ledger"
	"github.com/institutojk/mentoria/internal/domain/models"
	"github.com/institutojk/mentoria/internal/testutil"
)

func newHandler(t *testing.T) (*finance.Handler, *testutil.Fixtures) {
	t.Helper()
	ms := testutil.NewMemStore()
	h := finance.NewHandler(ms, ownership.NewEvaluator(ms), ledger.NewAggregator(ms), zap.NewNop())
	return h, testutil.NewFixtures(t, ms)
}

func TestHandleCreateRecord(t *testing.T) {
	ctx := context.Background()
	h, fx := newHandler(t)

	mentee := fx.CreateMentee(ctx, "Ana Silva", "ana@example.com")
	program := fx.CreateProgram(ctx, "Essência")
	enrollment := fx.CreateEnrollment(ctx, mentee.ID, program.ID)

	req := testutil.NewJSONRequest(t, "POST", "/financeiro", map[string]any{
		"mentorada_mentoria_id": enrollment.ID,
		"valor_total":           900.0,
		"forma_pagamento":       "pix",
		"numero_parcelas":       3,
	})
	rec := httptest.NewRecorder()
	h.HandleCreateRecord(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d (%s)", rec.Code, rec.Body.String())
	}
	var record models.FinancialRecord
	testutil.DecodeJSON(t, rec, &record)
	if record.ID == "" || record.PaymentMethod != models.PaymentPix {
		t.Errorf("unexpected record: %+v", record)
	}
}

func TestHandleCreateRecord_BadPaymentMethod(t *testing.T) {
	h, _ := newHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/financeiro", map[string]any{
		"mentorada_mentoria_id": "e1",
		"valor_total":           900.0,
		"forma_pagamento":       "cheque",
		"numero_parcelas":       3,
	})
	rec := httptest.NewRecorder()
	h.HandleCreateRecord(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}
	if detail := testutil.ErrorDetail(t, rec); detail != "Forma de pagamento inválida" {
		t.Errorf("detail: got %q", detail)
	}
}

func TestServeByEnrollment(t *testing.T) {
	ctx := context.Background()
	h, fx := newHandler(t)

	mentee := fx.CreateMentee(ctx, "Ana Silva", "ana@example.com")
	other := fx.CreateMentee(ctx, "Bia Costa", "bia@example.com")
	program := fx.CreateProgram(ctx, "Essência")
	enrollment := fx.CreateEnrollment(ctx, mentee.ID, program.ID)
	record := fx.CreateFinancialRecord(ctx, enrollment.ID, 900, 3)

	req := testutil.NewRequest("GET", "/financeiro/mentoria/"+enrollment.ID)
	req = testutil.WithChiURLParam(testutil.WithUser(req, mentee), "enrollmentID", enrollment.ID)
	rec := httptest.NewRecorder()
	h.ServeByEnrollment(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("owner: got %d (%s)", rec.Code, rec.Body.String())
	}
	var got models.FinancialRecord
	testutil.DecodeJSON(t, rec, &got)
	if got.ID != record.ID {
		t.Errorf("record: got %q, want %q", got.ID, record.ID)
	}

	// Another mentee is rejected before the record lookup.
	req = testutil.NewRequest("GET", "/financeiro/mentoria/"+enrollment.ID)
	req = testutil.WithChiURLParam(testutil.WithUser(req, other), "enrollmentID", enrollment.ID)
	rec = httptest.NewRecorder()
	h.ServeByEnrollment(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("other: got %d, want 403", rec.Code)
	}
}

func TestServeByEnrollment_NoBilling(t *testing.T) {
	ctx := context.Background()
	h, fx := newHandler(t)

	mentee := fx.CreateMentee(ctx, "Ana Silva", "ana@example.com")
	program := fx.CreateProgram(ctx, "Essência")
	enrollment := fx.CreateEnrollment(ctx, mentee.ID, program.ID)

	req := testutil.NewRequest("GET", "/financeiro/mentoria/"+enrollment.ID)
	req = testutil.WithChiURLParam(testutil.WithUser(req, mentee), "enrollmentID", enrollment.ID)
	rec := httptest.NewRecorder()
	h.ServeByEnrollment(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404", rec.Code)
	}
	if detail := testutil.ErrorDetail(t, rec); detail != "Informações financeiras não encontradas" {
		t.Errorf("detail: got %q", detail)
	}
}

func TestHandleDeleteRecord_RemovesInstallments(t *testing.T) {
	ctx := context.Background()
	h, fx := newHandler(t)

	mentee := fx.CreateMentee(ctx, "Ana Silva", "ana@example.com")
	program := fx.CreateProgram(ctx, "Essência")
	enrollment := fx.CreateEnrollment(ctx, mentee.ID, program.ID)
	record := fx.CreateFinancialRecord(ctx, enrollment.ID, 900, 3)
	p := fx.CreateInstallment(ctx, record.ID, 1, 300, time.Now().UTC())

	req := testutil.WithChiURLParam(testutil.NewRequest("DELETE", "/financeiro/"+record.ID), "id", record.ID)
	rec := httptest.NewRecorder()
	h.HandleDeleteRecord(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d (%s)", rec.Code, rec.Body.String())
	}
	if _, err := fx.Store().GetFinancialRecord(ctx, record.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("record still present: %v", err)
	}
	if _, err := fx.Store().GetInstallment(ctx, p.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("installment still present: %v", err)
	}
}

func TestHandleAppendInstallment_AssignsNextNumber(t *testing.T) {
	ctx := context.Background()
	h, fx := newHandler(t)

	mentee := fx.CreateMentee(ctx, "Ana Silva", "ana@example.com")
	program := fx.CreateProgram(ctx, "Essência")
	enrollment := fx.CreateEnrollment(ctx, mentee.ID, program.ID)
	record := fx.CreateFinancialRecord(ctx, enrollment.ID, 900, 3)
	fx.CreateInstallment(ctx, record.ID, 1, 300, time.Now().UTC())
	fx.CreateInstallment(ctx, record.ID, 2, 300, time.Now().UTC())

	req := testutil.NewJSONRequest(t, "POST", "/parcelas/add", map[string]any{
		"financeiro_id":   record.ID,
		"valor":           300.0,
		"data_vencimento": "2026-06-01T00:00:00Z",
	})
	rec := httptest.NewRecorder()
	h.HandleAppendInstallment(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d (%s)", rec.Code, rec.Body.String())
	}
	var installment models.Installment
	testutil.DecodeJSON(t, rec, &installment)
	if installment.Number != 3 {
		t.Errorf("numero_parcela: got %d, want 3", installment.Number)
	}
	if installment.Status != models.InstallmentPending {
		t.Errorf("status: got %q, want pendente", installment.Status)
	}
}

func TestHandleAppendInstallment_MissingRecord(t *testing.T) {
	h, _ := newHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/parcelas/add", map[string]any{
		"financeiro_id":   "missing",
		"valor":           300.0,
		"data_vencimento": "2026-06-01T00:00:00Z",
	})
	rec := httptest.NewRecorder()
	h.HandleAppendInstallment(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404", rec.Code)
	}
}

func TestServeInstallments_ChainScoped(t *testing.T) {
	ctx := context.Background()
	h, fx := newHandler(t)

	mentee := fx.CreateMentee(ctx, "Ana Silva", "ana@example.com")
	other := fx.CreateMentee(ctx, "Bia Costa", "bia@example.com")
	program := fx.CreateProgram(ctx, "Essência")
	enrollment := fx.CreateEnrollment(ctx, mentee.ID, program.ID)
	record := fx.CreateFinancialRecord(ctx, enrollment.ID, 900, 3)
	fx.CreateInstallment(ctx, record.ID, 2, 300, time.Now().UTC())
	fx.CreateInstallment(ctx, record.ID, 1, 300, time.Now().UTC())

	req := testutil.NewRequest("GET", "/parcelas/financeiro/"+record.ID)
	req = testutil.WithChiURLParam(testutil.WithUser(req, mentee), "recordID", record.ID)
	rec := httptest.NewRecorder()
	h.ServeInstallments(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("owner: got %d (%s)", rec.Code, rec.Body.String())
	}
	var list []models.Installment
	testutil.DecodeJSON(t, rec, &list)
	if len(list) != 2 || list[0].Number != 1 || list[1].Number != 2 {
		t.Errorf("unexpected list: %+v", list)
	}

	req = testutil.NewRequest("GET", "/parcelas/financeiro/"+record.ID)
	req = testutil.WithChiURLParam(testutil.WithUser(req, other), "recordID", record.ID)
	rec = httptest.NewRecorder()
	h.ServeInstallments(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("other: got %d, want 403", rec.Code)
	}
}

func TestHandleUpdateInstallment_MarkPaid(t *testing.T) {
	ctx := context.Background()
	h, fx := newHandler(t)

	mentee := fx.CreateMentee(ctx, "Ana Silva", "ana@example.com")
	program := fx.CreateProgram(ctx, "Essência")
	enrollment := fx.CreateEnrollment(ctx, mentee.ID, program.ID)
	record := fx.CreateFinancialRecord(ctx, enrollment.ID, 900, 3)
	p := fx.CreateInstallment(ctx, record.ID, 1, 300, time.Now().UTC())

	req := testutil.NewJSONRequest(t, "PUT", "/parcelas/"+p.ID, map[string]any{
		"financeiro_id":   record.ID,
		"numero_parcela":  1,
		"valor":           300.0,
		"data_vencimento": "2026-05-01T00:00:00Z",
		"status":          "paga",
		"data_pagamento":  "2026-05-02T10:00:00Z",
	})
	req = testutil.WithChiURLParam(req, "id", p.ID)
	rec := httptest.NewRecorder()
	h.HandleUpdateInstallment(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d (%s)", rec.Code, rec.Body.String())
	}
	updated, err := fx.Store().GetInstallment(ctx, p.ID)
	if err != nil {
		t.Fatalf("get updated: %v", err)
	}
	if updated.Status != models.InstallmentPaid || updated.PaidDate == nil {
		t.Errorf("unexpected installment: %+v", updated)
	}
}

func TestHandleUpdateInstallment_PaidWithoutDate(t *testing.T) {
	ctx := context.Background()
	h, fx := newHandler(t)

	mentee := fx.CreateMentee(ctx, "Ana Silva", "ana@example.com")
	program := fx.CreateProgram(ctx, "Essência")
	enrollment := fx.CreateEnrollment(ctx, mentee.ID, program.ID)
	record := fx.CreateFinancialRecord(ctx, enrollment.ID, 900, 3)
	p := fx.CreateInstallment(ctx, record.ID, 1, 300, time.Now().UTC())

	req := testutil.NewJSONRequest(t, "PUT", "/parcelas/"+p.ID, map[string]any{
		"financeiro_id":   record.ID,
		"numero_parcela":  1,
		"valor":           300.0,
		"data_vencimento": "2026-05-01T00:00:00Z",
		"status":          "paga",
	})
	req = testutil.WithChiURLParam(req, "id", p.ID)
	rec := httptest.NewRecorder()
	h.HandleUpdateInstallment(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}
}

func TestHandleUpdateInstallment_NotFound(t *testing.T) {
	h, _ := newHandler(t)

	req := testutil.NewJSONRequest(t, "PUT", "/parcelas/missing", map[string]any{
		"financeiro_id":   "f1",
		"valor":           300.0,
		"data_vencimento": "2026-05-01T00:00:00Z",
	})
	req = testutil.WithChiURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()
	h.HandleUpdateInstallment(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404", rec.Code)
	}
	if detail := testutil.ErrorDetail(t, rec); detail != "Parcela não encontrada" {
		t.Errorf("detail: got %q", detail)
	}
}

func TestReports(t *testing.T) {
	ctx := context.Background()
	h, fx := newHandler(t)

	mentee := fx.CreateMentee(ctx, "Ana Silva", "ana@example.com")
	program := fx.CreateProgram(ctx, "Essência")
	enrollment := fx.CreateEnrollment(ctx, mentee.ID, program.ID)
	record := fx.CreateFinancialRecord(ctx, enrollment.ID, 900, 3)

	now := store.Now()
	fx.CreatePaidInstallment(ctx, record.ID, 1, 300, now.AddDate(0, -2, 0))
	fx.CreatePaidInstallment(ctx, record.ID, 2, 300, now)
	fx.CreateInstallment(ctx, record.ID, 3, 300, now.AddDate(0, 1, 0))

	rec := httptest.NewRecorder()
	h.ServeOverview(rec, testutil.NewRequest("GET", "/admin/financeiro-overview"))
	if rec.Code != http.StatusOK {
		t.Fatalf("overview: got %d (%s)", rec.Code, rec.Body.String())
	}
	var rows []ledger.OverviewRow
	testutil.DecodeJSON(t, rec, &rows)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	row := rows[0]
	if row.Received != 600 || row.Outstanding != 300 || row.UserName != "Ana Silva" {
		t.Errorf("unexpected row: %+v", row)
	}

	rec = httptest.NewRecorder()
	h.ServeLifetimeRevenue(rec, testutil.NewRequest("GET", "/admin/receita-total"))
	var total map[string]float64
	testutil.DecodeJSON(t, rec, &total)
	if total["receita_total"] != 600 {
		t.Errorf("receita_total: got %v, want 600", total["receita_total"])
	}

	rec = httptest.NewRecorder()
	h.ServeMonthlyRevenue(rec, testutil.NewRequest("GET", "/admin/receita-mensal"))
	var monthly map[string]float64
	testutil.DecodeJSON(t, rec, &monthly)
	if monthly["receita_mensal"] != 300 {
		t.Errorf("receita_mensal: got %v, want 300", monthly["receita_mensal"])
	}
}
