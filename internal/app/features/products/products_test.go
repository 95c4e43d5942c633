// internal/app/features/products/products_test.go
package products_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/features/products"
	"github.com/institutojk/mentoria/internal/domain/models"
	"github.com/institutojk/mentoria/internal/testutil"
)

func newHandler(t *testing.T) (*products.Handler, *testutil.Fixtures) {
	t.Helper()
	ms := testutil.NewMemStore()
	h := products.NewHandler(ms, zap.NewNop())
	return h, testutil.NewFixtures(t, ms)
}

func TestHandleCreateAndList(t *testing.T) {
	ctx := context.Background()
	h, fx := newHandler(t)

	fx.CreateProduct(ctx, "Curso Gravado")

	req := testutil.NewJSONRequest(t, "POST", "/produtos", map[string]string{
		"name":        "Workbook Essência",
		"description": "Material de apoio",
	})
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("create: got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.ServeList(rec, testutil.NewRequest("GET", "/produtos"))
	if rec.Code != http.StatusOK {
		t.Fatalf("list: got %d", rec.Code)
	}
	var list []models.Product
	testutil.DecodeJSON(t, rec, &list)
	if len(list) != 2 {
		t.Errorf("got %d products, want 2", len(list))
	}
}

func TestServeMy(t *testing.T) {
	ctx := context.Background()
	h, fx := newHandler(t)

	mentee := fx.CreateMentee(ctx, "Ana Silva", "ana@example.com")
	mine := fx.CreateProduct(ctx, "Workbook Essência")
	fx.CreateProduct(ctx, "Curso Avançado")
	fx.CreateAssignment(ctx, mentee.ID, mine.ID)

	req := testutil.WithUser(testutil.NewRequest("GET", "/produtos/my"), mentee)
	rec := httptest.NewRecorder()
	h.ServeMy(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d (%s)", rec.Code, rec.Body.String())
	}
	var list []models.Product
	testutil.DecodeJSON(t, rec, &list)
	if len(list) != 1 || list[0].ID != mine.ID {
		t.Errorf("unexpected list: %+v", list)
	}
}

func TestServeMy_Empty(t *testing.T) {
	ctx := context.Background()
	h, fx := newHandler(t)

	mentee := fx.CreateMentee(ctx, "Ana Silva", "ana@example.com")

	req := testutil.WithUser(testutil.NewRequest("GET", "/produtos/my"), mentee)
	rec := httptest.NewRecorder()
	h.ServeMy(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d", rec.Code)
	}
	var list []models.Product
	testutil.DecodeJSON(t, rec, &list)
	if len(list) != 0 {
		t.Errorf("got %d products, want 0", len(list))
	}
}

func TestHandleAssign(t *testing.T) {
	ctx := context.Background()
	h, fx := newHandler(t)

	mentee := fx.CreateMentee(ctx, "Ana Silva", "ana@example.com")
	product := fx.CreateProduct(ctx, "Workbook Essência")

	req := testutil.NewJSONRequest(t, "POST", "/user-produtos", map[string]string{
		"user_id":    mentee.ID,
		"produto_id": product.ID,
	})
	rec := httptest.NewRecorder()
	h.HandleAssign(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d (%s)", rec.Code, rec.Body.String())
	}
	assignments, err := fx.Store().AssignmentsByUser(ctx, mentee.ID)
	if err != nil {
		t.Fatalf("assignments: %v", err)
	}
	if len(assignments) != 1 || assignments[0].ProductID != product.ID {
		t.Errorf("unexpected assignments: %+v", assignments)
	}
}
