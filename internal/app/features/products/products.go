// internal/app/features/products/products.go
package products

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/app/system/auth"
	"github.com/institutojk/mentoria/internal/app/system/httpjson"
	"github.com/institutojk/mentoria/internal/app/system/timeouts"
	"github.com/institutojk/mentoria/internal/domain/models"
)

type createRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ContentURL  string `json:"content_url"`
}

// HandleCreate handles POST /produtos (admin).
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpjson.Detail(w, http.StatusBadRequest, "Nome do produto é obrigatório")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	product := models.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		ContentURL:  req.ContentURL,
		CreatedAt:   store.Now(),
	}
	if err := h.Store.InsertProduct(ctx, &product); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	h.Log.Info("product created", zap.String("produto_id", product.ID), zap.String("name", product.Name))
	httpjson.Respond(w, http.StatusOK, product)
}

// ServeList handles GET /produtos: the whole catalog.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	products, err := h.Store.ListProducts(ctx)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, products)
}

// ServeMy handles GET /produtos/my: the products granted to the caller.
func (h *Handler) ServeMy(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	assignments, err := h.Store.AssignmentsByUser(ctx, user.ID)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if len(assignments) == 0 {
		httpjson.Respond(w, http.StatusOK, []models.Product{})
		return
	}

	ids := make([]string, 0, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.ProductID)
	}
	products, err := h.Store.ProductsByIDs(ctx, ids)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, products)
}

type assignRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	ProductID string `json:"produto_id" validate:"required"`
}

// HandleAssign handles POST /user-produtos (admin): grants a product to a
// user.
func (h *Handler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	var req assignRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpjson.Detail(w, http.StatusBadRequest, "Dados do produto inválidos")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	assignment := models.ProductAssignment{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		ProductID: req.ProductID,
		CreatedAt: store.Now(),
	}
	if err := h.Store.InsertAssignment(ctx, &assignment); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	h.Log.Info("product assigned",
		zap.String("user_id", assignment.UserID),
		zap.String("produto_id", assignment.ProductID))
	httpjson.Respond(w, http.StatusOK, assignment)
}
