// internal/app/features/programs/programs.go
package programs

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/app/system/httpjson"
	"github.com/institutojk/mentoria/internal/app/system/normalize"
	"github.com/institutojk/mentoria/internal/app/system/timeouts"
	"github.com/institutojk/mentoria/internal/domain/models"
)

type createRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// HandleCreate handles POST /mentorias (admin).
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	req.Name = normalize.Name(req.Name)
	if err := h.validate.Struct(req); err != nil {
		httpjson.Detail(w, http.StatusBadRequest, "Nome da mentoria é obrigatório")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	program := models.Program{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   store.Now(),
	}
	if err := h.Store.InsertProgram(ctx, &program); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	h.Log.Info("program created", zap.String("mentoria_id", program.ID))
	httpjson.Respond(w, http.StatusOK, program)
}

// ServeList handles GET /mentorias.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	programs, err := h.Store.ListPrograms(ctx)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, programs)
}

// ServeGet handles GET /mentorias/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	program, err := h.Store.GetProgram(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpjson.Detail(w, http.StatusNotFound, "Mentoria não encontrada")
			return
		}
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, program)
}

// HandleDelete handles DELETE /mentorias/{id} (admin). Every enrollment in
// the program goes with it, subtree and all.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	programID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Cascade.DeleteProgram(ctx, programID); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	h.Log.Info("program deleted", zap.String("mentoria_id", programID))
	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "success"})
}
