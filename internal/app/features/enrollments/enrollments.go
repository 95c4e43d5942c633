// internal/app/features/enrollments/enrollments.go
package enrollments

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/policy/ownership"
	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/app/system/auth"
	"github.com/institutojk/mentoria/internal/app/system/httpjson"
	"github.com/institutojk/mentoria/internal/app/system/timeouts"
	"github.com/institutojk/mentoria/internal/domain/models"
)

// ServeMy handles GET /mentorada-mentorias/my: the caller's own
// enrollments, admins included.
func (h *Handler) ServeMy(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	enrollments, err := h.Store.EnrollmentsByUser(ctx, user.ID)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, enrollments)
}

// ServeGet handles GET /mentorada-mentorias/{id} (owner or admin).
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Policy.Decide(ctx, ownership.SubjectFor(user), ownership.KindEnrollment, id, ownership.ActionView); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	enrollment, err := h.Store.GetEnrollment(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpjson.Detail(w, http.StatusNotFound, "Mentoria não encontrada")
			return
		}
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, enrollment)
}

type updateRequest struct {
	UserID              string    `json:"user_id" validate:"required"`
	ProgramID           string    `json:"mentoria_id" validate:"required"`
	StartDate           time.Time `json:"start_date" validate:"required"`
	Status              string    `json:"status"`
	DiagnosticPDFURL    string    `json:"diagnostico_pdf_url"`
	DiagnosticKeyPoints string    `json:"diagnostico_pontos_chave"`
	DiagnosticFocus     string    `json:"diagnostico_foco_atual"`
}

// HandleUpdate handles PUT /mentorada-mentorias/{id} (owner or admin).
// The body carries the full enrollment payload; the id and creation time
// are kept.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)
	id := chi.URLParam(r, "id")

	var req updateRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpjson.Detail(w, http.StatusBadRequest, "Dados da mentoria inválidos")
		return
	}
	if req.Status == "" {
		req.Status = string(models.EnrollmentActive)
	}
	status := models.EnrollmentStatus(req.Status)
	if !status.Valid() {
		httpjson.Detail(w, http.StatusBadRequest, "Status inválido")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Policy.Decide(ctx, ownership.SubjectFor(user), ownership.KindEnrollment, id, ownership.ActionEdit); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	enrollment, err := h.Store.GetEnrollment(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpjson.Detail(w, http.StatusNotFound, "Mentoria não encontrada")
			return
		}
		httpjson.Error(w, h.Log, err)
		return
	}

	enrollment.UserID = req.UserID
	enrollment.ProgramID = req.ProgramID
	enrollment.StartDate = req.StartDate
	enrollment.Status = status
	enrollment.DiagnosticPDFURL = req.DiagnosticPDFURL
	enrollment.DiagnosticKeyPoints = req.DiagnosticKeyPoints
	enrollment.DiagnosticFocus = req.DiagnosticFocus

	if err := h.Store.UpdateEnrollment(ctx, enrollment); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, enrollment)
}

// HandleDelete handles DELETE /mentorada-mentorias/{id} (admin). The
// enrollment's sessions, tasks, events and billing go with it; the mentee
// and the program stay.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Cascade.DeleteEnrollment(ctx, id); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	h.Log.Info("enrollment deleted", zap.String("mentorada_mentoria_id", id))
	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "success"})
}
