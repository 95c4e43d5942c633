// internal/app/features/agenda/agenda.go
package agenda

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/policy/ownership"
	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/app/system/auth"
	"github.com/institutojk/mentoria/internal/app/system/httpjson"
	"github.com/institutojk/mentoria/internal/app/system/timeouts"
	"github.com/institutojk/mentoria/internal/domain/models"
)

type eventRequest struct {
	EnrollmentID string    `json:"mentorada_mentoria_id" validate:"required"`
	EventDate    time.Time `json:"event_date" validate:"required"`
	Status       string    `json:"status"`
	Notes        string    `json:"notas"`
}

func (req *eventRequest) status() (models.EventStatus, bool) {
	if req.Status == "" {
		return models.EventScheduled, true
	}
	s := models.EventStatus(req.Status)
	return s, s.Valid()
}

// HandleCreate handles POST /agendamentos (admin).
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpjson.Detail(w, http.StatusBadRequest, "Dados do agendamento inválidos")
		return
	}
	status, ok := req.status()
	if !ok {
		httpjson.Detail(w, http.StatusBadRequest, "Status inválido")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	event := models.ScheduledEvent{
		ID:           uuid.NewString(),
		EnrollmentID: req.EnrollmentID,
		EventDate:    req.EventDate,
		Status:       status,
		Notes:        req.Notes,
		CreatedAt:    store.Now(),
	}
	if err := h.Store.InsertEvent(ctx, &event); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	h.Log.Info("event scheduled",
		zap.String("agendamento_id", event.ID),
		zap.String("mentorada_mentoria_id", event.EnrollmentID),
		zap.Time("event_date", event.EventDate))
	httpjson.Respond(w, http.StatusOK, event)
}

// ServeByEnrollment handles GET /agendamentos/mentoria/{enrollmentID}
// (owner or admin), ordered by event date.
func (h *Handler) ServeByEnrollment(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)
	enrollmentID := chi.URLParam(r, "enrollmentID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Policy.Decide(ctx, ownership.SubjectFor(user), ownership.KindEnrollment, enrollmentID, ownership.ActionView); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	events, err := h.Store.EventsByEnrollment(ctx, enrollmentID)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, events)
}

// HandleUpdate handles PUT /agendamentos/{id} (admin).
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req eventRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpjson.Detail(w, http.StatusBadRequest, "Dados do agendamento inválidos")
		return
	}
	status, ok := req.status()
	if !ok {
		httpjson.Detail(w, http.StatusBadRequest, "Status inválido")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	event, err := h.Store.GetEvent(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpjson.Detail(w, http.StatusNotFound, "Agendamento não encontrado")
			return
		}
		httpjson.Error(w, h.Log, err)
		return
	}

	event.EnrollmentID = req.EnrollmentID
	event.EventDate = req.EventDate
	event.Status = status
	event.Notes = req.Notes

	if err := h.Store.UpdateEvent(ctx, event); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, event)
}

// HandleDelete handles DELETE /agendamentos/{id} (admin).
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Store.GetEvent(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpjson.Detail(w, http.StatusNotFound, "Agendamento não encontrado")
			return
		}
		httpjson.Error(w, h.Log, err)
		return
	}
	if err := h.Store.DeleteEvent(ctx, id); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "success"})
}
