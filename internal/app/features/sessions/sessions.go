// internal/app/features/sessions/sessions.go
package sessions

import (
	"context"
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

type createRequest struct {
	EnrollmentID  string    `json:"mentorada_mentoria_id" validate:"required"`
	SessionNumber int       `json:"session_number" validate:"required,min=1"`
	Theme         string    `json:"tema" validate:"required"`
	SessionDate   time.Time `json:"session_date" validate:"required"`
	VideoURL      string    `json:"video_url"`
	AudioURL      string    `json:"audio_url"`
	Summary       string    `json:"resumo"`
}

// HandleCreate handles POST /sessoes (admin).
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpjson.Detail(w, http.StatusBadRequest, "Dados da sessão inválidos")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	session := models.Session{
		ID:            uuid.NewString(),
		EnrollmentID:  req.EnrollmentID,
		SessionNumber: req.SessionNumber,
		Theme:         req.Theme,
		SessionDate:   req.SessionDate,
		VideoURL:      req.VideoURL,
		AudioURL:      req.AudioURL,
		Summary:       req.Summary,
		CreatedAt:     store.Now(),
	}
	if err := h.Store.InsertSession(ctx, &session); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	h.Log.Info("session created",
		zap.String("sessao_id", session.ID),
		zap.String("mentorada_mentoria_id", session.EnrollmentID),
		zap.Int("session_number", session.SessionNumber))
	httpjson.Respond(w, http.StatusOK, session)
}

// ServeByEnrollment handles GET /sessoes/mentoria/{enrollmentID} (owner or
// admin), ordered by session number.
func (h *Handler) ServeByEnrollment(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)
	enrollmentID := chi.URLParam(r, "enrollmentID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Policy.Decide(ctx, ownership.SubjectFor(user), ownership.KindEnrollment, enrollmentID, ownership.ActionView); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	sessions, err := h.Store.SessionsByEnrollment(ctx, enrollmentID)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, sessions)
}
