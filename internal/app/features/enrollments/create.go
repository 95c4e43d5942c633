// internal/app/features/enrollments/create.go
package enrollments

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/app/system/httpjson"
	"github.com/institutojk/mentoria/internal/app/system/mailer"
	"github.com/institutojk/mentoria/internal/app/system/timeouts"
	"github.com/institutojk/mentoria/internal/domain/models"
)

type createRequest struct {
	UserID              string    `json:"user_id" validate:"required"`
	ProgramID           string    `json:"mentoria_id" validate:"required"`
	StartDate           time.Time `json:"start_date" validate:"required"`
	Status              string    `json:"status"`
	DiagnosticPDFURL    string    `json:"diagnostico_pdf_url"`
	DiagnosticKeyPoints string    `json:"diagnostico_pontos_chave"`
	DiagnosticFocus     string    `json:"diagnostico_foco_atual"`
}

// HandleCreate handles POST /mentorada-mentorias (admin). The enrolled
// mentee gets a notification email when both her account and the program
// still resolve; delivery failures never fail the request.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
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

	enrollment := models.Enrollment{
		ID:                  uuid.NewString(),
		UserID:              req.UserID,
		ProgramID:           req.ProgramID,
		StartDate:           req.StartDate,
		Status:              status,
		DiagnosticPDFURL:    req.DiagnosticPDFURL,
		DiagnosticKeyPoints: req.DiagnosticKeyPoints,
		DiagnosticFocus:     req.DiagnosticFocus,
		CreatedAt:           store.Now(),
	}
	if err := h.Store.InsertEnrollment(ctx, &enrollment); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	h.notifyMentee(ctx, &enrollment)

	h.Log.Info("enrollment created",
		zap.String("mentorada_mentoria_id", enrollment.ID),
		zap.String("user_id", enrollment.UserID),
		zap.String("mentoria_id", enrollment.ProgramID))
	httpjson.Respond(w, http.StatusOK, enrollment)
}

// notifyMentee sends the new-enrollment email when the mentee and the
// program both still exist. Best effort only.
func (h *Handler) notifyMentee(ctx context.Context, enrollment *models.Enrollment) {
	user, err := h.Store.GetUser(ctx, enrollment.UserID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			h.Log.Warn("enrollment notification: user lookup failed", zap.Error(err))
		}
		return
	}
	program, err := h.Store.GetProgram(ctx, enrollment.ProgramID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			h.Log.Warn("enrollment notification: program lookup failed", zap.Error(err))
		}
		return
	}

	email := mailer.BuildEnrollmentEmail(user.Email, mailer.EnrollmentEmailData{
		Name:        user.Name,
		ProgramName: program.Name,
		StartDate:   enrollment.StartDate,
	})
	go func() {
		if err := h.Mail.Send(email); err != nil {
			h.Log.Warn("enrollment notification email failed",
				zap.String("to", user.Email),
				zap.Error(err))
		}
	}()
}
