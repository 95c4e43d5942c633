// internal/app/features/dashboard/dashboard.go
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/app/system/auth"
	"github.com/institutojk/mentoria/internal/app/system/httpjson"
	"github.com/institutojk/mentoria/internal/app/system/timeouts"
	"github.com/institutojk/mentoria/internal/domain/models"
)

type snapshot struct {
	HasActiveEnrollment bool   `json:"has_active_mentoria"`
	Message             string `json:"message,omitempty"`
	ProgramName         string `json:"mentoria_name,omitempty"`
	EnrollmentID        string `json:"mentorada_mentoria_id,omitempty"`
	CurrentSession      int    `json:"current_session,omitempty"`
	NextTask            string `json:"next_task,omitempty"`
	FinancialStatus     string `json:"financial_status,omitempty"`
	UnreadMessages      int64  `json:"unread_messages"`
}

// ServeDashboard handles GET /dashboard. The mentee's first active
// enrollment drives the snapshot; without one the response carries just
// the empty-state message.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	enrollments, err := h.Store.EnrollmentsByUser(ctx, user.ID)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	var active *models.Enrollment
	for i := range enrollments {
		if enrollments[i].Status == models.EnrollmentActive {
			active = &enrollments[i]
			break
		}
	}
	if active == nil {
		httpjson.Respond(w, http.StatusOK, snapshot{
			HasActiveEnrollment: false,
			Message:             "Nenhuma mentoria ativa no momento",
		})
		return
	}

	out := snapshot{
		HasActiveEnrollment: true,
		EnrollmentID:        active.ID,
		ProgramName:         "N/A",
		NextTask:            "Nenhuma tarefa pendente",
	}

	if program, err := h.Store.GetProgram(ctx, active.ProgramID); err == nil {
		out.ProgramName = program.Name
	} else if !errors.Is(err, store.ErrNotFound) {
		httpjson.Error(w, h.Log, err)
		return
	}

	sessions, err := h.Store.SessionsByEnrollment(ctx, active.ID)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if len(sessions) > 0 {
		out.CurrentSession = sessions[len(sessions)-1].SessionNumber
	}

	tasks, err := h.Store.TasksByEnrollment(ctx, active.ID)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	for _, task := range tasks {
		if task.Status == models.TaskPending {
			out.NextTask = task.Description
			break
		}
	}

	out.FinancialStatus, err = h.financialStatus(ctx, active.ID)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	out.UnreadMessages, err = h.Store.UnreadCount(ctx, user.ID)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	httpjson.Respond(w, http.StatusOK, out)
}

func (h *Handler) financialStatus(ctx context.Context, enrollmentID string) (string, error) {
	record, err := h.Store.FinancialRecordByEnrollment(ctx, enrollmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "Não configurado", nil
		}
		return "", err
	}
	installments, err := h.Store.InstallmentsByRecord(ctx, record.ID)
	if err != nil {
		return "", err
	}
	paid := 0
	for _, p := range installments {
		if p.Status == models.InstallmentPaid {
			paid++
		}
	}
	return fmt.Sprintf("%d/%d parcelas pagas", paid, len(installments)), nil
}
