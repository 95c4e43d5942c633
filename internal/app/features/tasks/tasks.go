// internal/app/features/tasks/tasks.go
package tasks

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

type taskRequest struct {
	EnrollmentID string     `json:"mentorada_mentoria_id" validate:"required"`
	Description  string     `json:"descricao" validate:"required"`
	Status       string     `json:"status"`
	Reflection   string     `json:"reflexao"`
	DueDate      *time.Time `json:"due_date"`
}

func (req *taskRequest) status() (models.TaskStatus, bool) {
	if req.Status == "" {
		return models.TaskPending, true
	}
	s := models.TaskStatus(req.Status)
	return s, s.Valid()
}

// HandleCreate handles POST /tarefas (admin).
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpjson.Detail(w, http.StatusBadRequest, "Dados da tarefa inválidos")
		return
	}
	status, ok := req.status()
	if !ok {
		httpjson.Detail(w, http.StatusBadRequest, "Status inválido")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	task := models.Task{
		ID:           uuid.NewString(),
		EnrollmentID: req.EnrollmentID,
		Description:  req.Description,
		Status:       status,
		Reflection:   req.Reflection,
		DueDate:      req.DueDate,
		CreatedAt:    store.Now(),
	}
	if err := h.Store.InsertTask(ctx, &task); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	h.Log.Info("task created",
		zap.String("tarefa_id", task.ID),
		zap.String("mentorada_mentoria_id", task.EnrollmentID))
	httpjson.Respond(w, http.StatusOK, task)
}

// ServeByEnrollment handles GET /tarefas/mentoria/{enrollmentID} (owner or
// admin).
func (h *Handler) ServeByEnrollment(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)
	enrollmentID := chi.URLParam(r, "enrollmentID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Policy.Decide(ctx, ownership.SubjectFor(user), ownership.KindEnrollment, enrollmentID, ownership.ActionView); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	tasks, err := h.Store.TasksByEnrollment(ctx, enrollmentID)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, tasks)
}

// HandleUpdate handles PUT /tarefas/{id} (owner or admin). The mentee uses
// this to mark a task done and record her reflection; ownership is resolved
// through the task's enrollment.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)
	id := chi.URLParam(r, "id")

	var req taskRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpjson.Detail(w, http.StatusBadRequest, "Dados da tarefa inválidos")
		return
	}
	status, ok := req.status()
	if !ok {
		httpjson.Detail(w, http.StatusBadRequest, "Status inválido")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Policy.Decide(ctx, ownership.SubjectFor(user), ownership.KindTask, id, ownership.ActionEdit); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	task, err := h.Store.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpjson.Detail(w, http.StatusNotFound, "Tarefa não encontrada")
			return
		}
		httpjson.Error(w, h.Log, err)
		return
	}

	task.EnrollmentID = req.EnrollmentID
	task.Description = req.Description
	task.Status = status
	task.Reflection = req.Reflection
	task.DueDate = req.DueDate

	if err := h.Store.UpdateTask(ctx, task); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, task)
}
