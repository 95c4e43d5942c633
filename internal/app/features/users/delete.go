// internal/app/features/users/delete.go
package users

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/policy/ownership"
	"github.com/institutojk/mentoria/internal/app/system/auth"
	"github.com/institutojk/mentoria/internal/app/system/httpjson"
	"github.com/institutojk/mentoria/internal/app/system/timeouts"
)

// HandleDelete handles DELETE /users/{id} (admin). The target's enrollment
// subtrees, messages and product assignments go with them. Admin accounts
// are never deletable.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.CurrentUser(r)
	targetID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Policy.Decide(ctx, ownership.SubjectFor(actor), ownership.KindUser, targetID, ownership.ActionDelete); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if err := h.Cascade.DeleteUser(ctx, targetID); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	h.Log.Info("user deleted by admin",
		zap.String("user_id", targetID),
		zap.String("deleted_by", actor.ID))
	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "success"})
}
