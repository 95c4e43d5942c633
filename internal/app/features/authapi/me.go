// internal/app/features/authapi/me.go
package authapi

import (
	"net/http"

	"github.com/institutojk/mentoria/internal/app/system/auth"
	"github.com/institutojk/mentoria/internal/app/system/httpjson"
)

// ServeMe returns the authenticated user.
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)
	httpjson.Respond(w, http.StatusOK, user)
}
