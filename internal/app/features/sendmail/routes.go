// internal/app/features/sendmail/routes.go
package sendmail

import (
	"github.com/go-chi/chi/v5"

	"github.com/institutojk/mentoria/internal/app/system/auth"
)

// Routes mounts the send-email route. Typically:
// r.Mount("/send-email", sendmail.Routes(h))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireAdmin)
	r.Post("/", h.HandleSend)
	return r
}
