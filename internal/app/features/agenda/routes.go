// internal/app/features/agenda/routes.go
package agenda

import (
	"github.com/go-chi/chi/v5"

	"github.com/institutojk/mentoria/internal/app/system/auth"
)

// Routes mounts the scheduled-event routes. Typically:
// r.Mount("/agendamentos", agenda.Routes(h))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Get("/mentoria/{enrollmentID}", h.ServeByEnrollment)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireAdmin)
		pr.Post("/", h.HandleCreate)
		pr.Put("/{id}", h.HandleUpdate)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
