// internal/app/features/enrollments/routes.go
package enrollments

import (
	"github.com/go-chi/chi/v5"

	"github.com/institutojk/mentoria/internal/app/system/auth"
)

// Routes mounts the enrollment routes. Typically:
// r.Mount("/mentorada-mentorias", enrollments.Routes(h))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Get("/my", h.ServeMy)
		pr.Get("/{id}", h.ServeGet)
		pr.Put("/{id}", h.HandleUpdate)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireAdmin)
		pr.Post("/", h.HandleCreate)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
