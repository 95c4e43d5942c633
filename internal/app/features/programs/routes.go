// internal/app/features/programs/routes.go
package programs

import (
	"github.com/go-chi/chi/v5"

	"github.com/institutojk/mentoria/internal/app/system/auth"
)

// Routes mounts the program routes. Typically: r.Mount("/mentorias", programs.Routes(h))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Get("/", h.ServeList)
		pr.Get("/{id}", h.ServeGet)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireAdmin)
		pr.Post("/", h.HandleCreate)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
