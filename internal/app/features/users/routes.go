// internal/app/features/users/routes.go
package users

import (
	"github.com/go-chi/chi/v5"

	"github.com/institutojk/mentoria/internal/app/system/auth"
)

// Routes mounts the user admin routes. Typically: r.Mount("/users", users.Routes(h))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireAdmin)
		pr.Get("/", h.ServeList)
		pr.Get("/{id}", h.ServeGet)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}

// MentoraRoutes mounts GET /mentora, open to any authenticated user.
func MentoraRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)
	r.Get("/", h.ServeMentora)
	return r
}
