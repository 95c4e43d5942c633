// internal/app/features/authapi/routes.go
package authapi

import (
	"github.com/go-chi/chi/v5"

	"github.com/institutojk/mentoria/internal/app/system/auth"
)

// Routes mounts the auth endpoints. Typically: r.Mount("/auth", authapi.Routes(h))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.HandleRegister)
	r.Post("/login", h.HandleLogin)

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Get("/me", h.ServeMe)
	})

	return r
}
