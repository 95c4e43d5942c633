// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/go-chi/chi/v5"

	"github.com/institutojk/mentoria/internal/app/system/auth"
)

// Routes mounts the dashboard route. Typically: r.Mount("/dashboard", dashboard.Routes(h))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)
	r.Get("/", h.ServeDashboard)
	return r
}
