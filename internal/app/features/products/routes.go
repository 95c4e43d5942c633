// internal/app/features/products/routes.go
package products

import (
	"github.com/go-chi/chi/v5"

	"github.com/institutojk/mentoria/internal/app/system/auth"
)

// Routes mounts the product catalog routes. Typically:
// r.Mount("/produtos", products.Routes(h))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Get("/", h.ServeList)
		pr.Get("/my", h.ServeMy)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireAdmin)
		pr.Post("/", h.HandleCreate)
	})

	return r
}

// AssignmentRoutes mounts the user-produtos routes. Typically:
// r.Mount("/user-produtos", products.AssignmentRoutes(h))
func AssignmentRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireAdmin)
	r.Post("/", h.HandleAssign)
	return r
}
