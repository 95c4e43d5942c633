// internal/app/features/finance/routes.go
package finance

import (
	"github.com/go-chi/chi/v5"

	"github.com/institutojk/mentoria/internal/app/system/auth"
)

// Routes mounts the financial-record routes. Typically:
// r.Mount("/financeiro", finance.Routes(h))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Get("/mentoria/{enrollmentID}", h.ServeByEnrollment)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireAdmin)
		pr.Post("/", h.HandleCreateRecord)
		pr.Put("/{id}", h.HandleUpdateRecord)
		pr.Delete("/{id}", h.HandleDeleteRecord)
	})

	return r
}

// InstallmentRoutes mounts the parcela routes. Typically:
// r.Mount("/parcelas", finance.InstallmentRoutes(h))
func InstallmentRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Get("/financeiro/{recordID}", h.ServeInstallments)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireAdmin)
		pr.Post("/", h.HandleCreateInstallment)
		pr.Post("/add", h.HandleAppendInstallment)
		pr.Put("/{id}", h.HandleUpdateInstallment)
		pr.Delete("/{id}", h.HandleDeleteInstallment)
	})

	return r
}

// ReportRoutes mounts the admin revenue reports. Typically:
// r.Mount("/admin", finance.ReportRoutes(h))
func ReportRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireAdmin)

	r.Get("/financeiro-overview", h.ServeOverview)
	r.Get("/receita-mensal", h.ServeMonthlyRevenue)
	r.Get("/receita-total", h.ServeLifetimeRevenue)

	return r
}
