// internal/app/features/finance/reports.go
package finance

import (
	"context"
	"net/http"

	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/app/system/httpjson"
	"github.com/institutojk/mentoria/internal/app/system/timeouts"
)

// ServeOverview handles GET /admin/financeiro-overview: one ledger row per
// financial record with mentee and program names joined in.
func (h *Handler) ServeOverview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	rows, err := h.Ledger.Overview(ctx)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, rows)
}

// ServeMonthlyRevenue handles GET /admin/receita-mensal: the sum paid so
// far in the current UTC month.
func (h *Handler) ServeMonthlyRevenue(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	revenue, err := h.Ledger.MonthlyRevenue(ctx, store.Now())
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]float64{"receita_mensal": revenue})
}

// ServeLifetimeRevenue handles GET /admin/receita-total: everything ever
// paid across all records.
func (h *Handler) ServeLifetimeRevenue(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	revenue, err := h.Ledger.LifetimeRevenue(ctx)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]float64{"receita_total": revenue})
}
