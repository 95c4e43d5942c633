// internal/app/features/finance/records.go
package finance

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/policy/ownership"
	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/app/system/auth"
	"github.com/institutojk/mentoria/internal/app/system/httpjson"
	"github.com/institutojk/mentoria/internal/app/system/timeouts"
	"github.com/institutojk/mentoria/internal/domain/models"
)

type recordRequest struct {
	EnrollmentID     string  `json:"mentorada_mentoria_id" validate:"required"`
	TotalAmount      float64 `json:"valor_total" validate:"required,gt=0"`
	PaymentMethod    string  `json:"forma_pagamento" validate:"required"`
	InstallmentCount int     `json:"numero_parcelas" validate:"required,min=1"`
	Notes            string  `json:"observacoes"`
}

// HandleCreateRecord handles POST /financeiro (admin).
func (h *Handler) HandleCreateRecord(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpjson.Detail(w, http.StatusBadRequest, "Dados financeiros inválidos")
		return
	}
	method := models.PaymentMethod(req.PaymentMethod)
	if !method.Valid() {
		httpjson.Detail(w, http.StatusBadRequest, "Forma de pagamento inválida")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	record := models.FinancialRecord{
		ID:               uuid.NewString(),
		EnrollmentID:     req.EnrollmentID,
		TotalAmount:      req.TotalAmount,
		PaymentMethod:    method,
		InstallmentCount: req.InstallmentCount,
		Notes:            req.Notes,
		CreatedAt:        store.Now(),
	}
	if err := h.Store.InsertFinancialRecord(ctx, &record); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	h.Log.Info("financial record created",
		zap.String("financeiro_id", record.ID),
		zap.String("mentorada_mentoria_id", record.EnrollmentID),
		zap.Float64("valor_total", record.TotalAmount))
	httpjson.Respond(w, http.StatusOK, record)
}

// ServeByEnrollment handles GET /financeiro/mentoria/{enrollmentID} (owner
// or admin). The enrollment is authorized first, so a mentee can never
// learn whether another mentee has billing configured.
func (h *Handler) ServeByEnrollment(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)
	enrollmentID := chi.URLParam(r, "enrollmentID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Policy.Decide(ctx, ownership.SubjectFor(user), ownership.KindEnrollment, enrollmentID, ownership.ActionView); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	record, err := h.Store.FinancialRecordByEnrollment(ctx, enrollmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpjson.Detail(w, http.StatusNotFound, "Informações financeiras não encontradas")
			return
		}
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, record)
}

// HandleUpdateRecord handles PUT /financeiro/{id} (admin).
func (h *Handler) HandleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req recordRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpjson.Detail(w, http.StatusBadRequest, "Dados financeiros inválidos")
		return
	}
	method := models.PaymentMethod(req.PaymentMethod)
	if !method.Valid() {
		httpjson.Detail(w, http.StatusBadRequest, "Forma de pagamento inválida")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	record, err := h.Store.GetFinancialRecord(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpjson.Detail(w, http.StatusNotFound, "Informações financeiras não encontradas")
			return
		}
		httpjson.Error(w, h.Log, err)
		return
	}

	record.EnrollmentID = req.EnrollmentID
	record.TotalAmount = req.TotalAmount
	record.PaymentMethod = method
	record.InstallmentCount = req.InstallmentCount
	record.Notes = req.Notes

	if err := h.Store.UpdateFinancialRecord(ctx, record); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, record)
}

// HandleDeleteRecord handles DELETE /financeiro/{id} (admin). Installments
// go first so a failure never leaves orphaned parcelas.
func (h *Handler) HandleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if _, err := h.Store.GetFinancialRecord(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpjson.Detail(w, http.StatusNotFound, "Informações financeiras não encontradas")
			return
		}
		httpjson.Error(w, h.Log, err)
		return
	}
	if err := h.Store.DeleteInstallmentsByRecord(ctx, id); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if err := h.Store.DeleteFinancialRecord(ctx, id); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	h.Log.Info("financial record deleted", zap.String("financeiro_id", id))
	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "success"})
}
