// internal/app/features/finance/installments.go
package finance

import (
	"context"
	"errors"
	"net/http"
	"time"

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

type installmentRequest struct {
	RecordID string     `json:"financeiro_id" validate:"required"`
	Number   int        `json:"numero_parcela"`
	Amount   float64    `json:"valor" validate:"required,gt=0"`
	DueDate  time.Time  `json:"data_vencimento" validate:"required"`
	Status   string     `json:"status"`
	PaidDate *time.Time `json:"data_pagamento"`
}

func (req *installmentRequest) build(id string) (*models.Installment, error) {
	status := models.InstallmentStatus(req.Status)
	if req.Status == "" {
		status = models.InstallmentPending
	}
	p := &models.Installment{
		ID:        id,
		RecordID:  req.RecordID,
		Number:    req.Number,
		Amount:    req.Amount,
		DueDate:   req.DueDate,
		Status:    status,
		PaidDate:  req.PaidDate,
		CreatedAt: store.Now(),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// HandleCreateInstallment handles POST /parcelas (admin). The caller picks
// the installment number.
func (h *Handler) HandleCreateInstallment(w http.ResponseWriter, r *http.Request) {
	var req installmentRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if err := h.validate.Struct(req); err != nil || req.Number < 1 {
		httpjson.Detail(w, http.StatusBadRequest, "Dados da parcela inválidos")
		return
	}
	installment, err := req.build(uuid.NewString())
	if err != nil {
		httpjson.Detail(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.InsertInstallment(ctx, installment); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, installment)
}

// HandleAppendInstallment handles POST /parcelas/add (admin): like
// HandleCreateInstallment, but the next free installment number is assigned
// automatically.
func (h *Handler) HandleAppendInstallment(w http.ResponseWriter, r *http.Request) {
	var req installmentRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpjson.Detail(w, http.StatusBadRequest, "Dados da parcela inválidos")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Store.GetFinancialRecord(ctx, req.RecordID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpjson.Detail(w, http.StatusNotFound, "Informações financeiras não encontradas")
			return
		}
		httpjson.Error(w, h.Log, err)
		return
	}

	existing, err := h.Store.InstallmentsByRecord(ctx, req.RecordID)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	req.Number = 1
	for _, p := range existing {
		if p.Number >= req.Number {
			req.Number = p.Number + 1
		}
	}

	installment, err := req.build(uuid.NewString())
	if err != nil {
		httpjson.Detail(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Store.InsertInstallment(ctx, installment); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	h.Log.Info("installment appended",
		zap.String("financeiro_id", installment.RecordID),
		zap.Int("numero_parcela", installment.Number))
	httpjson.Respond(w, http.StatusOK, installment)
}

// ServeInstallments handles GET /parcelas/financeiro/{recordID} (owner or
// admin). Ownership is resolved through the record's enrollment chain.
func (h *Handler) ServeInstallments(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)
	recordID := chi.URLParam(r, "recordID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Policy.Decide(ctx, ownership.SubjectFor(user), ownership.KindFinancialRecord, recordID, ownership.ActionView); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	installments, err := h.Store.InstallmentsByRecord(ctx, recordID)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, installments)
}

// HandleUpdateInstallment handles PUT /parcelas/{id} (admin). Marking a
// parcela paid requires the payment date; reverting to pending clears it.
func (h *Handler) HandleUpdateInstallment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req installmentRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpjson.Detail(w, http.StatusBadRequest, "Dados da parcela inválidos")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	installment, err := h.Store.GetInstallment(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpjson.Detail(w, http.StatusNotFound, "Parcela não encontrada")
			return
		}
		httpjson.Error(w, h.Log, err)
		return
	}

	installment.RecordID = req.RecordID
	if req.Number > 0 {
		installment.Number = req.Number
	}
	installment.Amount = req.Amount
	installment.DueDate = req.DueDate
	if req.Status != "" {
		installment.Status = models.InstallmentStatus(req.Status)
	}
	installment.PaidDate = req.PaidDate

	if err := installment.Validate(); err != nil {
		httpjson.Detail(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Store.UpdateInstallment(ctx, installment); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, installment)
}

// HandleDeleteInstallment handles DELETE /parcelas/{id} (admin).
func (h *Handler) HandleDeleteInstallment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Store.GetInstallment(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpjson.Detail(w, http.StatusNotFound, "Parcela não encontrada")
			return
		}
		httpjson.Error(w, h.Log, err)
		return
	}
	if err := h.Store.DeleteInstallment(ctx, id); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "success"})
}
