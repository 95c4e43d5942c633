// internal/app/features/finance/handler.go
//
// Package finance handles the financeiro and parcelas routes plus the
// admin revenue reports. Payment terms live on the financial record; the
// installment rows are the billing source of truth.
package finance

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/policy/ownership"
	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/app/system/ledger"
)

type Handler struct {
	Store  store.Store
	Log    *zap.Logger
	Policy *ownership.Evaluator
	Ledger *ledger.Aggregator

	validate *validator.Validate
}

func NewHandler(s store.Store, policy *ownership.Evaluator, agg *ledger.Aggregator, logger *zap.Logger) *Handler {
	return &Handler{
		Store:    s,
		Log:      logger,
		Policy:   policy,
		Ledger:   agg,
		validate: validator.New(),
	}
}
