// internal/app/features/agenda/handler.go
//
// Package agenda handles the agendamentos routes: scheduling session slots
// on an enrollment's calendar and marking them held or cancelled.
package agenda

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/policy/ownership"
	"github.com/institutojk/mentoria/internal/app/store"
)

type Handler struct {
	Store  store.Store
	Log    *zap.Logger
	Policy *ownership.Evaluator

	validate *validator.Validate
}

func NewHandler(s store.Store, policy *ownership.Evaluator, logger *zap.Logger) *Handler {
	return &Handler{
		Store:    s,
		Log:      logger,
		Policy:   policy,
		validate: validator.New(),
	}
}
