// internal/app/features/messages/handler.go
//
// Package messages handles the mensagens routes: the mentor/mentee chat,
// read tracking, and unread counters.
package messages

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
