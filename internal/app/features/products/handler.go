// internal/app/features/products/handler.go
//
// Package products handles the produtos and user-produtos routes: the
// standalone catalog and per-user grants.
package products

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/store"
)

type Handler struct {
	Store store.Store
	Log   *zap.Logger

	validate *validator.Validate
}

func NewHandler(s store.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Store:    s,
		Log:      logger,
		validate: validator.New(),
	}
}
