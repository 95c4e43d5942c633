// internal/app/features/dashboard/handler.go
//
// Package dashboard serves the mentee home snapshot: active enrollment,
// progress, billing status, and unread messages in one call.
package dashboard

import (
	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/store"
)

type Handler struct {
	Store store.Store
	Log   *zap.Logger
}

func NewHandler(s store.Store, logger *zap.Logger) *Handler {
	return &Handler{Store: s, Log: logger}
}
