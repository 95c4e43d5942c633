// internal/app/features/authapi/handler.go
package authapi

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/app/system/auth"
	"github.com/institutojk/mentoria/internal/app/system/mailer"
	"github.com/institutojk/mentoria/internal/app/system/ratelimit"
)

// Handler serves registration, login and the current-user endpoint.
type Handler struct {
	Store   store.Store
	Log     *zap.Logger
	Tokens  *auth.TokenManager
	Mail    mailer.Sender
	Limiter *ratelimit.LoginLimiter

	validate *validator.Validate
}

// NewHandler constructs the auth Handler.
func NewHandler(s store.Store, tokens *auth.TokenManager, mail mailer.Sender, limiter *ratelimit.LoginLimiter, logger *zap.Logger) *Handler {
	return &Handler{
		Store:    s,
		Log:      logger,
		Tokens:   tokens,
		Mail:     mail,
		Limiter:  limiter,
		validate: validator.New(),
	}
}
