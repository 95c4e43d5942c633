// internal/app/features/sendmail/handler.go
//
// Package sendmail handles POST /send-email: ad-hoc HTML email the mentor
// composes in the back office. The markup is sanitized before it leaves.
package sendmail

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/system/mailer"
)

type Handler struct {
	Log  *zap.Logger
	Mail mailer.Sender

	validate *validator.Validate
}

func NewHandler(mail mailer.Sender, logger *zap.Logger) *Handler {
	return &Handler{
		Log:      logger,
		Mail:     mail,
		validate: validator.New(),
	}
}
