// internal/app/features/enrollments/handler.go
//
// Package enrollments handles the mentorada-mentorias routes: enrolling a
// mentee in a program, the mentee's own enrollment list, and the per-
// enrollment detail/update/delete operations.
package enrollments

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/policy/ownership"
	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/app/system/cascade"
	"github.com/institutojk/mentoria/internal/app/system/mailer"
)

type Handler struct {
	Store   store.Store
	Log     *zap.Logger
	Policy  *ownership.Evaluator
	Cascade *cascade.Engine
	Mail    mailer.Sender

	validate *validator.Validate
}

func NewHandler(s store.Store, policy *ownership.Evaluator, engine *cascade.Engine, mail mailer.Sender, logger *zap.Logger) *Handler {
	return &Handler{
		Store:    s,
		Log:      logger,
		Policy:   policy,
		Cascade:  engine,
		Mail:     mail,
		validate: validator.New(),
	}
}
