// internal/app/features/programs/handler.go
package programs

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/app/system/cascade"
)

// Handler serves the mentorship-program catalog ("mentorias").
type Handler struct {
	Store   store.Store
	Log     *zap.Logger
	Cascade *cascade.Engine

	validate *validator.Validate
}

// NewHandler constructs the programs Handler.
func NewHandler(s store.Store, engine *cascade.Engine, logger *zap.Logger) *Handler {
	return &Handler{
		Store:    s,
		Log:      logger,
		Cascade:  engine,
		validate: validator.New(),
	}
}
