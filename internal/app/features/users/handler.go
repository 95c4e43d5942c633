// internal/app/features/users/handler.go
package users

import (
	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/policy/ownership"
	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/app/system/cascade"
)

// Handler serves the user administration endpoints and the public
// "mentora" lookup.
type Handler struct {
	Store   store.Store
	Log     *zap.Logger
	Policy  *ownership.Evaluator
	Cascade *cascade.Engine
}

// NewHandler constructs the users Handler.
func NewHandler(s store.Store, policy *ownership.Evaluator, engine *cascade.Engine, logger *zap.Logger) *Handler {
	return &Handler{
		Store:   s,
		Log:     logger,
		Policy:  policy,
		Cascade: engine,
	}
}
