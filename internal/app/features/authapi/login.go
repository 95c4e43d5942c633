// internal/app/features/authapi/login.go
package authapi

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/app/system/auth"
	"github.com/institutojk/mentoria/internal/app/system/httpjson"
	"github.com/institutojk/mentoria/internal/app/system/normalize"
	"github.com/institutojk/mentoria/internal/app/system/timeouts"
	"github.com/institutojk/mentoria/internal/domain/models"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// HandleLogin checks credentials and returns a bearer token with the user.
// Wrong email and wrong password are indistinguishable on purpose.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	req.Email = normalize.Email(req.Email)

	if err := h.validate.Struct(req); err != nil {
		httpjson.Detail(w, http.StatusBadRequest, "Dados de login inválidos")
		return
	}

	if allowed, reason := h.Limiter.Check(r, req.Email); !allowed {
		httpjson.Detail(w, http.StatusTooManyRequests, reason)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpjson.Detail(w, http.StatusUnauthorized, "Email ou senha incorretos")
			return
		}
		httpjson.Error(w, h.Log, err)
		return
	}
	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		httpjson.Detail(w, http.StatusUnauthorized, "Email ou senha incorretos")
		return
	}

	token, err := h.Tokens.Issue(user.ID)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	h.Limiter.ResetEmail(req.Email)

	h.Log.Info("user logged in", zap.String("user_id", user.ID))
	httpjson.Respond(w, http.StatusOK, loginResponse{Token: token, User: *user})
}
