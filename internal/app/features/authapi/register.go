// internal/app/features/authapi/register.go
package authapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/app/system/auth"
	"github.com/institutojk/mentoria/internal/app/system/httpjson"
	"github.com/institutojk/mentoria/internal/app/system/mailer"
	"github.com/institutojk/mentoria/internal/app/system/normalize"
	"github.com/institutojk/mentoria/internal/app/system/timeouts"
	"github.com/institutojk/mentoria/internal/domain/models"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// HandleRegister creates a user account, sends the welcome email and
// returns the user without the password hash. A duplicate email is a 400,
// matching the original API contract rather than a 409.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	req.Email = normalize.Email(req.Email)
	req.Name = normalize.Name(req.Name)
	req.Role = normalize.Role(req.Role)

	if err := h.validate.Struct(req); err != nil {
		httpjson.Detail(w, http.StatusBadRequest, "Dados de cadastro inválidos")
		return
	}
	role := models.Role(req.Role)
	if !role.Valid() {
		httpjson.Detail(w, http.StatusBadRequest, "Papel inválido")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user := models.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		Role:         role,
		PasswordHash: hash,
		CreatedAt:    store.Now(),
	}
	if err := h.Store.InsertUser(ctx, &user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			httpjson.Detail(w, http.StatusBadRequest, "Email já cadastrado")
			return
		}
		httpjson.Error(w, h.Log, err)
		return
	}

	h.Log.Info("user registered",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)))

	// Welcome mail is best-effort: a relay hiccup must not fail signup.
	go func() {
		email := mailer.BuildWelcomeEmail(user.Email, mailer.WelcomeEmailData{Name: user.Name})
		if err := h.Mail.Send(email); err != nil {
			h.Log.Error("welcome email failed", zap.String("user_id", user.ID), zap.Error(err))
		}
	}()

	httpjson.Respond(w, http.StatusOK, user)
}
