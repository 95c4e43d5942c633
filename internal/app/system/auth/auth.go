// internal/app/system/auth/auth.go
//
// Package auth authenticates API requests with bearer tokens.
//
// Authenticate parses the Authorization header, verifies the token and
// loads the user from the store into the request context. Handlers read
// the user back with CurrentUser. RequireSignedIn and RequireAdmin gate
// routes on top of that.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/app/system/httpjson"
	"github.com/institutojk/mentoria/internal/domain/models"
)

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the authenticated user and a "found?" flag.
func CurrentUser(r *http.Request) (*models.User, bool) {
	u, ok := r.Context().Value(currentUserKey).(*models.User)
	return u, ok
}

// WithTestUser injects a user into the request context. Test helper only;
// production requests go through Authenticate.
func WithTestUser(r *http.Request, u *models.User) *http.Request {
	return withUser(r, u)
}

func withUser(r *http.Request, u *models.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// Authenticate verifies the bearer token and loads the user into context.
// Requests without an Authorization header pass through unauthenticated;
// RequireSignedIn rejects them later if the route needs a user. A valid
// token whose user no longer exists is a 404, matching the API contract.
func Authenticate(tm *TokenManager, users store.Users, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := tm.Verify(token)
			if err != nil {
				detail := "Token inválido"
				if errors.Is(err, ErrTokenExpired) {
					detail = "Token expirado"
				}
				httpjson.Detail(w, http.StatusUnauthorized, detail)
				return
			}

			user, err := users.GetUser(r.Context(), userID)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					httpjson.Detail(w, http.StatusNotFound, "Usuária não encontrada")
					return
				}
				logger.Error("auth: load user", zap.Error(err))
				httpjson.Detail(w, http.StatusInternalServerError, "Erro interno do servidor")
				return
			}

			next.ServeHTTP(w, withUser(r, user))
		})
	}
}

// RequireSignedIn ensures there is a user in context (set by Authenticate).
func RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); !ok {
			httpjson.Detail(w, http.StatusUnauthorized, "Não autenticado")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin ensures the user in context has the admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := CurrentUser(r)
		if !ok {
			httpjson.Detail(w, http.StatusUnauthorized, "Não autenticado")
			return
		}
		if u.Role != models.RoleAdmin {
			httpjson.Detail(w, http.StatusForbidden, "Acesso negado. Apenas administradoras.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if h == "" {
		return "", false
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
