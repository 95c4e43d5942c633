// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/app/store/mongostore"
	"github.com/institutojk/mentoria/internal/app/system/auth"
	"github.com/institutojk/mentoria/internal/app/system/normalize"
	"github.com/institutojk/mentoria/internal/domain/models"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. It
// creates the bootstrap admin (the mentora account) when one is configured
// and not present yet.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.AdminEmail == "" {
		return nil
	}
	return ensureBootstrapAdmin(ctx, mongostore.New(deps.MongoDatabase), appCfg, logger)
}

func ensureBootstrapAdmin(ctx context.Context, s store.Store, appCfg AppConfig, logger *zap.Logger) error {
	email := normalize.Email(appCfg.AdminEmail)

	existing, err := s.GetUserByEmail(ctx, email)
	if err == nil {
		if existing.Role != models.RoleAdmin {
			return fmt.Errorf("bootstrap admin %s exists with role %q", email, existing.Role)
		}
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("bootstrap admin lookup: %w", err)
	}

	hash, err := auth.HashPassword(appCfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("bootstrap admin password: %w", err)
	}
	admin := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         normalize.Name(appCfg.AdminName),
		Role:         models.RoleAdmin,
		PasswordHash: hash,
		CreatedAt:    store.Now(),
	}
	if err := s.InsertUser(ctx, &admin); err != nil {
		return fmt.Errorf("bootstrap admin create: %w", err)
	}

	logger.Info("bootstrap admin created", zap.String("email", email))
	return nil
}
