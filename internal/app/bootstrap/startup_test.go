// internal/app/bootstrap/startup_test.go
package bootstrap

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/system/auth"
	"github.com/institutojk/mentoria/internal/domain/models"
	"github.com/institutojk/mentoria/internal/testutil"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func TestEnsureBootstrapAdmin_CreatesNew(t *testing.T) {
	ctx := context.Background()
	ms := testutil.NewMemStore()

	cfg := AppConfig{
		AdminEmail:    "Mentora@Test.com",
		AdminName:     "Jussara Kaisel",
		AdminPassword: "super-secret",
	}
	if err := ensureBootstrapAdmin(ctx, ms, cfg, testLogger()); err != nil {
		t.Fatalf("ensureBootstrapAdmin failed: %v", err)
	}

	user, err := ms.GetUserByEmail(ctx, "mentora@test.com")
	if err != nil {
		t.Fatalf("failed to find created user: %v", err)
	}
	if user.Role != models.RoleAdmin {
		t.Errorf("expected role admin, got %q", user.Role)
	}
	if !auth.CheckPassword("super-secret", user.PasswordHash) {
		t.Error("password does not verify")
	}
}

func TestEnsureBootstrapAdmin_ExistingAdminIsNoop(t *testing.T) {
	ctx := context.Background()
	ms := testutil.NewMemStore()
	fx := testutil.NewFixtures(t, ms)
	existing := fx.CreateAdmin(ctx, "Jussara", "mentora@test.com")

	cfg := AppConfig{
		AdminEmail:    "mentora@test.com",
		AdminName:     "Other Name",
		AdminPassword: "irrelevant",
	}
	if err := ensureBootstrapAdmin(ctx, ms, cfg, testLogger()); err != nil {
		t.Fatalf("ensureBootstrapAdmin failed: %v", err)
	}

	user, err := ms.GetUserByEmail(ctx, "mentora@test.com")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if user.ID != existing.ID || user.Name != "Jussara" {
		t.Errorf("existing admin was modified: %+v", user)
	}
}

func TestEnsureBootstrapAdmin_MenteeConflict(t *testing.T) {
	ctx := context.Background()
	ms := testutil.NewMemStore()
	fx := testutil.NewFixtures(t, ms)
	fx.CreateMentee(ctx, "Ana", "mentora@test.com")

	cfg := AppConfig{
		AdminEmail:    "mentora@test.com",
		AdminPassword: "x",
	}
	if err := ensureBootstrapAdmin(ctx, ms, cfg, testLogger()); err == nil {
		t.Fatal("expected error when email belongs to a mentee")
	}
}
