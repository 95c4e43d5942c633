// internal/app/system/cascade/cascade_test.go
package cascade_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/app/system/apperr"
	"github.com/institutojk/mentoria/internal/app/system/cascade"
	"github.com/institutojk/mentoria/internal/testutil"
)

// buildSubtree creates a mentee enrolled in a program with a full dependent
// subtree: sessions, tasks, an event, a financial record and installments.
func buildSubtree(t *testing.T, fx *testutil.Fixtures) (userID, programID, enrollmentID, recordID string) {
	t.Helper()
	ctx := context.Background()

	mentee := fx.CreateMentee(ctx, "Ana Silva", "ana@example.com")
	program := fx.CreateProgram(ctx, "Essência")
	enrollment := fx.CreateEnrollment(ctx, mentee.ID, program.ID)
	fx.CreateSession(ctx, enrollment.ID, 1)
	fx.CreateSession(ctx, enrollment.ID, 2)
	fx.CreateTask(ctx, enrollment.ID, "Escrever reflexão")
	fx.CreateEvent(ctx, enrollment.ID, time.Now().UTC().Add(24*time.Hour))
	record := fx.CreateFinancialRecord(ctx, enrollment.ID, 900, 3)
	due := time.Now().UTC()
	fx.CreateInstallment(ctx, record.ID, 1, 300, due)
	fx.CreateInstallment(ctx, record.ID, 2, 300, due.AddDate(0, 1, 0))
	fx.CreateInstallment(ctx, record.ID, 3, 300, due.AddDate(0, 2, 0))

	return mentee.ID, program.ID, enrollment.ID, record.ID
}

// assertSubtreeGone checks that nothing referencing the enrollment survives.
func assertSubtreeGone(t *testing.T, s store.Store, enrollmentID, recordID string) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.GetEnrollment(ctx, enrollmentID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("enrollment still present: %v", err)
	}
	if sessions, _ := s.SessionsByEnrollment(ctx, enrollmentID); len(sessions) != 0 {
		t.Errorf("expected no sessions, got %d", len(sessions))
	}
	if tasks, _ := s.TasksByEnrollment(ctx, enrollmentID); len(tasks) != 0 {
		t.Errorf("expected no tasks, got %d", len(tasks))
	}
	if events, _ := s.EventsByEnrollment(ctx, enrollmentID); len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
	if _, err := s.GetFinancialRecord(ctx, recordID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("financial record still present: %v", err)
	}
	if installments, _ := s.InstallmentsByRecord(ctx, recordID); len(installments) != 0 {
		t.Errorf("expected no installments, got %d", len(installments))
	}
}

func TestDeleteUser_RemovesSubtree(t *testing.T) {
	ctx := context.Background()
	fx := testutil.NewFixtures(t, testutil.NewMemStore())
	engine := cascade.NewEngine(fx.Store(), zap.NewNop())

	userID, programID, enrollmentID, recordID := buildSubtree(t, fx)
	admin := fx.CreateAdmin(ctx, "Jussara", "jussara@example.com")
	fx.CreateMessage(ctx, userID, userID, "Olá!")
	fx.CreateMessage(ctx, userID, admin.ID, "Bem-vinda!")
	product := fx.CreateProduct(ctx, "Curso Gravado")
	fx.CreateAssignment(ctx, userID, product.ID)

	if err := engine.DeleteUser(ctx, userID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}

	assertSubtreeGone(t, fx.Store(), enrollmentID, recordID)
	if _, err := fx.Store().GetUser(ctx, userID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("user still present: %v", err)
	}
	if msgs, _ := fx.Store().MessagesBetween(ctx, userID, admin.ID); len(msgs) != 0 {
		t.Errorf("expected no messages, got %d", len(msgs))
	}
	if assignments, _ := fx.Store().AssignmentsByUser(ctx, userID); len(assignments) != 0 {
		t.Errorf("expected no product assignments, got %d", len(assignments))
	}

	// The program is not part of the user's subtree.
	if _, err := fx.Store().GetProgram(ctx, programID); err != nil {
		t.Errorf("program should survive user deletion: %v", err)
	}
}

func TestDeleteProgram_RemovesAllEnrollments(t *testing.T) {
	ctx := context.Background()
	fx := testutil.NewFixtures(t, testutil.NewMemStore())
	engine := cascade.NewEngine(fx.Store(), zap.NewNop())

	program := fx.CreateProgram(ctx, "Essência")
	first := fx.CreateMentee(ctx, "Ana Silva", "ana@example.com")
	second := fx.CreateMentee(ctx, "Beatriz Costa", "bia@example.com")
	enrollmentA := fx.CreateEnrollment(ctx, first.ID, program.ID)
	enrollmentB := fx.CreateEnrollment(ctx, second.ID, program.ID)
	fx.CreateTask(ctx, enrollmentA.ID, "Tarefa A")
	fx.CreateTask(ctx, enrollmentB.ID, "Tarefa B")
	recordA := fx.CreateFinancialRecord(ctx, enrollmentA.ID, 500, 1)
	fx.CreateInstallment(ctx, recordA.ID, 1, 500, time.Now().UTC())

	if err := engine.DeleteProgram(ctx, program.ID); err != nil {
		t.Fatalf("DeleteProgram: %v", err)
	}

	assertSubtreeGone(t, fx.Store(), enrollmentA.ID, recordA.ID)
	if _, err := fx.Store().GetEnrollment(ctx, enrollmentB.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second enrollment still present: %v", err)
	}
	if _, err := fx.Store().GetProgram(ctx, program.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("program still present: %v", err)
	}

	// Users themselves survive a program cascade.
	if _, err := fx.Store().GetUser(ctx, first.ID); err != nil {
		t.Errorf("mentee should survive program deletion: %v", err)
	}
}

func TestDeleteEnrollment_LeavesRootsAlone(t *testing.T) {
	ctx := context.Background()
	fx := testutil.NewFixtures(t, testutil.NewMemStore())
	engine := cascade.NewEngine(fx.Store(), zap.NewNop())

	userID, programID, enrollmentID, recordID := buildSubtree(t, fx)

	if err := engine.DeleteEnrollment(ctx, enrollmentID); err != nil {
		t.Fatalf("DeleteEnrollment: %v", err)
	}

	assertSubtreeGone(t, fx.Store(), enrollmentID, recordID)
	if _, err := fx.Store().GetUser(ctx, userID); err != nil {
		t.Errorf("user should survive enrollment deletion: %v", err)
	}
	if _, err := fx.Store().GetProgram(ctx, programID); err != nil {
		t.Errorf("program should survive enrollment deletion: %v", err)
	}
}

func TestDeleteUser_SecondCallIsNotFound(t *testing.T) {
	ctx := context.Background()
	fx := testutil.NewFixtures(t, testutil.NewMemStore())
	engine := cascade.NewEngine(fx.Store(), zap.NewNop())

	userID, _, enrollmentID, recordID := buildSubtree(t, fx)

	if err := engine.DeleteUser(ctx, userID); err != nil {
		t.Fatalf("first DeleteUser: %v", err)
	}
	// The root is gone, so the cascade reports NotFound; every underlying
	// delete step would still tolerate the absent documents.
	err := engine.DeleteUser(ctx, userID)
	if !apperr.IsNotFound(err) {
		t.Fatalf("second DeleteUser: expected NotFound, got %v", err)
	}
	assertSubtreeGone(t, fx.Store(), enrollmentID, recordID)
}

func TestDeleteEnrollment_NoFinancialRecord(t *testing.T) {
	ctx := context.Background()
	fx := testutil.NewFixtures(t, testutil.NewMemStore())
	engine := cascade.NewEngine(fx.Store(), zap.NewNop())

	mentee := fx.CreateMentee(ctx, "Ana Silva", "ana@example.com")
	program := fx.CreateProgram(ctx, "Essência")
	enrollment := fx.CreateEnrollment(ctx, mentee.ID, program.ID)
	fx.CreateTask(ctx, enrollment.ID, "Tarefa")

	if err := engine.DeleteEnrollment(ctx, enrollment.ID); err != nil {
		t.Fatalf("DeleteEnrollment without billing: %v", err)
	}
	if _, err := fx.Store().GetEnrollment(ctx, enrollment.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("enrollment still present: %v", err)
	}
}
