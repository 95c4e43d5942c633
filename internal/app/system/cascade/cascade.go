// internal/app/system/cascade/cascade.go
//
// Package cascade removes a root entity together with its dependent subtree.
//
// Deletion runs bottom-up so no step can orphan documents below one it has
// already removed: installments before their financial record, the record
// and the other enrollment children before the enrollment, enrollments
// before their user or program. Every step is idempotent (deleting what is
// already gone succeeds), so a cascade interrupted by a store error can be
// retried as a whole and converges to the same end state. There is no
// rollback and no multi-document transaction.
package cascade

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/app/system/apperr"
)

// StepError reports which cascade step failed. Completed steps are not
// rolled back; retrying the whole cascade finishes the remaining work.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("cascade step %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Engine executes cascading deletions. Authorization happens before the
// engine is invoked; it assumes the caller may delete the root.
type Engine struct {
	store store.Store
	log   *zap.Logger
}

// NewEngine creates an Engine backed by the given store.
func NewEngine(s store.Store, logger *zap.Logger) *Engine {
	return &Engine{store: s, log: logger}
}

// DeleteUser removes a user and everything that hangs off them: every
// enrollment subtree, all messages where the user is either party, and all
// product assignments. Returns NotFound when the user does not exist.
func (e *Engine) DeleteUser(ctx context.Context, userID string) error {
	if _, err := e.store.GetUser(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("Usuária não encontrada")
		}
		return err
	}

	enrollments, err := e.store.EnrollmentsByUser(ctx, userID)
	if err != nil {
		return &StepError{Step: "list enrollments", Err: err}
	}
	for _, enrollment := range enrollments {
		if err := e.deleteEnrollmentSubtree(ctx, enrollment.ID); err != nil {
			return err
		}
	}

	if err := e.store.DeleteMessagesWithUser(ctx, userID); err != nil {
		return &StepError{Step: "delete messages", Err: err}
	}
	if err := e.store.DeleteAssignmentsByUser(ctx, userID); err != nil {
		return &StepError{Step: "delete product assignments", Err: err}
	}
	if err := e.store.DeleteUser(ctx, userID); err != nil {
		return &StepError{Step: "delete user", Err: err}
	}

	e.log.Info("user deleted",
		zap.String("user_id", userID),
		zap.Int("enrollments", len(enrollments)))
	return nil
}

// DeleteProgram removes a program and the subtree of every enrollment that
// references it. Returns NotFound when the program does not exist.
func (e *Engine) DeleteProgram(ctx context.Context, programID string) error {
	if _, err := e.store.GetProgram(ctx, programID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("Mentoria não encontrada")
		}
		return err
	}

	enrollments, err := e.store.EnrollmentsByProgram(ctx, programID)
	if err != nil {
		return &StepError{Step: "list enrollments", Err: err}
	}
	for _, enrollment := range enrollments {
		if err := e.deleteEnrollmentSubtree(ctx, enrollment.ID); err != nil {
			return err
		}
	}

	if err := e.store.DeleteProgram(ctx, programID); err != nil {
		return &StepError{Step: "delete program", Err: err}
	}

	e.log.Info("program deleted",
		zap.String("mentoria_id", programID),
		zap.Int("enrollments", len(enrollments)))
	return nil
}

// DeleteEnrollment removes a single enrollment and its subtree. Returns
// NotFound when the enrollment does not exist.
func (e *Engine) DeleteEnrollment(ctx context.Context, enrollmentID string) error {
	if _, err := e.store.GetEnrollment(ctx, enrollmentID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("Mentoria não encontrada")
		}
		return err
	}
	if err := e.deleteEnrollmentSubtree(ctx, enrollmentID); err != nil {
		return err
	}
	e.log.Info("enrollment deleted", zap.String("mentorada_mentoria_id", enrollmentID))
	return nil
}

// deleteEnrollmentSubtree removes everything referencing the enrollment and
// then the enrollment itself. Bottom-up: installments, financial record,
// sessions, tasks, scheduled events, enrollment.
func (e *Engine) deleteEnrollmentSubtree(ctx context.Context, enrollmentID string) error {
	record, err := e.store.FinancialRecordByEnrollment(ctx, enrollmentID)
	switch {
	case err == nil:
		if err := e.store.DeleteInstallmentsByRecord(ctx, record.ID); err != nil {
			return &StepError{Step: "delete installments", Err: err}
		}
		if err := e.store.DeleteFinancialRecord(ctx, record.ID); err != nil {
			return &StepError{Step: "delete financial record", Err: err}
		}
	case errors.Is(err, store.ErrNotFound):
		// No billing configured for this enrollment.
	default:
		return &StepError{Step: "load financial record", Err: err}
	}

	if err := e.store.DeleteSessionsByEnrollment(ctx, enrollmentID); err != nil {
		return &StepError{Step: "delete sessions", Err: err}
	}
	if err := e.store.DeleteTasksByEnrollment(ctx, enrollmentID); err != nil {
		return &StepError{Step: "delete tasks", Err: err}
	}
	if err := e.store.DeleteEventsByEnrollment(ctx, enrollmentID); err != nil {
		return &StepError{Step: "delete events", Err: err}
	}
	if err := e.store.DeleteEnrollment(ctx, enrollmentID); err != nil {
		return &StepError{Step: "delete enrollment", Err: err}
	}

	e.log.Debug("enrollment subtree removed", zap.String("mentorada_mentoria_id", enrollmentID))
	return nil
}
