// Package ownership decides whether a subject may act on a resource.
//
// Authorization rules:
//   - Admins are permitted everything, with one exception: an admin user can
//     never be the target of a delete
//   - Everyone else must own the resource, resolved by walking the reference
//     chain up to the owning user (installment → financial record →
//     enrollment → user)
//   - Existence checks precede permission checks at every hop, so a missing
//     resource or a broken chain link is always NotFound, never Forbidden
//
// The route middleware RequireAdmin handles role enforcement for admin-only
// endpoints; the evaluator covers the owner-or-admin routes.
package ownership

import (
	"context"
	"errors"
	"fmt"

	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/app/system/apperr"
	"github.com/institutojk/mentoria/internal/domain/models"
)

// Kind names a resource type the evaluator can resolve.
type Kind string

const (
	KindUser            Kind = "user"
	KindProgram         Kind = "program"
	KindEnrollment      Kind = "enrollment"
	KindSession         Kind = "session"
	KindTask            Kind = "task"
	KindEvent           Kind = "event"
	KindFinancialRecord Kind = "financial_record"
	KindInstallment     Kind = "installment"
)

// Action is what the subject wants to do with the resource.
type Action string

const (
	ActionView   Action = "view"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Subject is the authenticated identity asking for access.
type Subject struct {
	ID   string
	Role models.Role
}

// SubjectFor builds a Subject from an authenticated user.
func SubjectFor(u *models.User) Subject {
	return Subject{ID: u.ID, Role: u.Role}
}

// Evaluator resolves ownership chains against the store. It holds no state
// between calls and performs reads only.
type Evaluator struct {
	store store.Store
}

// NewEvaluator creates an Evaluator backed by the given store.
func NewEvaluator(s store.Store) *Evaluator {
	return &Evaluator{store: s}
}

// Decide returns nil when the subject may perform the action on the
// resource, or a typed error: NotFound when the resource or any link in its
// ownership chain is absent, Forbidden when it exists but the subject lacks
// rights.
func (e *Evaluator) Decide(ctx context.Context, sub Subject, kind Kind, id string, action Action) error {
	switch kind {
	case KindUser:
		return e.decideUser(ctx, sub, id, action)
	case KindProgram:
		return e.decideProgram(ctx, sub, id, action)
	case KindEnrollment, KindSession, KindTask, KindEvent, KindFinancialRecord, KindInstallment:
		return e.decideOwned(ctx, sub, kind, id)
	}
	return fmt.Errorf("ownership: unknown resource kind %q", kind)
}

// DecideMessageCreate enforces self-attribution: a message may only be sent
// under the caller's own identity. There is no admin bypass here.
func (e *Evaluator) DecideMessageCreate(sub Subject, senderUserID string) error {
	if senderUserID != sub.ID {
		return apperr.Forbidden("Você só pode enviar mensagens em seu próprio nome")
	}
	return nil
}

// decideUser covers actions targeting a user record. Mutating or deleting a
// user is admin-only regardless of ownership, and an admin user is never a
// valid delete target. The delete protection is the one place an admin
// subject still needs the target loaded.
func (e *Evaluator) decideUser(ctx context.Context, sub Subject, id string, action Action) error {
	if sub.Role == models.RoleAdmin {
		if action != ActionDelete {
			return nil
		}
		target, err := e.store.GetUser(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return apperr.NotFound("Usuária não encontrada")
			}
			return err
		}
		if target.Role == models.RoleAdmin {
			return apperr.Forbidden("Não é possível excluir uma administradora")
		}
		return nil
	}

	// Non-admin path: existence before permission.
	if _, err := e.store.GetUser(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("Usuária não encontrada")
		}
		return err
	}
	if action == ActionView && sub.ID == id {
		return nil
	}
	return apperr.Forbidden("Acesso negado. Apenas administradoras.")
}

// decideProgram covers programs, which have no owner: reads are open to any
// authenticated subject, mutations are admin-only.
func (e *Evaluator) decideProgram(ctx context.Context, sub Subject, id string, action Action) error {
	if sub.Role == models.RoleAdmin {
		return nil
	}
	if _, err := e.store.GetProgram(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("Mentoria não encontrada")
		}
		return err
	}
	if action == ActionView {
		return nil
	}
	return apperr.Forbidden("Acesso negado. Apenas administradoras.")
}

// decideOwned covers the enrollment-rooted chain. Admins bypass ownership
// resolution entirely; everyone else must resolve to themselves.
func (e *Evaluator) decideOwned(ctx context.Context, sub Subject, kind Kind, id string) error {
	if sub.Role == models.RoleAdmin {
		return nil
	}
	ownerID, err := e.resolveOwner(ctx, kind, id)
	if err != nil {
		return err
	}
	if ownerID != sub.ID {
		return apperr.Forbidden("Acesso negado")
	}
	return nil
}

// resolveOwner walks the chain from the resource up to the owning user id,
// returning NotFound for the first absent link.
func (e *Evaluator) resolveOwner(ctx context.Context, kind Kind, id string) (string, error) {
	switch kind {
	case KindEnrollment:
		enrollment, err := e.store.GetEnrollment(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return "", apperr.NotFound("Mentoria não encontrada")
			}
			return "", err
		}
		return enrollment.UserID, nil

	case KindSession:
		session, err := e.store.GetSession(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return "", apperr.NotFound("Sessão não encontrada")
			}
			return "", err
		}
		return e.resolveOwner(ctx, KindEnrollment, session.EnrollmentID)

	case KindTask:
		task, err := e.store.GetTask(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return "", apperr.NotFound("Tarefa não encontrada")
			}
			return "", err
		}
		return e.resolveOwner(ctx, KindEnrollment, task.EnrollmentID)

	case KindEvent:
		event, err := e.store.GetEvent(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return "", apperr.NotFound("Agendamento não encontrado")
			}
			return "", err
		}
		return e.resolveOwner(ctx, KindEnrollment, event.EnrollmentID)

	case KindFinancialRecord:
		record, err := e.store.GetFinancialRecord(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return "", apperr.NotFound("Informações financeiras não encontradas")
			}
			return "", err
		}
		return e.resolveOwner(ctx, KindEnrollment, record.EnrollmentID)

	case KindInstallment:
		installment, err := e.store.GetInstallment(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return "", apperr.NotFound("Parcela não encontrada")
			}
			return "", err
		}
		return e.resolveOwner(ctx, KindFinancialRecord, installment.RecordID)
	}
	return "", fmt.Errorf("ownership: kind %q has no owner chain", kind)
}
