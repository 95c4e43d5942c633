// internal/app/store/store.go

// Package store defines the persistence contract consumed by the handlers
// and by the three core engines (ownership policy, cascade deletion, ledger).
//
// The production implementation lives in store/mongostore; tests use the
// in-memory implementation in internal/testutil. Only single-document
// atomicity is assumed: there are no transactions, and every delete treats
// an already-absent document as success so multi-step operations stay
// retry-safe.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/institutojk/mentoria/internal/domain/models"
)

var (
	// ErrNotFound is returned by Get/Update operations when no document
	// matches.
	ErrNotFound = errors.New("store: document not found")

	// ErrDuplicateEmail is returned when inserting a user whose email is
	// already registered.
	ErrDuplicateEmail = errors.New("store: a user with this email already exists")
)

// Users is the user collection surface.
type Users interface {
	InsertUser(ctx context.Context, u *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// FirstAdmin returns the oldest admin account (the "mentora").
	FirstAdmin(ctx context.Context) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// Programs is the mentorship-program collection surface.
type Programs interface {
	InsertProgram(ctx context.Context, p *models.Program) error
	GetProgram(ctx context.Context, id string) (*models.Program, error)
	ListPrograms(ctx context.Context) ([]models.Program, error)
	DeleteProgram(ctx context.Context, id string) error
}

// Enrollments is the enrollment collection surface.
type Enrollments interface {
	InsertEnrollment(ctx context.Context, e *models.Enrollment) error
	GetEnrollment(ctx context.Context, id string) (*models.Enrollment, error)
	UpdateEnrollment(ctx context.Context, e *models.Enrollment) error
	EnrollmentsByUser(ctx context.Context, userID string) ([]models.Enrollment, error)
	EnrollmentsByProgram(ctx context.Context, programID string) ([]models.Enrollment, error)
	DeleteEnrollment(ctx context.Context, id string) error
}

// Sessions is the session collection surface.
type Sessions interface {
	InsertSession(ctx context.Context, s *models.Session) error
	GetSession(ctx context.Context, id string) (*models.Session, error)
	// SessionsByEnrollment returns sessions ordered by session_number.
	SessionsByEnrollment(ctx context.Context, enrollmentID string) ([]models.Session, error)
	DeleteSessionsByEnrollment(ctx context.Context, enrollmentID string) error
}

// Tasks is the task collection surface.
type Tasks interface {
	InsertTask(ctx context.Context, t *models.Task) error
	GetTask(ctx context.Context, id string) (*models.Task, error)
	UpdateTask(ctx context.Context, t *models.Task) error
	TasksByEnrollment(ctx context.Context, enrollmentID string) ([]models.Task, error)
	DeleteTasksByEnrollment(ctx context.Context, enrollmentID string) error
}

// Events is the scheduled-event collection surface.
type Events interface {
	InsertEvent(ctx context.Context, ev *models.ScheduledEvent) error
	GetEvent(ctx context.Context, id string) (*models.ScheduledEvent, error)
	UpdateEvent(ctx context.Context, ev *models.ScheduledEvent) error
	// EventsByEnrollment returns events ordered by event_date.
	EventsByEnrollment(ctx context.Context, enrollmentID string) ([]models.ScheduledEvent, error)
	DeleteEvent(ctx context.Context, id string) error
	DeleteEventsByEnrollment(ctx context.Context, enrollmentID string) error
}

// Messages is the message collection surface.
type Messages interface {
	InsertMessage(ctx context.Context, m *models.Message) error
	// MessagesBetween returns all messages of the conversation between the
	// two users, oldest first.
	MessagesBetween(ctx context.Context, userA, userB string) ([]models.Message, error)
	MarkMessageRead(ctx context.Context, id string) error
	// UnreadCount counts unread messages addressed to the mentee.
	UnreadCount(ctx context.Context, menteeUserID string) (int64, error)
	// UnreadCountFromMentee counts unread messages the mentee sent into
	// their own conversation (what the mentor has not read yet).
	UnreadCountFromMentee(ctx context.Context, menteeUserID string) (int64, error)
	// DeleteMessagesWithUser removes every message where the user is either
	// party.
	DeleteMessagesWithUser(ctx context.Context, userID string) error
}

// Finance is the financial-record collection surface.
type Finance interface {
	InsertFinancialRecord(ctx context.Context, f *models.FinancialRecord) error
	GetFinancialRecord(ctx context.Context, id string) (*models.FinancialRecord, error)
	FinancialRecordByEnrollment(ctx context.Context, enrollmentID string) (*models.FinancialRecord, error)
	// ListFinancialRecords returns all records ordered by creation time.
	ListFinancialRecords(ctx context.Context) ([]models.FinancialRecord, error)
	UpdateFinancialRecord(ctx context.Context, f *models.FinancialRecord) error
	DeleteFinancialRecord(ctx context.Context, id string) error
}

// Installments is the installment collection surface.
type Installments interface {
	InsertInstallment(ctx context.Context, p *models.Installment) error
	GetInstallment(ctx context.Context, id string) (*models.Installment, error)
	UpdateInstallment(ctx context.Context, p *models.Installment) error
	// InstallmentsByRecord returns installments ordered by numero_parcela.
	InstallmentsByRecord(ctx context.Context, recordID string) ([]models.Installment, error)
	// PaidInstallments returns every installment with status paid.
	PaidInstallments(ctx context.Context) ([]models.Installment, error)
	DeleteInstallment(ctx context.Context, id string) error
	DeleteInstallmentsByRecord(ctx context.Context, recordID string) error
}

// Products is the product catalog and assignment surface.
type Products interface {
	InsertProduct(ctx context.Context, p *models.Product) error
	ListProducts(ctx context.Context) ([]models.Product, error)
	ProductsByIDs(ctx context.Context, ids []string) ([]models.Product, error)
	InsertAssignment(ctx context.Context, a *models.ProductAssignment) error
	AssignmentsByUser(ctx context.Context, userID string) ([]models.ProductAssignment, error)
	DeleteAssignmentsByUser(ctx context.Context, userID string) error
}

// Store is the full persistence surface.
type Store interface {
	Users
	Programs
	Enrollments
	Sessions
	Tasks
	Events
	Messages
	Finance
	Installments
	Products
}

// Now returns the current UTC time truncated to milliseconds, the precision
// Mongo stores for time.Time values. Using it for created_at keeps documents
// round-trippable in tests.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
