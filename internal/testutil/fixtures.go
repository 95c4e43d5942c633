// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/domain/models"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	store store.Store
	t     *testing.T
}

// NewFixtures creates a new Fixtures instance backed by the given store.
func NewFixtures(t *testing.T, s store.Store) *Fixtures {
	t.Helper()
	return &Fixtures{store: s, t: t}
}

// Store returns the underlying store for direct access in tests.
func (f *Fixtures) Store() store.Store {
	return f.store
}

// CreateUser creates a test user with the given name, email and role.
func (f *Fixtures) CreateUser(ctx context.Context, name, email string, role models.Role) models.User {
	f.t.Helper()

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: "$2a$10$unusabletesthashunusabletesthashunusabletesth",
		CreatedAt:    store.Now(),
	}
	if err := f.store.InsertUser(ctx, &user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateAdmin creates a test admin user.
func (f *Fixtures) CreateAdmin(ctx context.Context, name, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, name, email, models.RoleAdmin)
}

// CreateMentee creates a test mentee user.
func (f *Fixtures) CreateMentee(ctx context.Context, name, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, name, email, models.RoleMentee)
}

// CreateProgram creates a test mentorship program.
func (f *Fixtures) CreateProgram(ctx context.Context, name string) models.Program {
	f.t.Helper()

	program := models.Program{
		ID:          uuid.NewString(),
		Name:        name,
		Description: "Test program description",
		CreatedAt:   store.Now(),
	}
	if err := f.store.InsertProgram(ctx, &program); err != nil {
		f.t.Fatalf("failed to create test program: %v", err)
	}
	return program
}

// CreateEnrollment creates an active enrollment linking a user to a program.
func (f *Fixtures) CreateEnrollment(ctx context.Context, userID, programID string) models.Enrollment {
	f.t.Helper()

	now := store.Now()
	enrollment := models.Enrollment{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProgramID: programID,
		StartDate: now,
		Status:    models.EnrollmentActive,
		CreatedAt: now,
	}
	if err := f.store.InsertEnrollment(ctx, &enrollment); err != nil {
		f.t.Fatalf("failed to create test enrollment: %v", err)
	}
	return enrollment
}

// CreateSession creates a numbered session under an enrollment.
func (f *Fixtures) CreateSession(ctx context.Context, enrollmentID string, number int) models.Session {
	f.t.Helper()

	now := store.Now()
	session := models.Session{
		ID:            uuid.NewString(),
		EnrollmentID:  enrollmentID,
		SessionNumber: number,
		Theme:         "Test theme",
		SessionDate:   now,
		CreatedAt:     now,
	}
	if err := f.store.InsertSession(ctx, &session); err != nil {
		f.t.Fatalf("failed to create test session: %v", err)
	}
	return session
}

// CreateTask creates a pending task under an enrollment.
func (f *Fixtures) CreateTask(ctx context.Context, enrollmentID, description string) models.Task {
	f.t.Helper()

	task := models.Task{
		ID:           uuid.NewString(),
		EnrollmentID: enrollmentID,
		Description:  description,
		Status:       models.TaskPending,
		CreatedAt:    store.Now(),
	}
	if err := f.store.InsertTask(ctx, &task); err != nil {
		f.t.Fatalf("failed to create test task: %v", err)
	}
	return task
}

// CreateEvent creates a scheduled event under an enrollment.
func (f *Fixtures) CreateEvent(ctx context.Context, enrollmentID string, at time.Time) models.ScheduledEvent {
	f.t.Helper()

	event := models.ScheduledEvent{
		ID:           uuid.NewString(),
		EnrollmentID: enrollmentID,
		EventDate:    at,
		Status:       models.EventScheduled,
		CreatedAt:    store.Now(),
	}
	if err := f.store.InsertEvent(ctx, &event); err != nil {
		f.t.Fatalf("failed to create test event: %v", err)
	}
	return event
}

// CreateMessage creates a message in a mentee's thread.
func (f *Fixtures) CreateMessage(ctx context.Context, menteeUserID, senderUserID, body string) models.Message {
	f.t.Helper()

	message := models.Message{
		ID:           uuid.NewString(),
		MenteeUserID: menteeUserID,
		SenderUserID: senderUserID,
		Body:         body,
		CreatedAt:    store.Now(),
	}
	if err := f.store.InsertMessage(ctx, &message); err != nil {
		f.t.Fatalf("failed to create test message: %v", err)
	}
	return message
}

// CreateFinancialRecord creates a financial record for an enrollment.
func (f *Fixtures) CreateFinancialRecord(ctx context.Context, enrollmentID string, total float64, installments int) models.FinancialRecord {
	f.t.Helper()

	record := models.FinancialRecord{
		ID:               uuid.NewString(),
		EnrollmentID:     enrollmentID,
		TotalAmount:      total,
		PaymentMethod:    models.PaymentPix,
		InstallmentCount: installments,
		CreatedAt:        store.Now(),
	}
	if err := f.store.InsertFinancialRecord(ctx, &record); err != nil {
		f.t.Fatalf("failed to create test financial record: %v", err)
	}
	return record
}

// CreateInstallment creates a pending installment on a financial record.
func (f *Fixtures) CreateInstallment(ctx context.Context, recordID string, number int, amount float64, due time.Time) models.Installment {
	f.t.Helper()

	installment := models.Installment{
		ID:        uuid.NewString(),
		RecordID:  recordID,
		Number:    number,
		Amount:    amount,
		DueDate:   due,
		Status:    models.InstallmentPending,
		CreatedAt: store.Now(),
	}
	if err := f.store.InsertInstallment(ctx, &installment); err != nil {
		f.t.Fatalf("failed to create test installment: %v", err)
	}
	return installment
}

// CreatePaidInstallment creates an installment already marked as paid.
func (f *Fixtures) CreatePaidInstallment(ctx context.Context, recordID string, number int, amount float64, paidAt time.Time) models.Installment {
	f.t.Helper()

	installment := models.Installment{
		ID:        uuid.NewString(),
		RecordID:  recordID,
		Number:    number,
		Amount:    amount,
		DueDate:   paidAt,
		Status:    models.InstallmentPaid,
		PaidDate:  &paidAt,
		CreatedAt: store.Now(),
	}
	if err := f.store.InsertInstallment(ctx, &installment); err != nil {
		f.t.Fatalf("failed to create paid test installment: %v", err)
	}
	return installment
}

// CreateProduct creates a test product.
func (f *Fixtures) CreateProduct(ctx context.Context, name string) models.Product {
	f.t.Helper()

	product := models.Product{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: store.Now(),
	}
	if err := f.store.InsertProduct(ctx, &product); err != nil {
		f.t.Fatalf("failed to create test product: %v", err)
	}
	return product
}

// CreateAssignment grants a product to a user.
func (f *Fixtures) CreateAssignment(ctx context.Context, userID, productID string) models.ProductAssignment {
	f.t.Helper()

	assignment := models.ProductAssignment{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: productID,
		CreatedAt: store.Now(),
	}
	if err := f.store.InsertAssignment(ctx, &assignment); err != nil {
		f.t.Fatalf("failed to create test product assignment: %v", err)
	}
	return assignment
}
