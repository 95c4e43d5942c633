// internal/testutil/memstore.go
package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/domain/models"
)

// MemStore is an in-memory store.Store used by tests in place of Mongo.
// It mirrors the production semantics the engines rely on: Get/Update return
// store.ErrNotFound for missing documents, deletes of absent documents
// succeed, and list methods return the same sort orders as mongostore.
type MemStore struct {
	mu sync.Mutex

	userSeq map[string]int
	nextSeq int

	users        map[string]models.User
	programs     map[string]models.Program
	enrollments  map[string]models.Enrollment
	sessions     map[string]models.Session
	tasks        map[string]models.Task
	events       map[string]models.ScheduledEvent
	messages     map[string]models.Message
	finance      map[string]models.FinancialRecord
	installments map[string]models.Installment
	products     map[string]models.Product
	assignments  map[string]models.ProductAssignment
}

var _ store.Store = (*MemStore)(nil)

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		userSeq:      make(map[string]int),
		users:        make(map[string]models.User),
		programs:     make(map[string]models.Program),
		enrollments:  make(map[string]models.Enrollment),
		sessions:     make(map[string]models.Session),
		tasks:        make(map[string]models.Task),
		events:       make(map[string]models.ScheduledEvent),
		messages:     make(map[string]models.Message),
		finance:      make(map[string]models.FinancialRecord),
		installments: make(map[string]models.Installment),
		products:     make(map[string]models.Product),
		assignments:  make(map[string]models.ProductAssignment),
	}
}

/* users */

func (m *MemStore) InsertUser(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return store.ErrDuplicateEmail
		}
	}
	m.users[u.ID] = *u
	m.userSeq[u.ID] = m.nextSeq
	m.nextSeq++
	return nil
}

func (m *MemStore) GetUser(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (m *MemStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *MemStore) FirstAdmin(_ context.Context) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var admins []models.User
	for _, u := range m.users {
		if u.Role == models.RoleAdmin {
			admins = append(admins, u)
		}
	}
	if len(admins) == 0 {
		return nil, store.ErrNotFound
	}
	// Insertion order breaks created_at ties, which land in the same
	// millisecond when fixtures create several users back to back.
	sort.Slice(admins, func(i, j int) bool {
		if admins[i].CreatedAt.Equal(admins[j].CreatedAt) {
			return m.userSeq[admins[i].ID] < m.userSeq[admins[j].ID]
		}
		return admins[i].CreatedAt.Before(admins[j].CreatedAt)
	})
	return &admins[0], nil
}

func (m *MemStore) ListUsers(_ context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	users := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	return users, nil
}

func (m *MemStore) DeleteUser(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
	return nil
}

/* programs */

func (m *MemStore) InsertProgram(_ context.Context, p *models.Program) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.programs[p.ID] = *p
	return nil
}

func (m *MemStore) GetProgram(_ context.Context, id string) (*models.Program, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.programs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (m *MemStore) ListPrograms(_ context.Context) ([]models.Program, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	programs := make([]models.Program, 0, len(m.programs))
	for _, p := range m.programs {
		programs = append(programs, p)
	}
	sort.Slice(programs, func(i, j int) bool { return programs[i].CreatedAt.Before(programs[j].CreatedAt) })
	return programs, nil
}

func (m *MemStore) DeleteProgram(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.programs, id)
	return nil
}

/* enrollments */

func (m *MemStore) InsertEnrollment(_ context.Context, e *models.Enrollment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enrollments[e.ID] = *e
	return nil
}

func (m *MemStore) GetEnrollment(_ context.Context, id string) (*models.Enrollment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.enrollments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &e, nil
}

func (m *MemStore) UpdateEnrollment(_ context.Context, e *models.Enrollment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.enrollments[e.ID]; !ok {
		return store.ErrNotFound
	}
	m.enrollments[e.ID] = *e
	return nil
}

func (m *MemStore) EnrollmentsByUser(_ context.Context, userID string) ([]models.Enrollment, error) {
	return m.filterEnrollments(func(e models.Enrollment) bool { return e.UserID == userID })
}

func (m *MemStore) EnrollmentsByProgram(_ context.Context, programID string) ([]models.Enrollment, error) {
	return m.filterEnrollments(func(e models.Enrollment) bool { return e.ProgramID == programID })
}

func (m *MemStore) filterEnrollments(keep func(models.Enrollment) bool) ([]models.Enrollment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Enrollment
	for _, e := range m.enrollments {
		if keep(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *MemStore) DeleteEnrollment(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.enrollments, id)
	return nil
}

/* sessions */

func (m *MemStore) InsertSession(_ context.Context, s *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = *s
	return nil
}

func (m *MemStore) GetSession(_ context.Context, id string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &s, nil
}

func (m *MemStore) SessionsByEnrollment(_ context.Context, enrollmentID string) ([]models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Session
	for _, s := range m.sessions {
		if s.EnrollmentID == enrollmentID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SessionNumber < out[j].SessionNumber })
	return out, nil
}

func (m *MemStore) DeleteSessionsByEnrollment(_ context.Context, enrollmentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		if s.EnrollmentID == enrollmentID {
			delete(m.sessions, id)
		}
	}
	return nil
}

/* tasks */

func (m *MemStore) InsertTask(_ context.Context, t *models.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks[t.ID] = *t
	return nil
}

func (m *MemStore) GetTask(_ context.Context, id string) (*models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &t, nil
}

func (m *MemStore) UpdateTask(_ context.Context, t *models.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tasks[t.ID]; !ok {
		return store.ErrNotFound
	}
	m.tasks[t.ID] = *t
	return nil
}

func (m *MemStore) TasksByEnrollment(_ context.Context, enrollmentID string) ([]models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Task
	for _, t := range m.tasks {
		if t.EnrollmentID == enrollmentID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *MemStore) DeleteTasksByEnrollment(_ context.Context, enrollmentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, t := range m.tasks {
		if t.EnrollmentID == enrollmentID {
			delete(m.tasks, id)
		}
	}
	return nil
}

/* scheduled events */

func (m *MemStore) InsertEvent(_ context.Context, ev *models.ScheduledEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events[ev.ID] = *ev
	return nil
}

func (m *MemStore) GetEvent(_ context.Context, id string) (*models.ScheduledEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ev, ok := m.events[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &ev, nil
}

func (m *MemStore) UpdateEvent(_ context.Context, ev *models.ScheduledEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.events[ev.ID]; !ok {
		return store.ErrNotFound
	}
	m.events[ev.ID] = *ev
	return nil
}

func (m *MemStore) EventsByEnrollment(_ context.Context, enrollmentID string) ([]models.ScheduledEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.ScheduledEvent
	for _, ev := range m.events {
		if ev.EnrollmentID == enrollmentID {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EventDate.Before(out[j].EventDate) })
	return out, nil
}

func (m *MemStore) DeleteEvent(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.events, id)
	return nil
}

func (m *MemStore) DeleteEventsByEnrollment(_ context.Context, enrollmentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, ev := range m.events {
		if ev.EnrollmentID == enrollmentID {
			delete(m.events, id)
		}
	}
	return nil
}

/* messages */

func (m *MemStore) InsertMessage(_ context.Context, msg *models.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages[msg.ID] = *msg
	return nil
}

func (m *MemStore) MessagesBetween(_ context.Context, userA, userB string) ([]models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Message
	for _, msg := range m.messages {
		if (msg.MenteeUserID == userA && msg.SenderUserID == userB) ||
			(msg.MenteeUserID == userB && msg.SenderUserID == userA) {
			out = append(out, msg)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *MemStore) MarkMessageRead(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if msg, ok := m.messages[id]; ok {
		msg.Read = true
		m.messages[id] = msg
	}
	return nil
}

func (m *MemStore) UnreadCount(_ context.Context, menteeUserID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, msg := range m.messages {
		if msg.MenteeUserID == menteeUserID && !msg.Read {
			n++
		}
	}
	return n, nil
}

func (m *MemStore) UnreadCountFromMentee(_ context.Context, menteeUserID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, msg := range m.messages {
		if msg.MenteeUserID == menteeUserID && msg.SenderUserID == menteeUserID && !msg.Read {
			n++
		}
	}
	return n, nil
}

func (m *MemStore) DeleteMessagesWithUser(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, msg := range m.messages {
		if msg.MenteeUserID == userID || msg.SenderUserID == userID {
			delete(m.messages, id)
		}
	}
	return nil
}

/* financial records */

func (m *MemStore) InsertFinancialRecord(_ context.Context, f *models.FinancialRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.finance[f.ID] = *f
	return nil
}

func (m *MemStore) GetFinancialRecord(_ context.Context, id string) (*models.FinancialRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.finance[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &f, nil
}

func (m *MemStore) FinancialRecordByEnrollment(_ context.Context, enrollmentID string) (*models.FinancialRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range m.finance {
		if f.EnrollmentID == enrollmentID {
			f := f
			return &f, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *MemStore) ListFinancialRecords(_ context.Context) ([]models.FinancialRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	records := make([]models.FinancialRecord, 0, len(m.finance))
	for _, f := range m.finance {
		records = append(records, f)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].CreatedAt.Before(records[j].CreatedAt) })
	return records, nil
}

func (m *MemStore) UpdateFinancialRecord(_ context.Context, f *models.FinancialRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.finance[f.ID]; !ok {
		return store.ErrNotFound
	}
	m.finance[f.ID] = *f
	return nil
}

func (m *MemStore) DeleteFinancialRecord(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.finance, id)
	return nil
}

/* installments */

func (m *MemStore) InsertInstallment(_ context.Context, p *models.Installment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.installments[p.ID] = *p
	return nil
}

func (m *MemStore) GetInstallment(_ context.Context, id string) (*models.Installment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.installments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (m *MemStore) UpdateInstallment(_ context.Context, p *models.Installment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.installments[p.ID]; !ok {
		return store.ErrNotFound
	}
	m.installments[p.ID] = *p
	return nil
}

func (m *MemStore) InstallmentsByRecord(_ context.Context, recordID string) ([]models.Installment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Installment
	for _, p := range m.installments {
		if p.RecordID == recordID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (m *MemStore) PaidInstallments(_ context.Context) ([]models.Installment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Installment
	for _, p := range m.installments {
		if p.Status == models.InstallmentPaid {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (m *MemStore) DeleteInstallment(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.installments, id)
	return nil
}

func (m *MemStore) DeleteInstallmentsByRecord(_ context.Context, recordID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, p := range m.installments {
		if p.RecordID == recordID {
			delete(m.installments, id)
		}
	}
	return nil
}

/* products */

func (m *MemStore) InsertProduct(_ context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[p.ID] = *p
	return nil
}

func (m *MemStore) ListProducts(_ context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	products := make([]models.Product, 0, len(m.products))
	for _, p := range m.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].CreatedAt.Before(products[j].CreatedAt) })
	return products, nil
}

func (m *MemStore) ProductsByIDs(_ context.Context, ids []string) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Product
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MemStore) InsertAssignment(_ context.Context, a *models.ProductAssignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assignments[a.ID] = *a
	return nil
}

func (m *MemStore) AssignmentsByUser(_ context.Context, userID string) ([]models.ProductAssignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.ProductAssignment
	for _, a := range m.assignments {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *MemStore) DeleteAssignmentsByUser(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, a := range m.assignments {
		if a.UserID == userID {
			delete(m.assignments, id)
		}
	}
	return nil
}
