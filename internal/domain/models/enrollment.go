// internal/domain/models/enrollment.go
package models

import "time"

// EnrollmentStatus is the lifecycle state of an enrollment.
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "ativa"
	EnrollmentCompleted EnrollmentStatus = "concluida"
	EnrollmentPaused    EnrollmentStatus = "pausada"
)

// Valid reports whether s is one of the known enrollment statuses.
func (s EnrollmentStatus) Valid() bool {
	switch s {
	case EnrollmentActive, EnrollmentCompleted, EnrollmentPaused:
		return true
	}
	return false
}

// Enrollment links one mentee to one program ("mentorada_mentoria"). It is
// the ownership anchor: sessions, tasks, scheduled events, and the financial
// record all resolve their owning user through it.
type Enrollment struct {
	ID        string           `bson:"_id" json:"mentorada_mentoria_id"`
	UserID    string           `bson:"user_id" json:"user_id"`
	ProgramID string           `bson:"mentoria_id" json:"mentoria_id"`
	StartDate time.Time        `bson:"start_date" json:"start_date"`
	Status    EnrollmentStatus `bson:"status" json:"status"`

	// Diagnostic intake, filled in by the mentor.
	DiagnosticPDFURL    string `bson:"diagnostico_pdf_url,omitempty" json:"diagnostico_pdf_url,omitempty"`
	DiagnosticKeyPoints string `bson:"diagnostico_pontos_chave,omitempty" json:"diagnostico_pontos_chave,omitempty"`
	DiagnosticFocus     string `bson:"diagnostico_foco_atual,omitempty" json:"diagnostico_foco_atual,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
