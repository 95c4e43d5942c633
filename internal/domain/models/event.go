// internal/domain/models/event.go
package models

import "time"

// EventStatus is the scheduling state of a calendar event.
type EventStatus string

const (
	EventScheduled EventStatus = "agendada"
	EventHeld      EventStatus = "realizada"
	EventCancelled EventStatus = "cancelada"
)

// Valid reports whether s is one of the known event statuses.
func (s EventStatus) Valid() bool {
	switch s {
	case EventScheduled, EventHeld, EventCancelled:
		return true
	}
	return false
}

// ScheduledEvent is a calendar appointment for an enrollment (an
// "agendamento"): a session slot that is later marked held or cancelled.
type ScheduledEvent struct {
	ID           string      `bson:"_id" json:"agendamento_id"`
	EnrollmentID string      `bson:"mentorada_mentoria_id" json:"mentorada_mentoria_id"`
	EventDate    time.Time   `bson:"event_date" json:"event_date"`
	Status       EventStatus `bson:"status" json:"status"`
	Notes        string      `bson:"notas,omitempty" json:"notas,omitempty"`
	CreatedAt    time.Time   `bson:"created_at" json:"created_at"`
}
