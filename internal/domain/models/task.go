// internal/domain/models/task.go
package models

import "time"

// TaskStatus is the completion state of a task.
type TaskStatus string

const (
	TaskPending TaskStatus = "pendente"
	TaskDone    TaskStatus = "concluida"
)

// Valid reports whether s is one of the known task statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskDone:
		return true
	}
	return false
}

// Task is a piece of homework attached to an enrollment. The mentee records
// a reflection when completing it.
type Task struct {
	ID           string     `bson:"_id" json:"tarefa_id"`
	EnrollmentID string     `bson:"mentorada_mentoria_id" json:"mentorada_mentoria_id"`
	Description  string     `bson:"descricao" json:"descricao"`
	Status       TaskStatus `bson:"status" json:"status"`
	Reflection   string     `bson:"reflexao,omitempty" json:"reflexao,omitempty"`
	DueDate      *time.Time `bson:"due_date,omitempty" json:"due_date,omitempty"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
}
