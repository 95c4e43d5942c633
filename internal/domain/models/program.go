// internal/domain/models/program.go
package models

import "time"

// Program is a mentorship offering (a "mentoria"). Programs have no owner;
// deleting one cascades through every enrollment that references it.
type Program struct {
	ID          string    `bson:"_id" json:"mentoria_id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
