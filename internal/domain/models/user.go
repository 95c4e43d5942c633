// internal/domain/models/user.go
package models

import (
	"time"
)

// Role identifies what a user is allowed to do. Admins run the back office;
// mentees (mentoradas) own enrollments and everything hanging off them.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMentee Role = "mentorada"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleMentee:
		return true
	}
	return false
}

// User represents admins and mentees. The email is unique (enforced by a
// unique index on the users collection). PasswordHash never leaves the API.
type User struct {
	ID           string    `bson:"_id" json:"user_id"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	Role         Role      `bson:"role" json:"role"`
	PasswordHash string    `bson:"password" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
