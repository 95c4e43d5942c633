// internal/app/store/mongostore/mongostore.go

// Package mongostore is the MongoDB implementation of store.Store.
//
// Every document carries its uuid id in _id, so lookups are plain _id
// matches. Deletes ignore the deleted count: removing an absent document is
// success, which keeps the cascade engine's steps idempotent.
package mongostore

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/institutojk/mentoria/internal/app/store"
)

// Collection names, matching the original data layout.
const (
	colUsers        = "users"
	colPrograms     = "mentorias"
	colEnrollments  = "mentorada_mentorias"
	colSessions     = "sessoes"
	colTasks        = "tarefas"
	colEvents       = "agendamentos"
	colMessages     = "mensagens"
	colFinance      = "financeiro"
	colInstallments = "parcelas"
	colProducts     = "produtos"
	colAssignments  = "user_produtos"
)

// Store implements store.Store over a Mongo database handle.
type Store struct {
	db *mongo.Database
}

var _ store.Store = (*Store)(nil)

// New wraps the given database.
func New(db *mongo.Database) *Store {
	return &Store{db: db}
}
