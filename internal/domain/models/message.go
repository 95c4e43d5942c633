// internal/domain/models/message.go
package models

import "time"

// Message is a chat message between the mentor and a mentee. MenteeUserID is
// the mentee party of the conversation; SenderUserID is whoever wrote it.
// When the mentee writes, both fields carry the mentee's id.
type Message struct {
	ID           string    `bson:"_id" json:"mensagem_id"`
	MenteeUserID string    `bson:"mentorada_user_id" json:"mentorada_user_id"`
	SenderUserID string    `bson:"sender_user_id" json:"sender_user_id"`
	Body         string    `bson:"message" json:"message"`
	Read         bool      `bson:"read" json:"read"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
