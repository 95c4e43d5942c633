// internal/domain/models/session.go
package models

import "time"

// Session is one numbered mentoring session within an enrollment.
// SessionNumber is sequential per enrollment.
type Session struct {
	ID            string    `bson:"_id" json:"sessao_id"`
	EnrollmentID  string    `bson:"mentorada_mentoria_id" json:"mentorada_mentoria_id"`
	SessionNumber int       `bson:"session_number" json:"session_number"`
	Theme         string    `bson:"tema" json:"tema"`
	SessionDate   time.Time `bson:"session_date" json:"session_date"`
	VideoURL      string    `bson:"video_url,omitempty" json:"video_url,omitempty"`
	AudioURL      string    `bson:"audio_url,omitempty" json:"audio_url,omitempty"`
	Summary       string    `bson:"resumo,omitempty" json:"resumo,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}
