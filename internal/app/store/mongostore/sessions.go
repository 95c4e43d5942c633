// internal/app/store/mongostore/sessions.go
package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/domain/models"
)

func (s *Store) InsertSession(ctx context.Context, sess *models.Session) error {
	_, err := s.db.Collection(colSessions).InsertOne(ctx, sess)
	return err
}

func (s *Store) GetSession(ctx context.Context, id string) (*models.Session, error) {
	var sess models.Session
	err := s.db.Collection(colSessions).FindOne(ctx, bson.M{"_id": id}).Decode(&sess)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *Store) SessionsByEnrollment(ctx context.Context, enrollmentID string) ([]models.Session, error) {
	opts := options.Find().SetSort(bson.D{{Key: "session_number", Value: 1}})
	cur, err := s.db.Collection(colSessions).Find(ctx, bson.M{"mentorada_mentoria_id": enrollmentID}, opts)
	if err != nil {
		return nil, err
	}
	var sessions []models.Session
	if err := cur.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *Store) DeleteSessionsByEnrollment(ctx context.Context, enrollmentID string) error {
	_, err := s.db.Collection(colSessions).DeleteMany(ctx, bson.M{"mentorada_mentoria_id": enrollmentID})
	return err
}
