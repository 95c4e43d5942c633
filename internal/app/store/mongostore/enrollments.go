// internal/app/store/mongostore/enrollments.go
package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/domain/models"
)

func (s *Store) InsertEnrollment(ctx context.Context, e *models.Enrollment) error {
	_, err := s.db.Collection(colEnrollments).InsertOne(ctx, e)
	return err
}

func (s *Store) GetEnrollment(ctx context.Context, id string) (*models.Enrollment, error) {
	var e models.Enrollment
	err := s.db.Collection(colEnrollments).FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) UpdateEnrollment(ctx context.Context, e *models.Enrollment) error {
	res, err := s.db.Collection(colEnrollments).ReplaceOne(ctx, bson.M{"_id": e.ID}, e)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) EnrollmentsByUser(ctx context.Context, userID string) ([]models.Enrollment, error) {
	return s.findEnrollments(ctx, bson.M{"user_id": userID})
}

func (s *Store) EnrollmentsByProgram(ctx context.Context, programID string) ([]models.Enrollment, error) {
	return s.findEnrollments(ctx, bson.M{"mentoria_id": programID})
}

func (s *Store) findEnrollments(ctx context.Context, filter bson.M) ([]models.Enrollment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := s.db.Collection(colEnrollments).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var enrollments []models.Enrollment
	if err := cur.All(ctx, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (s *Store) DeleteEnrollment(ctx context.Context, id string) error {
	_, err := s.db.Collection(colEnrollments).DeleteOne(ctx, bson.M{"_id": id})
	return err
}
