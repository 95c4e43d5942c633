// internal/app/store/mongostore/tasks.go
package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/domain/models"
)

func (s *Store) InsertTask(ctx context.Context, t *models.Task) error {
	_, err := s.db.Collection(colTasks).InsertOne(ctx, t)
	return err
}

func (s *Store) GetTask(ctx context.Context, id string) (*models.Task, error) {
	var t models.Task
	err := s.db.Collection(colTasks).FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) UpdateTask(ctx context.Context, t *models.Task) error {
	res, err := s.db.Collection(colTasks).ReplaceOne(ctx, bson.M{"_id": t.ID}, t)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) TasksByEnrollment(ctx context.Context, enrollmentID string) ([]models.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := s.db.Collection(colTasks).Find(ctx, bson.M{"mentorada_mentoria_id": enrollmentID}, opts)
	if err != nil {
		return nil, err
	}
	var tasks []models.Task
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Store) DeleteTasksByEnrollment(ctx context.Context, enrollmentID string) error {
	_, err := s.db.Collection(colTasks).DeleteMany(ctx, bson.M{"mentorada_mentoria_id": enrollmentID})
	return err
}
