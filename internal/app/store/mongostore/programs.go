// internal/app/store/mongostore/programs.go
package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/domain/models"
)

func (s *Store) InsertProgram(ctx context.Context, p *models.Program) error {
	_, err := s.db.Collection(colPrograms).InsertOne(ctx, p)
	return err
}

func (s *Store) GetProgram(ctx context.Context, id string) (*models.Program, error) {
	var p models.Program
	err := s.db.Collection(colPrograms).FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) ListPrograms(ctx context.Context) ([]models.Program, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := s.db.Collection(colPrograms).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var programs []models.Program
	if err := cur.All(ctx, &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

func (s *Store) DeleteProgram(ctx context.Context, id string) error {
	_, err := s.db.Collection(colPrograms).DeleteOne(ctx, bson.M{"_id": id})
	return err
}
