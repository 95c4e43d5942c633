// internal/app/store/mongostore/events.go
package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/domain/models"
)

func (s *Store) InsertEvent(ctx context.Context, ev *models.ScheduledEvent) error {
	_, err := s.db.Collection(colEvents).InsertOne(ctx, ev)
	return err
}

func (s *Store) GetEvent(ctx context.Context, id string) (*models.ScheduledEvent, error) {
	var ev models.ScheduledEvent
	err := s.db.Collection(colEvents).FindOne(ctx, bson.M{"_id": id}).Decode(&ev)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (s *Store) UpdateEvent(ctx context.Context, ev *models.ScheduledEvent) error {
	res, err := s.db.Collection(colEvents).ReplaceOne(ctx, bson.M{"_id": ev.ID}, ev)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) EventsByEnrollment(ctx context.Context, enrollmentID string) ([]models.ScheduledEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "event_date", Value: 1}})
	cur, err := s.db.Collection(colEvents).Find(ctx, bson.M{"mentorada_mentoria_id": enrollmentID}, opts)
	if err != nil {
		return nil, err
	}
	var events []models.ScheduledEvent
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	_, err := s.db.Collection(colEvents).DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *Store) DeleteEventsByEnrollment(ctx context.Context, enrollmentID string) error {
	_, err := s.db.Collection(colEvents).DeleteMany(ctx, bson.M{"mentorada_mentoria_id": enrollmentID})
	return err
}
