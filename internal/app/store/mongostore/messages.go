// internal/app/store/mongostore/messages.go
package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/institutojk/mentoria/internal/domain/models"
)

func (s *Store) InsertMessage(ctx context.Context, m *models.Message) error {
	_, err := s.db.Collection(colMessages).InsertOne(ctx, m)
	return err
}

func (s *Store) MessagesBetween(ctx context.Context, userA, userB string) ([]models.Message, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"mentorada_user_id": userA, "sender_user_id": userB},
		bson.M{"mentorada_user_id": userB, "sender_user_id": userA},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := s.db.Collection(colMessages).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var msgs []models.Message
	if err := cur.All(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (s *Store) MarkMessageRead(ctx context.Context, id string) error {
	_, err := s.db.Collection(colMessages).UpdateOne(ctx,
		bson.M{"_id": id}, bson.M{"$set": bson.M{"read": true}})
	return err
}

func (s *Store) UnreadCount(ctx context.Context, menteeUserID string) (int64, error) {
	return s.db.Collection(colMessages).CountDocuments(ctx, bson.M{
		"mentorada_user_id": menteeUserID,
		"read":              false,
	})
}

func (s *Store) UnreadCountFromMentee(ctx context.Context, menteeUserID string) (int64, error) {
	return s.db.Collection(colMessages).CountDocuments(ctx, bson.M{
		"mentorada_user_id": menteeUserID,
		"sender_user_id":    menteeUserID,
		"read":              false,
	})
}

func (s *Store) DeleteMessagesWithUser(ctx context.Context, userID string) error {
	filter := bson.M{"$or": bson.A{
		bson.M{"mentorada_user_id": userID},
		bson.M{"sender_user_id": userID},
	}}
	_, err := s.db.Collection(colMessages).DeleteMany(ctx, filter)
	return err
}
