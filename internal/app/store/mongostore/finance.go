// internal/app/store/mongostore/finance.go
package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/domain/models"
)

func (s *Store) InsertFinancialRecord(ctx context.Context, f *models.FinancialRecord) error {
	_, err := s.db.Collection(colFinance).InsertOne(ctx, f)
	return err
}

func (s *Store) GetFinancialRecord(ctx context.Context, id string) (*models.FinancialRecord, error) {
	var f models.FinancialRecord
	err := s.db.Collection(colFinance).FindOne(ctx, bson.M{"_id": id}).Decode(&f)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *Store) FinancialRecordByEnrollment(ctx context.Context, enrollmentID string) (*models.FinancialRecord, error) {
	var f models.FinancialRecord
	err := s.db.Collection(colFinance).FindOne(ctx, bson.M{"mentorada_mentoria_id": enrollmentID}).Decode(&f)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *Store) ListFinancialRecords(ctx context.Context) ([]models.FinancialRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := s.db.Collection(colFinance).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var records []models.FinancialRecord
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Store) UpdateFinancialRecord(ctx context.Context, f *models.FinancialRecord) error {
	res, err := s.db.Collection(colFinance).ReplaceOne(ctx, bson.M{"_id": f.ID}, f)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteFinancialRecord(ctx context.Context, id string) error {
	_, err := s.db.Collection(colFinance).DeleteOne(ctx, bson.M{"_id": id})
	return err
}
