// internal/app/store/mongostore/installments.go
package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/domain/models"
)

func (s *Store) InsertInstallment(ctx context.Context, p *models.Installment) error {
	_, err := s.db.Collection(colInstallments).InsertOne(ctx, p)
	return err
}

func (s *Store) GetInstallment(ctx context.Context, id string) (*models.Installment, error) {
	var p models.Installment
	err := s.db.Collection(colInstallments).FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) UpdateInstallment(ctx context.Context, p *models.Installment) error {
	res, err := s.db.Collection(colInstallments).ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) InstallmentsByRecord(ctx context.Context, recordID string) ([]models.Installment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "numero_parcela", Value: 1}})
	cur, err := s.db.Collection(colInstallments).Find(ctx, bson.M{"financeiro_id": recordID}, opts)
	if err != nil {
		return nil, err
	}
	var parcelas []models.Installment
	if err := cur.All(ctx, &parcelas); err != nil {
		return nil, err
	}
	return parcelas, nil
}

func (s *Store) PaidInstallments(ctx context.Context) ([]models.Installment, error) {
	cur, err := s.db.Collection(colInstallments).Find(ctx, bson.M{"status": models.InstallmentPaid})
	if err != nil {
		return nil, err
	}
	var parcelas []models.Installment
	if err := cur.All(ctx, &parcelas); err != nil {
		return nil, err
	}
	return parcelas, nil
}

func (s *Store) DeleteInstallment(ctx context.Context, id string) error {
	_, err := s.db.Collection(colInstallments).DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *Store) DeleteInstallmentsByRecord(ctx context.Context, recordID string) error {
	_, err := s.db.Collection(colInstallments).DeleteMany(ctx, bson.M{"financeiro_id": recordID})
	return err
}
