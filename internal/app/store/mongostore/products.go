// internal/app/store/mongostore/products.go
package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/institutojk/mentoria/internal/domain/models"
)

func (s *Store) InsertProduct(ctx context.Context, p *models.Product) error {
	_, err := s.db.Collection(colProducts).InsertOne(ctx, p)
	return err
}

func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := s.db.Collection(colProducts).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) ProductsByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := s.db.Collection(colProducts).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) InsertAssignment(ctx context.Context, a *models.ProductAssignment) error {
	_, err := s.db.Collection(colAssignments).InsertOne(ctx, a)
	return err
}

func (s *Store) AssignmentsByUser(ctx context.Context, userID string) ([]models.ProductAssignment, error) {
	cur, err := s.db.Collection(colAssignments).Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	var assignments []models.ProductAssignment
	if err := cur.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (s *Store) DeleteAssignmentsByUser(ctx context.Context, userID string) error {
	_, err := s.db.Collection(colAssignments).DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
