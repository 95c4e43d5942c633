// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB opens the MongoDB connection used by the whole app.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}

	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))
	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates the indexes the store layer relies on: the unique
// email constraint on users and the foreign-key lookups the chain walks.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.MongoDatabase

	indexes := []struct {
		collection string
		model      mongo.IndexModel
	}{
		{"users", mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{"mentorada_mentorias", mongo.IndexModel{Keys: bson.D{{Key: "user_id", Value: 1}}}},
		{"mentorada_mentorias", mongo.IndexModel{Keys: bson.D{{Key: "mentoria_id", Value: 1}}}},
		{"sessoes", mongo.IndexModel{Keys: bson.D{{Key: "mentorada_mentoria_id", Value: 1}, {Key: "session_number", Value: 1}}}},
		{"tarefas", mongo.IndexModel{Keys: bson.D{{Key: "mentorada_mentoria_id", Value: 1}}}},
		{"agendamentos", mongo.IndexModel{Keys: bson.D{{Key: "mentorada_mentoria_id", Value: 1}, {Key: "event_date", Value: 1}}}},
		{"mensagens", mongo.IndexModel{Keys: bson.D{{Key: "mentorada_user_id", Value: 1}, {Key: "read", Value: 1}}}},
		{"financeiro", mongo.IndexModel{Keys: bson.D{{Key: "mentorada_mentoria_id", Value: 1}}}},
		{"parcelas", mongo.IndexModel{Keys: bson.D{{Key: "financeiro_id", Value: 1}, {Key: "numero_parcela", Value: 1}}}},
		{"parcelas", mongo.IndexModel{Keys: bson.D{{Key: "status", Value: 1}}}},
		{"user_produtos", mongo.IndexModel{Keys: bson.D{{Key: "user_id", Value: 1}}}},
	}

	for _, idx := range indexes {
		if _, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model); err != nil {
			return fmt.Errorf("create index on %s: %w", idx.collection, err)
		}
	}

	logger.Info("schema ensured", zap.Int("indexes", len(indexes)))
	return nil
}
