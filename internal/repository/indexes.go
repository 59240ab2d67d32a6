package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// EnsureIndexes creates the indexes the repositories query by.
// Failures are logged and do not stop startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database, logger *zap.Logger) {
	createIndex(ctx, logger, db.Collection("sessions"), bson.D{
		{Key: "userId", Value: 1},
		{Key: "startedAt", Value: -1},
	}, false)

	createIndex(ctx, logger, db.Collection("user_profiles"), bson.D{{Key: "email", Value: 1}}, true)

	createIndex(ctx, logger, db.Collection("institutions"), bson.D{{Key: "name", Value: 1}}, true)
	createIndex(ctx, logger, db.Collection("institutions"), bson.D{{Key: "kind", Value: 1}}, false)

	createIndex(ctx, logger, db.Collection("questions"), bson.D{
		{Key: "type", Value: 1},
		{Key: "difficulty", Value: 1},
	}, false)

	logger.Info("mongo indexes ensured")
}

func createIndex(ctx context.Context, logger *zap.Logger, coll *mongo.Collection, keys bson.D, unique bool) {
	opts := options.Index().SetUnique(unique)
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys, Options: opts})
	if err != nil {
		logger.Warn("failed to create index", zap.String("collection", coll.Name()), zap.Error(err))
	}
}
