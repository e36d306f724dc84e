package database

import (
	"context"
	"fmt"
	"time"

	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/config"
	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectDB establishes the MongoDB connection and prepares indexes.
func ConnectDB(cfg *config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %v", err)
	}

	db := client.Database(cfg.DBName)
	if err := ensureIndexes(ctx, db); err != nil {
		return nil, err
	}

	logger.Log.WithField("db", cfg.DBName).Info("Connected to MongoDB")
	return db, nil
}

// ensureIndexes creates the indexes the application relies on. The unique
// compound index on notifications is what makes the reminder scheduler's
// insert idempotent under concurrent firings: the second insert for the
// same (user, date, meal, type) fails with a duplicate key error.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	notifIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "date", Value: 1},
			{Key: "meal_type", Value: 1},
			{Key: "type", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"meal_type": bson.M{"$exists": true}}),
	}
	if _, err := db.Collection("notifications").Indexes().CreateOne(ctx, notifIndex); err != nil {
		return fmt.Errorf("failed to create notification index: %v", err)
	}

	logIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "date", Value: 1},
			{Key: "meal_type", Value: 1},
		},
	}
	if _, err := db.Collection("meal_logs").Indexes().CreateOne(ctx, logIndex); err != nil {
		return fmt.Errorf("failed to create meal log index: %v", err)
	}

	goalIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "is_active", Value: 1},
		},
	}
	if _, err := db.Collection("nutrition_goals").Indexes().CreateOne(ctx, goalIndex); err != nil {
		return fmt.Errorf("failed to create nutrition goal index: %v", err)
	}

	return nil
}
