package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MealLogRepository handles database operations for meal tracking entries.
type MealLogRepository struct {
	collection *mongo.Collection
}

func NewMealLogRepository(db *mongo.Database) *MealLogRepository {
	return &MealLogRepository{
		collection: db.Collection("meal_logs"),
	}
}

// CreateMealLog appends a tracking entry.
func (r *MealLogRepository) CreateMealLog(ctx context.Context, log *models.MealLog) (*models.MealLog, error) {
	log.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, log)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert meal log")
		return nil, fmt.Errorf("failed to insert meal log: %v", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		log.ID = id
	}

	logrus.WithFields(logrus.Fields{
		"userID": log.UserID.Hex(),
		"date":   log.Date,
		"meal":   log.MealType,
	}).Info("Meal logged")
	return log, nil
}

// HasMealLog reports whether the user logged anything for the given meal
// and date. The reminder scheduler treats this as "meal satisfied".
func (r *MealLogRepository) HasMealLog(ctx context.Context, userID primitive.ObjectID, date, mealType string) (bool, error) {
	filter := bson.M{
		"user_id":   userID,
		"date":      date,
		"meal_type": mealType,
	}
	count, err := r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check meal log: %v", err)
	}
	return count > 0, nil
}

// GetMealLogs returns all entries for a user and date, newest first.
func (r *MealLogRepository) GetMealLogs(ctx context.Context, userID primitive.ObjectID, date string) ([]models.MealLog, error) {
	filter := bson.M{"user_id": userID, "date": date}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch meal logs: %v", err)
	}
	defer cursor.Close(ctx)

	var logs []models.MealLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("failed to decode meal logs: %v", err)
	}
	return logs, nil
}

// DailyTotals aggregates the macro intake for a user and date.
func (r *MealLogRepository) DailyTotals(ctx context.Context, userID primitive.ObjectID, date string) (*models.DailyNutrition, error) {
	logs, err := r.GetMealLogs(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	totals := &models.DailyNutrition{Date: date, Meals: len(logs)}
	for _, log := range logs {
		totals.Calories += log.Calories
		totals.Protein += log.Protein
		totals.Carbs += log.Carbs
		totals.Fat += log.Fat
		totals.Fiber += log.Fiber
	}
	return totals, nil
}
