package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/models"
	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/errs"
	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GoalRepository handles database operations for nutrition goals.
type GoalRepository struct {
	collection *mongo.Collection
}

// NewGoalRepository creates a new instance of GoalRepository.
func NewGoalRepository(db *mongo.Database) *GoalRepository {
	return &GoalRepository{
		collection: db.Collection("nutrition_goals"),
	}
}

// CreateGoal inserts a new nutrition goal.
func (r *GoalRepository) CreateGoal(ctx context.Context, goal *models.NutritionGoal) (*models.NutritionGoal, error) {
	goal.CreatedAt = time.Now()
	goal.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, goal)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to insert nutrition goal")
		return nil, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		logger.Log.Error("Failed to cast inserted ID")
		return nil, errors.New("failed to cast inserted goal ID")
	}
	goal.ID = insertedID

	logger.Log.WithField("goal_id", goal.ID.Hex()).Info("Nutrition goal created")
	return goal, nil
}

// GetActiveGoalByUser returns the user's currently active goal.
func (r *GoalRepository) GetActiveGoalByUser(ctx context.Context, userID primitive.ObjectID) (*models.NutritionGoal, error) {
	var goal models.NutritionGoal
	filter := bson.M{"user_id": userID, "is_active": true}
	err := r.collection.FindOne(ctx, filter).Decode(&goal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &errs.NotFoundError{Resource: "active nutrition goal"}
		}
		logger.Log.WithError(err).WithField("user_id", userID.Hex()).Error("Failed to find active goal")
		return nil, err
	}
	return &goal, nil
}

// ActiveGoals fetches every goal the reminder scan should consider:
// isActive, already started, and not past its end date.
func (r *GoalRepository) ActiveGoals(ctx context.Context, now time.Time) ([]models.NutritionGoal, error) {
	filter := bson.M{
		"is_active":  true,
		"start_date": bson.M{"$lte": now},
		"$or": []bson.M{
			{"end_date": nil},
			{"end_date": bson.M{"$gte": now}},
		},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch active goals")
		return nil, err
	}
	defer cursor.Close(ctx)

	var goals []models.NutritionGoal
	for cursor.Next(ctx) {
		var goal models.NutritionGoal
		if err := cursor.Decode(&goal); err != nil {
			logger.Log.WithError(err).Error("Failed to decode goal")
			return nil, err
		}
		goals = append(goals, goal)
	}

	return goals, nil
}

// DeactivateGoalsForUser flips any active goal of the user to inactive.
// Called before a new goal supersedes them.
func (r *GoalRepository) DeactivateGoalsForUser(ctx context.Context, userID primitive.ObjectID) error {
	filter := bson.M{"user_id": userID, "is_active": true}
	update := bson.M{"$set": bson.M{"is_active": false, "updated_at": time.Now()}}

	_, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID.Hex()).Error("Failed to deactivate goals")
		return err
	}
	return nil
}

// DeactivateExpiredGoals flips goals whose end date has passed. Returns the
// number of goals deactivated.
func (r *GoalRepository) DeactivateExpiredGoals(ctx context.Context, now time.Time) (int64, error) {
	filter := bson.M{
		"is_active": true,
		"end_date":  bson.M{"$ne": nil, "$lt": now},
	}
	update := bson.M{"$set": bson.M{"is_active": false, "updated_at": now}}

	result, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to deactivate expired goals")
		return 0, err
	}

	if result.ModifiedCount > 0 {
		logger.Log.WithField("count", result.ModifiedCount).Info("Expired nutrition goals deactivated")
	}
	return result.ModifiedCount, nil
}
