package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/models"
	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/errs"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MealPlanRepository handles database operations for generated meal plans.
type MealPlanRepository struct {
	collection *mongo.Collection
}

func NewMealPlanRepository(db *mongo.Database) *MealPlanRepository {
	return &MealPlanRepository{
		collection: db.Collection("meal_plans"),
	}
}

// CreateMealPlan persists a generated plan.
func (r *MealPlanRepository) CreateMealPlan(ctx context.Context, plan *models.MealPlan) (*models.MealPlan, error) {
	plan.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, plan)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert meal plan")
		return nil, fmt.Errorf("failed to insert meal plan: %v", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		plan.ID = id
	}

	logrus.WithField("userID", plan.UserID.Hex()).Info("Meal plan saved")
	return plan, nil
}

// GetLatestMealPlan returns the user's most recently generated plan.
func (r *MealPlanRepository) GetLatestMealPlan(ctx context.Context, userID primitive.ObjectID) (*models.MealPlan, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var plan models.MealPlan
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &errs.NotFoundError{Resource: "meal plan"}
		}
		return nil, fmt.Errorf("failed to find meal plan: %v", err)
	}
	return &plan, nil
}
