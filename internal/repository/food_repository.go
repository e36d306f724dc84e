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
)

// FoodRepository handles database operations for the food catalog.
type FoodRepository struct {
	collection *mongo.Collection
}

func NewFoodRepository(db *mongo.Database) *FoodRepository {
	return &FoodRepository{
		collection: db.Collection("foods"),
	}
}

// CreateFood inserts a catalog entry.
func (r *FoodRepository) CreateFood(ctx context.Context, food *models.Food) (*models.Food, error) {
	food.CreatedAt = time.Now()
	food.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, food)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert food")
		return nil, fmt.Errorf("failed to insert food: %v", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		food.ID = id
	}
	return food, nil
}

// GetFoodByID fetches a single catalog entry.
func (r *FoodRepository) GetFoodByID(ctx context.Context, id primitive.ObjectID) (*models.Food, error) {
	var food models.Food
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&food)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &errs.NotFoundError{Resource: "food"}
		}
		return nil, fmt.Errorf("failed to find food: %v", err)
	}
	return &food, nil
}

// ListFoods returns catalog entries, optionally filtered by meal type
// and/or category.
func (r *FoodRepository) ListFoods(ctx context.Context, mealType, category string) ([]models.Food, error) {
	filter := bson.M{}
	if mealType != "" {
		filter["meal_types"] = mealType
	}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch foods")
		return nil, fmt.Errorf("failed to fetch foods: %v", err)
	}
	defer cursor.Close(ctx)

	var foods []models.Food
	for cursor.Next(ctx) {
		var food models.Food
		if err := cursor.Decode(&food); err != nil {
			return nil, fmt.Errorf("failed to decode food: %v", err)
		}
		foods = append(foods, food)
	}

	return foods, nil
}
