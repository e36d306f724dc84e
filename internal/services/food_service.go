package services

import (
	"context"
	"fmt"

	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/models"
	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/repository"
	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FoodService encapsulates the business logic for the food catalog.
type FoodService struct {
	repo *repository.FoodRepository
}

func NewFoodService(repo *repository.FoodRepository) *FoodService {
	return &FoodService{repo: repo}
}

// CreateFood adds a catalog entry. Admin only.
func (s *FoodService) CreateFood(ctx context.Context, food *models.Food) (*models.Food, error) {
	if food.Name == "" {
		logger.Log.Warn("Food name is empty during creation")
		return nil, fmt.Errorf("food name is required")
	}
	if len(food.Servings) == 0 {
		return nil, fmt.Errorf("food needs at least one serving definition")
	}

	created, err := s.repo.CreateFood(ctx, food)
	if err != nil {
		return nil, fmt.Errorf("failed to create food: %v", err)
	}

	logger.Log.WithField("food_id", created.ID.Hex()).Info("Food created")
	return created, nil
}

// GetFood retrieves a catalog entry by its ID.
func (s *FoodService) GetFood(ctx context.Context, id string) (*models.Food, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid food ID: %v", err)
	}
	return s.repo.GetFoodByID(ctx, objID)
}

// ListFoods lists catalog entries with optional meal type/category filters.
func (s *FoodService) ListFoods(ctx context.Context, mealType, category string) ([]models.Food, error) {
	return s.repo.ListFoods(ctx, mealType, category)
}
