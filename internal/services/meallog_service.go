package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/models"
	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/repository"
	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/errs"
	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LogMealRequest is the payload for logging a meal.
type LogMealRequest struct {
	FoodID      string  `json:"food_id"`
	Date        string  `json:"date"` // YYYY-MM-DD, defaults to today
	MealType    string  `json:"meal_type"`
	ServingType string  `json:"serving_type"`
	Quantity    float64 `json:"quantity"`
}

// MealLogService encapsulates the business logic for meal tracking.
type MealLogService struct {
	repo     *repository.MealLogRepository
	foodRepo *repository.FoodRepository
}

func NewMealLogService(repo *repository.MealLogRepository, foodRepo *repository.FoodRepository) *MealLogService {
	return &MealLogService{repo: repo, foodRepo: foodRepo}
}

var validMealTypes = map[string]bool{
	models.MealBreakfast: true,
	models.MealLunch:     true,
	models.MealSnack:     true,
	models.MealDinner:    true,
}

// LogMeal resolves the food and serving, scales the macro contribution by
// quantity and appends the tracking entry.
func (s *MealLogService) LogMeal(ctx context.Context, userID primitive.ObjectID, req *LogMealRequest) (*models.MealLog, error) {
	if !validMealTypes[req.MealType] {
		return nil, errs.NewValidation("meal_type", "must be one of breakfast, lunch, snack, dinner")
	}
	if req.Quantity <= 0 {
		return nil, errs.NewValidation("quantity", "must be positive")
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	} else if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, errs.NewValidation("date", "must be YYYY-MM-DD")
	}

	foodID, err := primitive.ObjectIDFromHex(req.FoodID)
	if err != nil {
		return nil, errs.NewValidation("food_id", "invalid ID")
	}

	food, err := s.foodRepo.GetFoodByID(ctx, foodID)
	if err != nil {
		return nil, err
	}

	serving, ok := food.ServingByType(req.ServingType)
	if !ok {
		return nil, errs.NewValidation("serving_type", fmt.Sprintf("food %q has no such serving", food.Name))
	}

	log := &models.MealLog{
		UserID:      userID,
		FoodID:      food.ID,
		FoodName:    food.Name,
		Date:        date,
		MealType:    req.MealType,
		ServingType: serving.Type,
		Quantity:    req.Quantity,
		Calories:    serving.Calories * req.Quantity,
		Protein:     serving.Protein * req.Quantity,
		Carbs:       serving.Carbs * req.Quantity,
		Fat:         serving.Fat * req.Quantity,
		Fiber:       serving.Fiber * req.Quantity,
	}

	created, err := s.repo.CreateMealLog(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("failed to log meal: %v", err)
	}
	return created, nil
}

// GetMealLogs returns the user's entries for a date.
func (s *MealLogService) GetMealLogs(ctx context.Context, userID primitive.ObjectID, date string) ([]models.MealLog, error) {
	return s.repo.GetMealLogs(ctx, userID, date)
}

// GetDailyNutrition aggregates the macro intake for a date.
func (s *MealLogService) GetDailyNutrition(ctx context.Context, userID primitive.ObjectID, date string) (*models.DailyNutrition, error) {
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	} else if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, errs.NewValidation("date", "must be YYYY-MM-DD")
	}

	totals, err := s.repo.DailyTotals(ctx, userID, date)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID.Hex()).Error("Failed to aggregate daily nutrition")
		return nil, err
	}
	return totals, nil
}
