package services

import (
	"context"

	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/models"
	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GoalService encapsulates the business logic for nutrition goals.
// Goals are created by the planner when a plan is generated and expired by
// the scheduler; this service only exposes reads.
type GoalService struct {
	repo *repository.GoalRepository
}

// NewGoalService creates a new instance of GoalService.
func NewGoalService(repo *repository.GoalRepository) *GoalService {
	return &GoalService{repo: repo}
}

// GetActiveGoal returns the user's current nutrition goal.
func (s *GoalService) GetActiveGoal(ctx context.Context, userID primitive.ObjectID) (*models.NutritionGoal, error) {
	return s.repo.GetActiveGoalByUser(ctx, userID)
}
