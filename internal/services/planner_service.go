package services

import (
	"context"
	"time"

	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/llm"
	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/models"
	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/nutrition"
	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileSource fetches the profile a plan is generated from.
type ProfileSource interface {
	GetProfileByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error)
}

// GoalWriter swaps the user's active nutrition goal.
type GoalWriter interface {
	DeactivateGoalsForUser(ctx context.Context, userID primitive.ObjectID) error
	CreateGoal(ctx context.Context, goal *models.NutritionGoal) (*models.NutritionGoal, error)
}

// PlanStore persists generated meal plans.
type PlanStore interface {
	CreateMealPlan(ctx context.Context, plan *models.MealPlan) (*models.MealPlan, error)
	GetLatestMealPlan(ctx context.Context, userID primitive.ObjectID) (*models.MealPlan, error)
}

// TextGenerator produces free-form text from a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// PlanNotifier tells the user their plan is ready.
type PlanNotifier interface {
	NotifyPlanGenerated(ctx context.Context, userID primitive.ObjectID, days int) error
}

// PlannerService turns a profile into a nutrition goal and an AI-generated
// meal plan.
type PlannerService struct {
	profiles ProfileSource
	goals    GoalWriter
	plans    PlanStore
	llm      TextGenerator
	notifier PlanNotifier
}

func NewPlannerService(profiles ProfileSource, goals GoalWriter, plans PlanStore, generator TextGenerator, notifier PlanNotifier) *PlannerService {
	return &PlannerService{
		profiles: profiles,
		goals:    goals,
		plans:    plans,
		llm:      generator,
		notifier: notifier,
	}
}

// GeneratePlan computes targets from the user's profile, asks the
// generation service for a plan, then supersedes any active goal with a
// fresh one and persists the result. Generation runs before any write so
// a failed or malformed response leaves the previous goal active. Errors
// from the generation service surface as GenerationError so the handler
// can tell the user to retry.
func (s *PlannerService) GeneratePlan(ctx context.Context, userID primitive.ObjectID) (*models.MealPlan, error) {
	profile, err := s.profiles.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	targets, err := nutrition.CalculateTargets(profile)
	if err != nil {
		return nil, err
	}

	prompt := llm.BuildPlanPrompt(profile, targets)
	response, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	days, err := llm.ParsePlanResponse(response)
	if err != nil {
		return nil, err
	}

	// The plan parsed. Only now does the new goal supersede the old one.
	if err := s.goals.DeactivateGoalsForUser(ctx, userID); err != nil {
		return nil, err
	}

	duration := profile.Duration
	if duration <= 0 {
		duration = 7
	}
	start := time.Now()
	end := start.AddDate(0, 0, duration)

	goal := &models.NutritionGoal{
		UserID:    userID,
		Calories:  targets.Calories,
		Protein:   targets.Protein,
		Carbs:     targets.Carbs,
		Fat:       targets.Fat,
		Fiber:     targets.Fiber,
		PerMeal:   targets.PerMeal,
		StartDate: start,
		EndDate:   &end,
		IsActive:  true,
	}
	goal, err = s.goals.CreateGoal(ctx, goal)
	if err != nil {
		return nil, err
	}

	plan := &models.MealPlan{
		UserID: userID,
		GoalID: goal.ID,
		Days:   days,
	}
	plan, err = s.plans.CreateMealPlan(ctx, plan)
	if err != nil {
		return nil, err
	}

	if err := s.notifier.NotifyPlanGenerated(ctx, userID, len(days)); err != nil {
		logger.Log.WithError(err).Warn("Failed to notify user about generated plan")
	}

	logger.Log.WithFields(map[string]interface{}{
		"user_id": userID.Hex(),
		"days":    len(days),
	}).Info("Meal plan generated")
	return plan, nil
}

// LatestPlan returns the user's most recent generated plan.
func (s *PlannerService) LatestPlan(ctx context.Context, userID primitive.ObjectID) (*models.MealPlan, error) {
	return s.plans.GetLatestMealPlan(ctx, userID)
}
