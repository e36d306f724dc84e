package services

import (
	"context"
	"testing"

	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/models"
	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeProfileSource struct {
	profile *models.Profile
}

func (f *fakeProfileSource) GetProfileByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error) {
	if f.profile == nil {
		return nil, &errs.NotFoundError{Resource: "profile"}
	}
	return f.profile, nil
}

type fakeGoalWriter struct {
	deactivated int
	created     []*models.NutritionGoal
}

func (f *fakeGoalWriter) DeactivateGoalsForUser(ctx context.Context, userID primitive.ObjectID) error {
	f.deactivated++
	return nil
}

func (f *fakeGoalWriter) CreateGoal(ctx context.Context, goal *models.NutritionGoal) (*models.NutritionGoal, error) {
	goal.ID = primitive.NewObjectID()
	f.created = append(f.created, goal)
	return goal, nil
}

type fakePlanStore struct {
	plans []*models.MealPlan
}

func (f *fakePlanStore) CreateMealPlan(ctx context.Context, plan *models.MealPlan) (*models.MealPlan, error) {
	plan.ID = primitive.NewObjectID()
	f.plans = append(f.plans, plan)
	return plan, nil
}

func (f *fakePlanStore) GetLatestMealPlan(ctx context.Context, userID primitive.ObjectID) (*models.MealPlan, error) {
	if len(f.plans) == 0 {
		return nil, &errs.NotFoundError{Resource: "meal plan"}
	}
	return f.plans[len(f.plans)-1], nil
}

type fakeGenerator struct {
	response string
	err      error
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return f.response, f.err
}

type fakePlanNotifier struct {
	notified int
}

func (f *fakePlanNotifier) NotifyPlanGenerated(ctx context.Context, userID primitive.ObjectID, days int) error {
	f.notified++
	return nil
}

func plannerProfile() *models.Profile {
	return &models.Profile{
		UserID:        primitive.NewObjectID(),
		Age:           30,
		Height:        170,
		Weight:        70,
		Gender:        "male",
		ActivityLevel: "moderate",
		FitnessGoal:   models.GoalWeightMaintain,
		MealFrequency: 3,
		Duration:      7,
	}
}

const planResponse = `[{"day":1,"breakfast":{"meal":"Oats","calories":500},"lunch":{"meal":"Rice and dal","calories":700},"dinner":{"meal":"Grilled paneer","calories":600}}]`

func TestGeneratePlanPersistsGoalAndPlan(t *testing.T) {
	profile := plannerProfile()
	goals := &fakeGoalWriter{}
	plans := &fakePlanStore{}
	notifier := &fakePlanNotifier{}
	svc := NewPlannerService(&fakeProfileSource{profile: profile}, goals, plans, &fakeGenerator{response: planResponse}, notifier)

	plan, err := svc.GeneratePlan(context.Background(), profile.UserID)
	require.NoError(t, err)

	require.Len(t, goals.created, 1)
	assert.Equal(t, 1, goals.deactivated)
	assert.True(t, goals.created[0].IsActive)
	assert.Equal(t, goals.created[0].ID, plan.GoalID)
	require.Len(t, plans.plans, 1)
	assert.Equal(t, 1, notifier.notified)
}

func TestGeneratePlanFailureLeavesGoalsUntouched(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeGenerator
	}{
		{"generator error", &fakeGenerator{err: &errs.GenerationError{Reason: "upstream unreachable"}}},
		{"malformed response", &fakeGenerator{response: "not json"}},
		{"empty plan", &fakeGenerator{response: "[]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := plannerProfile()
			goals := &fakeGoalWriter{}
			plans := &fakePlanStore{}
			notifier := &fakePlanNotifier{}
			svc := NewPlannerService(&fakeProfileSource{profile: profile}, goals, plans, tt.gen, notifier)

			_, err := svc.GeneratePlan(context.Background(), profile.UserID)
			require.Error(t, err)

			var gerr *errs.GenerationError
			assert.ErrorAs(t, err, &gerr)

			// A failed generation must not swap the active goal.
			assert.Zero(t, goals.deactivated)
			assert.Empty(t, goals.created)
			assert.Empty(t, plans.plans)
			assert.Zero(t, notifier.notified)
		})
	}
}
