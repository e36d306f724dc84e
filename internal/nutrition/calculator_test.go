package nutrition

import (
	"testing"

	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/models"
	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBMR(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		height   float64
		age      int
		gender   string
		expected float64
	}{
		{"male", 70, 170, 30, "male", 10*70 + 6.25*170 - 5*30 + 5},
		{"female", 60, 165, 25, "female", 10*60 + 6.25*165 - 5*25 - 161},
		{"other gender uses female constant", 60, 165, 25, "nonbinary", 10*60 + 6.25*165 - 5*25 - 161},
		{"empty gender uses female constant", 70, 170, 30, "", 10*70 + 6.25*170 - 5*30 - 161},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, BMR(tt.weight, tt.height, tt.age, tt.gender), 1e-9)
		})
	}
}

func TestTDEE(t *testing.T) {
	bmr := 1500.0
	tests := []struct {
		level string
		mult  float64
	}{
		{"sedentary", 1.2},
		{"light", 1.375},
		{"moderate", 1.55},
		{"active", 1.725},
		{"extreme", 1.9},
		{"couch-potato", 1.2}, // unknown level defaults to sedentary
		{"", 1.2},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.InDelta(t, bmr*tt.mult, TDEE(bmr, tt.level), 1e-9)
		})
	}
}

func TestTargetCalories(t *testing.T) {
	tdee := 2500.0
	assert.InDelta(t, 2000.0, TargetCalories(tdee, models.GoalWeightLoss), 1e-9)
	assert.InDelta(t, 3000.0, TargetCalories(tdee, models.GoalWeightGain), 1e-9)
	assert.InDelta(t, 2500.0, TargetCalories(tdee, models.GoalWeightMaintain), 1e-9)
	assert.InDelta(t, 2500.0, TargetCalories(tdee, "unknown"), 1e-9)
}

func TestFiberTarget(t *testing.T) {
	assert.Equal(t, 38, FiberTarget(30, "male"))
	assert.Equal(t, 30, FiberTarget(51, "male"))
	assert.Equal(t, 25, FiberTarget(50, "female"))
	assert.Equal(t, 21, FiberTarget(60, "female"))
	assert.Equal(t, 25, FiberTarget(40, "other"))
}

func TestMacroSplitMaintain(t *testing.T) {
	protein, carbs, fat := MacroSplit(2000, 70, models.GoalWeightMaintain)

	assert.InDelta(t, 126.0, protein, 1e-9) // 70 * 1.8
	assert.InDelta(t, 56.0, fat, 1e-9)      // round(2000*0.25/9)
	assert.InDelta(t, 248.0, carbs, 1e-9)   // (2000 - 504 - 504) / 4

	// Macro calories never exceed the target.
	total := protein*4 + carbs*4 + fat*9
	assert.LessOrEqual(t, total, 2000.0+2) // rounding slack of half a gram of carbs
}

func TestMacroSplitCarbsFlooredAtZero(t *testing.T) {
	// Tiny calorie budget with heavy protein demand: carbs must not go
	// negative.
	_, carbs, _ := MacroSplit(600, 100, models.GoalWeightLoss)
	assert.GreaterOrEqual(t, carbs, 0.0)
}

func TestMealNames(t *testing.T) {
	assert.Nil(t, MealNames(0))
	assert.Equal(t, []string{"lunch"}, MealNames(1))
	assert.Equal(t, []string{"breakfast", "dinner"}, MealNames(2))
	assert.Equal(t, []string{"breakfast", "lunch", "dinner"}, MealNames(3))
	assert.Equal(t, []string{"breakfast", "lunch", "snack", "dinner"}, MealNames(4))
	assert.Equal(t, []string{"breakfast", "lunch", "snack", "dinner", "snack-2"}, MealNames(5))
	assert.Equal(t, []string{"breakfast", "lunch", "snack", "dinner", "snack-2", "snack-3"}, MealNames(6))
}

func TestPerMealTargetsFiveMeals(t *testing.T) {
	profile := &models.Profile{
		Age:           30,
		Height:        170,
		Weight:        70,
		Gender:        "male",
		ActivityLevel: "moderate",
		FitnessGoal:   models.GoalWeightMaintain,
		MealFrequency: 5,
	}

	targets, err := CalculateTargets(profile)
	require.NoError(t, err)

	// Extra snacks get their own keys so no share is lost to a duplicate.
	require.Len(t, targets.PerMeal, 5)
	require.Contains(t, targets.PerMeal, "snack-2")

	var calories int
	for _, share := range targets.PerMeal {
		assert.Equal(t, targets.PerMeal["breakfast"], share)
		calories += share.Calories
	}
	assert.InDelta(t, targets.Calories, float64(calories), 5) // rounding slack
}

func TestCalculateTargetsScenario(t *testing.T) {
	profile := &models.Profile{
		Age:           30,
		Height:        170,
		Weight:        70,
		Gender:        "male",
		ActivityLevel: "moderate",
		FitnessGoal:   models.GoalWeightMaintain,
		MealFrequency: 3,
	}

	targets, err := CalculateTargets(profile)
	require.NoError(t, err)

	// BMR = 10*70 + 6.25*170 - 5*30 + 5 = 1673.75
	assert.InDelta(t, 1673.75, BMR(70, 170, 30, "male"), 1e-9)
	// TDEE = 1673.75 * 1.55 = 2594.3125, unchanged for maintenance.
	assert.InDelta(t, 2594.3125, targets.Calories, 1e-9)
	assert.InDelta(t, 126.0, targets.Protein, 1e-9)
	assert.Equal(t, 38, targets.Fiber)

	require.Len(t, targets.PerMeal, 3)
	perMeal := targets.PerMeal["breakfast"]
	assert.Equal(t, 865, perMeal.Calories) // round(2594.3125 / 3)
	assert.Equal(t, 42, perMeal.Protein)   // round(126 / 3)
	assert.Equal(t, perMeal, targets.PerMeal["lunch"])
	assert.Equal(t, perMeal, targets.PerMeal["dinner"])
}

func TestCalculateTargetsValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Profile)
		wantErr string
	}{
		{"zero age", func(p *models.Profile) { p.Age = 0 }, "age"},
		{"negative weight", func(p *models.Profile) { p.Weight = -70 }, "weight"},
		{"zero height", func(p *models.Profile) { p.Height = 0 }, "height"},
		{"meal frequency too high", func(p *models.Profile) { p.MealFrequency = 9 }, "meal_frequency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &models.Profile{
				Age: 30, Height: 170, Weight: 70,
				Gender: "male", ActivityLevel: "moderate",
				FitnessGoal: models.GoalWeightMaintain, MealFrequency: 3,
			}
			tt.mutate(profile)

			_, err := CalculateTargets(profile)
			require.Error(t, err)

			var verr *errs.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantErr, verr.Field)
		})
	}

	var verr *errs.ValidationError
	_, err := CalculateTargets(nil)
	require.ErrorAs(t, err, &verr)
}
