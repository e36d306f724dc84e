package llm

import (
	"testing"

	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/models"
	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/nutrition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPlanPrompt(t *testing.T) {
	profile := &models.Profile{
		Age: 30, Height: 170, Weight: 70,
		Gender:        "male",
		ActivityLevel: "moderate",
		FitnessGoal:   models.GoalWeightMaintain,
		MealFrequency: 3,
		Duration:      7,
		Allergies:     []string{"peanuts", "shellfish"},
		CuisineRegion: "mediterranean",
	}

	targets, err := nutrition.CalculateTargets(profile)
	require.NoError(t, err)

	prompt := BuildPlanPrompt(profile, targets)

	assert.Contains(t, prompt, "Calories: 2594 kcal")
	assert.Contains(t, prompt, "Protein: 126 g")
	assert.Contains(t, prompt, "peanuts, shellfish")
	assert.Contains(t, prompt, "mediterranean")
	assert.Contains(t, prompt, "meal plan for 7 days")
	assert.Contains(t, prompt, `"breakfast"`)
	assert.Contains(t, prompt, "valid JSON array")
	// Per-meal lines are present for every meal in the frequency.
	assert.Contains(t, prompt, "- breakfast:")
	assert.Contains(t, prompt, "- lunch:")
	assert.Contains(t, prompt, "- dinner:")
}

func TestBuildPlanPromptDefaultsDuration(t *testing.T) {
	profile := &models.Profile{
		Age: 25, Height: 165, Weight: 60,
		Gender:        "female",
		ActivityLevel: "light",
		FitnessGoal:   models.GoalWeightLoss,
		MealFrequency: 4,
	}

	targets, err := nutrition.CalculateTargets(profile)
	require.NoError(t, err)

	prompt := BuildPlanPrompt(profile, targets)
	assert.Contains(t, prompt, "meal plan for 7 days")
}
