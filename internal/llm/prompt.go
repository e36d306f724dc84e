package llm

import (
	"fmt"
	"strings"

	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/models"
	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/nutrition"
)

// BuildPlanPrompt assembles the natural-language instruction payload for a
// multi-day meal plan: profile attributes, daily and per-meal macro
// targets, and strict formatting instructions for the response.
func BuildPlanPrompt(p *models.Profile, t *nutrition.Targets) string {
	var b strings.Builder

	b.WriteString("You are a professional nutritionist. Create a personalized meal plan based on the user's profile and targets.\n\n")

	b.WriteString("USER PROFILE:\n")
	b.WriteString(fmt.Sprintf("- Age: %d years\n", p.Age))
	b.WriteString(fmt.Sprintf("- Gender: %s\n", p.Gender))
	b.WriteString(fmt.Sprintf("- Height: %.0f cm\n", p.Height))
	b.WriteString(fmt.Sprintf("- Weight: %.0f kg\n", p.Weight))
	b.WriteString(fmt.Sprintf("- Activity Level: %s\n", p.ActivityLevel))
	b.WriteString(fmt.Sprintf("- Fitness Goal: %s\n", p.FitnessGoal))
	if p.DietPreference != "" {
		b.WriteString(fmt.Sprintf("- Diet Preference: %s\n", p.DietPreference))
	}
	if p.CuisineRegion != "" {
		b.WriteString(fmt.Sprintf("- Preferred Cuisine: %s\n", p.CuisineRegion))
	}
	if len(p.Allergies) > 0 {
		b.WriteString(fmt.Sprintf("- Allergies (must avoid): %s\n", strings.Join(p.Allergies, ", ")))
	}
	if len(p.MedicalConditions) > 0 {
		b.WriteString(fmt.Sprintf("- Medical Conditions: %s\n", strings.Join(p.MedicalConditions, ", ")))
	}
	b.WriteString("\n")

	b.WriteString("DAILY MACRO TARGETS:\n")
	b.WriteString(fmt.Sprintf("- Calories: %.0f kcal\n", t.Calories))
	b.WriteString(fmt.Sprintf("- Protein: %.0f g\n", t.Protein))
	b.WriteString(fmt.Sprintf("- Carbs: %.0f g\n", t.Carbs))
	b.WriteString(fmt.Sprintf("- Fat: %.0f g\n", t.Fat))
	b.WriteString(fmt.Sprintf("- Fiber: %d g\n", t.Fiber))
	b.WriteString("\n")

	if len(t.PerMeal) > 0 {
		b.WriteString("PER-MEAL TARGETS:\n")
		for _, name := range nutrition.MealNames(p.MealFrequency) {
			mt, ok := t.PerMeal[name]
			if !ok {
				continue
			}
			b.WriteString(fmt.Sprintf("- %s: %d kcal, %dg protein, %dg carbs, %dg fat\n",
				name, mt.Calories, mt.Protein, mt.Carbs, mt.Fat))
		}
		b.WriteString("\n")
	}

	days := p.Duration
	if days <= 0 {
		days = 7
	}

	b.WriteString("TASK:\n")
	b.WriteString(fmt.Sprintf("Create a meal plan for %d days. Each day has breakfast, lunch and dinner.\n", days))
	b.WriteString("Meals must respect the diet preference, avoid all listed allergies, and together approach the daily calorie target.\n\n")

	b.WriteString("RESPONSE FORMAT:\n")
	b.WriteString("Return ONLY a valid JSON array, no markdown, no commentary, in exactly this structure:\n")
	b.WriteString("[\n")
	b.WriteString("  {\n")
	b.WriteString("    \"day\": 1,\n")
	b.WriteString("    \"breakfast\": {\"meal\": \"Oatmeal with berries\", \"calories\": 400},\n")
	b.WriteString("    \"lunch\": {\"meal\": \"Grilled chicken salad\", \"calories\": 600},\n")
	b.WriteString("    \"dinner\": {\"meal\": \"Salmon with rice\", \"calories\": 700}\n")
	b.WriteString("  }\n")
	b.WriteString("]\n")
	b.WriteString("The \"calories\" values must be numbers, not strings.\n")

	return b.String()
}
