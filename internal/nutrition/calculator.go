// Package nutrition computes daily calorie and macronutrient targets from
// a user profile. All functions are pure and synchronous.
package nutrition

import (
	"fmt"
	"math"

	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/models"
	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/errs"
)

// activityMultipliers maps activity level strings to their TDEE multiplier.
var activityMultipliers = map[string]float64{
	"sedentary": 1.2,
	"light":     1.375,
	"moderate":  1.55,
	"active":    1.725,
	"extreme":   1.9,
}

// proteinPerKg by fitness goal, grams of protein per kg of body weight.
var proteinPerKg = map[string]float64{
	models.GoalWeightLoss:     2.0,
	models.GoalWeightGain:     1.6,
	models.GoalWeightMaintain: 1.8,
}

// calorieAdjustment is the daily deficit/surplus applied to TDEE per goal.
// The +-500 kcal/day figure is a design choice (roughly 0.5 kg/week).
const calorieAdjustment = 500.0

// Targets is the full set of daily targets plus the per-meal breakdown.
type Targets struct {
	Calories float64
	Protein  float64 // grams
	Carbs    float64
	Fat      float64
	Fiber    int
	PerMeal  map[string]models.MealTargets
}

// BMR computes the Basal Metabolic Rate via the Mifflin-St Jeor equation.
// Any gender other than "male" uses the female constant.
func BMR(weightKg, heightCm float64, age int, gender string) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == "male" {
		return bmr + 5
	}
	return bmr - 161
}

// TDEE scales BMR by the activity multiplier. Unknown levels fall back to
// sedentary (1.2).
func TDEE(bmr float64, activityLevel string) float64 {
	mult, ok := activityMultipliers[activityLevel]
	if !ok {
		mult = 1.2
	}
	return bmr * mult
}

// TargetCalories adjusts TDEE for the fitness goal: a fixed deficit for
// weight loss, a fixed surplus for weight gain, unchanged for maintenance.
func TargetCalories(tdee float64, fitnessGoal string) float64 {
	switch fitnessGoal {
	case models.GoalWeightLoss:
		return tdee - calorieAdjustment
	case models.GoalWeightGain:
		return tdee + calorieAdjustment
	default:
		return tdee
	}
}

// FiberTarget returns the daily fiber target in grams by age and gender.
func FiberTarget(age int, gender string) int {
	switch gender {
	case "male":
		if age <= 50 {
			return 38
		}
		return 30
	case "female":
		if age <= 50 {
			return 25
		}
		return 21
	default:
		return 25
	}
}

// MacroSplit divides the calorie target into protein, fat and carb grams.
// Protein comes from body weight and goal, fat is 25% of calories, carbs
// take the remainder (floored at zero).
func MacroSplit(calories, weightKg float64, fitnessGoal string) (protein, carbs, fat float64) {
	ppk, ok := proteinPerKg[fitnessGoal]
	if !ok {
		ppk = proteinPerKg[models.GoalWeightMaintain]
	}
	protein = weightKg * ppk
	fat = math.Round(calories * 0.25 / 9)

	carbKcal := calories - protein*4 - fat*9
	if carbKcal < 0 {
		carbKcal = 0
	}
	carbs = math.Round(carbKcal / 4)
	return protein, carbs, fat
}

// mealOrder is the order meals are assigned as meal frequency grows.
var mealOrder = []string{models.MealBreakfast, models.MealLunch, models.MealSnack, models.MealDinner}

// MealNames returns the meal types covered by a given daily meal frequency.
// Three meals a day means breakfast/lunch/dinner; four adds a snack;
// higher frequencies number the extra snacks.
func MealNames(frequency int) []string {
	switch {
	case frequency <= 0:
		return nil
	case frequency == 1:
		return []string{models.MealLunch}
	case frequency == 2:
		return []string{models.MealBreakfast, models.MealDinner}
	case frequency == 3:
		return []string{models.MealBreakfast, models.MealLunch, models.MealDinner}
	case frequency == 4:
		return append([]string(nil), mealOrder...)
	default:
		names := append([]string(nil), mealOrder...)
		for i := 5; i <= frequency; i++ {
			names = append(names, fmt.Sprintf("snack-%d", i-3))
		}
		return names
	}
}

// PerMealTargets divides daily targets evenly across the meal frequency,
// rounding each share to the nearest whole unit.
func PerMealTargets(t Targets, frequency int) map[string]models.MealTargets {
	names := MealNames(frequency)
	if len(names) == 0 {
		return nil
	}

	n := float64(len(names))
	share := models.MealTargets{
		Calories: int(math.Round(t.Calories / n)),
		Protein:  int(math.Round(t.Protein / n)),
		Carbs:    int(math.Round(t.Carbs / n)),
		Fat:      int(math.Round(t.Fat / n)),
		Fiber:    int(math.Round(float64(t.Fiber) / n)),
	}

	perMeal := make(map[string]models.MealTargets, len(names))
	for _, name := range names {
		perMeal[name] = share
	}
	return perMeal
}

// ValidateProfile rejects profiles the calculator cannot safely work from.
// Without this the formulas would silently produce NaN or nonsense.
func ValidateProfile(p *models.Profile) error {
	if p == nil {
		return errs.NewValidation("profile", "missing")
	}
	if p.Age <= 0 {
		return errs.NewValidation("age", "must be positive")
	}
	if p.Height <= 0 {
		return errs.NewValidation("height", "must be positive")
	}
	if p.Weight <= 0 {
		return errs.NewValidation("weight", "must be positive")
	}
	if p.MealFrequency < 1 || p.MealFrequency > 6 {
		return errs.NewValidation("meal_frequency", "must be between 1 and 6")
	}
	return nil
}

// CalculateTargets validates the profile and derives the full daily and
// per-meal targets from it.
func CalculateTargets(p *models.Profile) (*Targets, error) {
	if err := ValidateProfile(p); err != nil {
		return nil, err
	}

	bmr := BMR(p.Weight, p.Height, p.Age, p.Gender)
	tdee := TDEE(bmr, p.ActivityLevel)
	calories := TargetCalories(tdee, p.FitnessGoal)

	protein, carbs, fat := MacroSplit(calories, p.Weight, p.FitnessGoal)

	t := Targets{
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		Fiber:    FiberTarget(p.Age, p.Gender),
	}
	t.PerMeal = PerMealTargets(t, p.MealFrequency)
	return &t, nil
}
