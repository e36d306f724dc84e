package llm

import (
	"encoding/json"
	"strings"

	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/models"
	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/errs"
)

// cleanResponse strips markdown code fences and any prose around the JSON
// array. Models routinely wrap their output in ```json blocks even when
// told not to.
func cleanResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```javascript", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "[")
	end := strings.LastIndex(response, "]")
	if start != -1 && end != -1 && end > start {
		response = response[start : end+1]
	}
	return response
}

// ParsePlanResponse turns the raw generation output into plan days. Any
// shape problem is a GenerationError: the caller should ask the user to
// retry, not return an empty plan.
func ParsePlanResponse(response string) ([]models.PlanDay, error) {
	cleaned := cleanResponse(response)

	var days []models.PlanDay
	if err := json.Unmarshal([]byte(cleaned), &days); err != nil {
		return nil, &errs.GenerationError{Reason: "response is not valid JSON", Err: err}
	}

	if len(days) == 0 {
		return nil, &errs.GenerationError{Reason: "response contains no days"}
	}

	for i, day := range days {
		if day.Day <= 0 {
			days[i].Day = i + 1
		}
		for _, meal := range []models.PlanMeal{day.Breakfast, day.Lunch, day.Dinner} {
			if meal.Meal == "" {
				return nil, &errs.GenerationError{Reason: "a day is missing one of breakfast/lunch/dinner"}
			}
			if meal.Calories <= 0 {
				return nil, &errs.GenerationError{Reason: "a meal has a missing or non-positive calorie value"}
			}
		}
	}

	return days, nil
}
