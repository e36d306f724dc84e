package llm

import (
	"testing"

	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPlan = `[
  {"day": 1,
   "breakfast": {"meal": "Oatmeal with berries", "calories": 400},
   "lunch": {"meal": "Grilled chicken salad", "calories": 600},
   "dinner": {"meal": "Salmon with rice", "calories": 700}},
  {"day": 2,
   "breakfast": {"meal": "Scrambled eggs", "calories": 350},
   "lunch": {"meal": "Lentil soup", "calories": 550},
   "dinner": {"meal": "Beef stir fry", "calories": 750}}
]`

func TestParsePlanResponsePlainJSON(t *testing.T) {
	days, err := ParsePlanResponse(validPlan)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, "Oatmeal with berries", days[0].Breakfast.Meal)
	assert.Equal(t, 700, days[0].Dinner.Calories)
}

func TestParsePlanResponseStripsFences(t *testing.T) {
	fenced := "```javascript\n" + validPlan + "\n```"
	days, err := ParsePlanResponse(fenced)
	require.NoError(t, err)
	assert.Len(t, days, 2)

	fencedJSON := "Here is your plan:\n```json\n" + validPlan + "\n```\nEnjoy!"
	days, err = ParsePlanResponse(fencedJSON)
	require.NoError(t, err)
	assert.Len(t, days, 2)
}

func TestParsePlanResponseNotJSON(t *testing.T) {
	_, err := ParsePlanResponse("not json")
	require.Error(t, err)

	var gerr *errs.GenerationError
	require.ErrorAs(t, err, &gerr)
}

func TestParsePlanResponseEmptyArray(t *testing.T) {
	var gerr *errs.GenerationError
	_, err := ParsePlanResponse("[]")
	require.ErrorAs(t, err, &gerr)
}

func TestParsePlanResponseMissingMeal(t *testing.T) {
	missing := `[
  {"day": 1,
   "breakfast": {"meal": "Oatmeal", "calories": 400},
   "dinner": {"meal": "Salmon", "calories": 700}}
]`
	var gerr *errs.GenerationError
	_, err := ParsePlanResponse(missing)
	require.ErrorAs(t, err, &gerr)
}

func TestParsePlanResponseBadCalories(t *testing.T) {
	zero := `[
  {"day": 1,
   "breakfast": {"meal": "Oatmeal", "calories": 0},
   "lunch": {"meal": "Salad", "calories": 600},
   "dinner": {"meal": "Salmon", "calories": 700}}
]`
	var gerr *errs.GenerationError
	_, err := ParsePlanResponse(zero)
	require.ErrorAs(t, err, &gerr)
}

func TestParsePlanResponseNumbersDays(t *testing.T) {
	unnumbered := `[
  {"breakfast": {"meal": "Oatmeal", "calories": 400},
   "lunch": {"meal": "Salad", "calories": 600},
   "dinner": {"meal": "Salmon", "calories": 700}}
]`
	days, err := ParsePlanResponse(unnumbered)
	require.NoError(t, err)
	assert.Equal(t, 1, days[0].Day)
}
