package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meal type values used across logs, notifications and goals.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealSnack     = "snack"
	MealDinner    = "dinner"
)

// DateLayout is the day key format used on meal logs and notifications.
const DateLayout = "2006-01-02"

// MealLog records that the user ate a serving of a food for a given meal
// and date. Append-only; its existence is the source of truth for "was
// this meal eaten today".
type MealLog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"user_id" json:"user_id"`
	FoodID      primitive.ObjectID `bson:"food_id" json:"food_id"`
	FoodName    string             `bson:"food_name" json:"food_name"`
	Date        string             `bson:"date" json:"date"` // YYYY-MM-DD
	MealType    string             `bson:"meal_type" json:"meal_type"`
	ServingType string             `bson:"serving_type" json:"serving_type"`
	Quantity    float64            `bson:"quantity" json:"quantity"`
	Calories    float64            `bson:"calories" json:"calories"`
	Protein     float64            `bson:"protein" json:"protein"`
	Carbs       float64            `bson:"carbs" json:"carbs"`
	Fat         float64            `bson:"fat" json:"fat"`
	Fiber       float64            `bson:"fiber" json:"fiber"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// DailyNutrition is the aggregated macro intake for one user and day.
type DailyNutrition struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Meals    int     `json:"meals"`
}
