package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealTargets is the per-meal share of the daily macro targets, in whole
// grams/kcal.
type MealTargets struct {
	Calories int `bson:"calories" json:"calories"`
	Protein  int `bson:"protein" json:"protein"`
	Carbs    int `bson:"carbs" json:"carbs"`
	Fat      int `bson:"fat" json:"fat"`
	Fiber    int `bson:"fiber" json:"fiber"`
}

// NutritionGoal is a time-bounded snapshot of the daily calorie/macro
// targets derived from a profile. Goals are deactivated, never deleted;
// the reminder scheduler assumes at most one active goal per user.
type NutritionGoal struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID     `bson:"user_id" json:"user_id"`
	Calories  float64                `bson:"calories" json:"calories"`
	Protein   float64                `bson:"protein" json:"protein"` // grams
	Carbs     float64                `bson:"carbs" json:"carbs"`
	Fat       float64                `bson:"fat" json:"fat"`
	Fiber     int                    `bson:"fiber" json:"fiber"`
	PerMeal   map[string]MealTargets `bson:"per_meal,omitempty" json:"per_meal,omitempty"`
	StartDate time.Time              `bson:"start_date" json:"start_date"`
	EndDate   *time.Time             `bson:"end_date,omitempty" json:"end_date,omitempty"`
	IsActive  bool                   `bson:"is_active" json:"is_active"`
	CreatedAt time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time              `bson:"updated_at" json:"updated_at"`
}
