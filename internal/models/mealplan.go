package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanMeal is one meal suggestion inside a generated plan day.
type PlanMeal struct {
	Meal     string `bson:"meal" json:"meal"`
	Calories int    `bson:"calories" json:"calories"`
}

// PlanDay is the generated meal suggestions for a single day.
type PlanDay struct {
	Day       int      `bson:"day" json:"day"`
	Breakfast PlanMeal `bson:"breakfast" json:"breakfast"`
	Lunch     PlanMeal `bson:"lunch" json:"lunch"`
	Dinner    PlanMeal `bson:"dinner" json:"dinner"`
}

// MealPlan is a persisted multi-day plan produced by the generator.
type MealPlan struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	GoalID    primitive.ObjectID `bson:"goal_id" json:"goal_id"`
	Days      []PlanDay          `bson:"days" json:"days"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
