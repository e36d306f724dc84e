package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fitness goal values accepted on a profile.
const (
	GoalWeightLoss     = "weight-loss"
	GoalWeightGain     = "weight-gain"
	GoalWeightMaintain = "weight-maintain"
)

// Profile holds the user attributes the nutrition calculator and the plan
// generator work from. One profile per user.
type Profile struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID            primitive.ObjectID `bson:"user_id" json:"user_id"`
	Age               int                `bson:"age" json:"age"`
	Height            float64            `bson:"height" json:"height"` // cm
	Weight            float64            `bson:"weight" json:"weight"` // kg
	Gender            string             `bson:"gender" json:"gender"`
	ActivityLevel     string             `bson:"activity_level" json:"activity_level"`
	FitnessGoal       string             `bson:"fitness_goal" json:"fitness_goal"`
	TargetWeight      float64            `bson:"target_weight,omitempty" json:"target_weight,omitempty"`
	DietPreference    string             `bson:"diet_preference,omitempty" json:"diet_preference,omitempty"`
	Allergies         []string           `bson:"allergies,omitempty" json:"allergies,omitempty"`
	MedicalConditions []string           `bson:"medical_conditions,omitempty" json:"medical_conditions,omitempty"`
	MealFrequency     int                `bson:"meal_frequency" json:"meal_frequency"`
	PlanType          string             `bson:"plan_type,omitempty" json:"plan_type,omitempty"`
	CuisineRegion     string             `bson:"cuisine_region,omitempty" json:"cuisine_region,omitempty"`
	Duration          int                `bson:"duration" json:"duration"` // plan length in days
	CreatedAt         time.Time          `bson:"created_at,omitempty" json:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updated_at"`
}
