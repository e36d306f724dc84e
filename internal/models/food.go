package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Serving is one way of portioning a food, with the macro values that one
// serving contributes.
type Serving struct {
	Type     string  `bson:"type" json:"type"` // e.g. "cup", "piece", "100g"
	Quantity float64 `bson:"quantity" json:"quantity"`
	WeightG  float64 `bson:"weight_g,omitempty" json:"weight_g,omitempty"`
	VolumeML float64 `bson:"volume_ml,omitempty" json:"volume_ml,omitempty"`
	Calories float64 `bson:"calories" json:"calories"`
	Protein  float64 `bson:"protein" json:"protein"`
	Carbs    float64 `bson:"carbs" json:"carbs"`
	Fat      float64 `bson:"fat" json:"fat"`
	Fiber    float64 `bson:"fiber" json:"fiber"`
}

// Food is a catalog entry. Read-only from the tracking side.
type Food struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	MealTypes   []string           `bson:"meal_types" json:"meal_types"`
	Category    string             `bson:"category" json:"category"`
	Subcategory string             `bson:"subcategory,omitempty" json:"subcategory,omitempty"`
	Servings    []Serving          `bson:"servings" json:"servings"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// ServingByType returns the serving definition matching the given type.
func (f *Food) ServingByType(servingType string) (*Serving, bool) {
	for i := range f.Servings {
		if f.Servings[i].Type == servingType {
			return &f.Servings[i], true
		}
	}
	return nil, false
}
