package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification types. Reminder and skipped are created by the scheduler,
// plan notifications by user-triggered plan generation.
const (
	NotificationReminder = "reminder"
	NotificationSkipped  = "skipped"
	NotificationPlan     = "plan"
)

// Notification is a message shown to the user. For scheduler-created
// notifications the (UserID, Date, MealType, Type) tuple is unique and acts
// as the deduplication ledger.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Type      string             `bson:"type" json:"type"` // "reminder", "skipped"
	Date      string             `bson:"date,omitempty" json:"date,omitempty"`           // YYYY-MM-DD
	MealType  string             `bson:"meal_type,omitempty" json:"meal_type,omitempty"` // breakfast/lunch/snack/dinner
	Title     string             `bson:"title" json:"title"`
	Message   string             `bson:"message" json:"message"`
	Read      bool               `bson:"read" json:"read"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	ExpiresAt time.Time          `bson:"expires_at" json:"expires_at"` // For auto-deletion after 7 days
}
