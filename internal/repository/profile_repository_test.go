package repository

import (
	"testing"
	"time"

	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpsertProfile zeroes CreatedAt before $set and writes created_at only
// through $setOnInsert. That only works if a zero CreatedAt stays out of
// the marshaled document, otherwise every save would reset the stored
// creation time.
func TestProfileCreatedAtOmittedWhenZero(t *testing.T) {
	profile := &models.Profile{
		UserID:        primitive.NewObjectID(),
		Age:           30,
		Height:        170,
		Weight:        70,
		Gender:        "male",
		ActivityLevel: "moderate",
		FitnessGoal:   models.GoalWeightMaintain,
		MealFrequency: 3,
		UpdatedAt:     time.Now(),
	}

	raw, err := bson.Marshal(profile)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))

	assert.NotContains(t, doc, "created_at")
	assert.Contains(t, doc, "updated_at")

	profile.CreatedAt = time.Now()
	raw, err = bson.Marshal(profile)
	require.NoError(t, err)
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Contains(t, doc, "created_at")
}
