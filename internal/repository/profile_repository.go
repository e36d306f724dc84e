package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/models"
	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/errs"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProfileRepository handles database operations for user profiles.
type ProfileRepository struct {
	collection *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{
		collection: db.Collection("profiles"),
	}
}

// UpsertProfile creates the profile on first setup and replaces it on
// later updates. One profile per user.
func (r *ProfileRepository) UpsertProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	now := time.Now()
	profile.UpdatedAt = now
	// created_at is written once on insert; a zero CreatedAt is omitted
	// from $set so updates never touch the stored value.
	profile.CreatedAt = time.Time{}

	filter := bson.M{"user_id": profile.UserID}
	update := bson.M{
		"$set":         profile,
		"$setOnInsert": bson.M{"created_at": now},
	}
	opts := options.Update().SetUpsert(true)

	result, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		logrus.WithError(err).Error("Failed to upsert profile")
		return nil, fmt.Errorf("failed to upsert profile: %v", err)
	}

	if id, ok := result.UpsertedID.(primitive.ObjectID); ok {
		profile.ID = id
	}

	logrus.WithField("userID", profile.UserID.Hex()).Info("Profile saved")
	return profile, nil
}

// GetProfileByUserID fetches the profile belonging to a user.
func (r *ProfileRepository) GetProfileByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error) {
	var profile models.Profile
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &errs.NotFoundError{Resource: "profile"}
		}
		logrus.WithError(err).WithField("userID", userID.Hex()).Error("Failed to find profile")
		return nil, fmt.Errorf("failed to find profile: %v", err)
	}
	return &profile, nil
}
