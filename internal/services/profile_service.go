package services

import (
	"context"
	"fmt"

	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/models"
	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/nutrition"
	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/repository"
	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileService encapsulates the business logic for user profiles.
type ProfileService struct {
	repo *repository.ProfileRepository
}

func NewProfileService(repo *repository.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// SaveProfile validates and stores the user's profile. Validation happens
// here so malformed numbers never reach the calculator.
func (s *ProfileService) SaveProfile(ctx context.Context, userID primitive.ObjectID, profile *models.Profile) (*models.Profile, error) {
	profile.UserID = userID

	if err := nutrition.ValidateProfile(profile); err != nil {
		logger.Log.WithError(err).WithField("user_id", userID.Hex()).Warn("Profile validation failed")
		return nil, err
	}

	saved, err := s.repo.UpsertProfile(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %v", err)
	}
	return saved, nil
}

// GetProfile retrieves the profile belonging to a user.
func (s *ProfileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error) {
	return s.repo.GetProfileByUserID(ctx, userID)
}
