package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/models"
	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/services"
	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/logger"
	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/middleware"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileHandler handles HTTP requests for profile setup and retrieval.
type ProfileHandler struct {
	Service *services.ProfileService
}

func NewProfileHandler(service *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{Service: service}
}

// SaveProfileHandler creates or updates the caller's profile.
// PUT /profile
func (h *ProfileHandler) SaveProfileHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var profile models.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		logger.Log.WithError(err).Warn("Failed to decode profile payload")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	userID, _ := primitive.ObjectIDFromHex(claims.UserID)
	saved, err := h.Service.SaveProfile(r.Context(), userID, &profile)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, saved)
}

// GetProfileHandler returns the caller's profile.
// GET /profile
func (h *ProfileHandler) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	userID, _ := primitive.ObjectIDFromHex(claims.UserID)
	profile, err := h.Service.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
