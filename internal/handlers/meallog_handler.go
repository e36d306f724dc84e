package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/services"
	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/logger"
	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/middleware"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealLogHandler handles HTTP requests for meal tracking.
type MealLogHandler struct {
	Service *services.MealLogService
}

func NewMealLogHandler(service *services.MealLogService) *MealLogHandler {
	return &MealLogHandler{Service: service}
}

// LogMealHandler records a logged meal.
// POST /logs
func (h *MealLogHandler) LogMealHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req services.LogMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.WithError(err).Warn("Failed to decode meal log payload")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	userID, _ := primitive.ObjectIDFromHex(claims.UserID)
	log, err := h.Service.LogMeal(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, log)
}

// GetMealLogsHandler lists the caller's entries for a date.
// GET /logs?date=YYYY-MM-DD
func (h *MealLogHandler) GetMealLogsHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	userID, _ := primitive.ObjectIDFromHex(claims.UserID)
	logs, err := h.Service.GetMealLogs(r.Context(), userID, r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, logs)
}

// DailyNutritionHandler returns the aggregated intake for a date.
// GET /nutrition/daily?date=YYYY-MM-DD
func (h *MealLogHandler) DailyNutritionHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	userID, _ := primitive.ObjectIDFromHex(claims.UserID)
	totals, err := h.Service.GetDailyNutrition(r.Context(), userID, r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, totals)
}
