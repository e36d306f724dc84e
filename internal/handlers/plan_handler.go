package handlers

import (
	"net/http"

	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/services"
	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/logger"
	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/middleware"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanHandler handles HTTP requests for meal plan generation and goals.
type PlanHandler struct {
	Planner *services.PlannerService
	Goals   *services.GoalService
}

func NewPlanHandler(planner *services.PlannerService, goals *services.GoalService) *PlanHandler {
	return &PlanHandler{Planner: planner, Goals: goals}
}

// GeneratePlanHandler computes targets from the caller's profile and asks
// the generation service for a fresh plan.
// POST /plans/generate
func (h *PlanHandler) GeneratePlanHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	userID, _ := primitive.ObjectIDFromHex(claims.UserID)
	plan, err := h.Planner.GeneratePlan(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	logger.Log.WithField("userID", claims.UserID).Info("Plan generated via API")
	writeJSON(w, http.StatusCreated, plan)
}

// LatestPlanHandler returns the caller's most recent plan.
// GET /plans/latest
func (h *PlanHandler) LatestPlanHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	userID, _ := primitive.ObjectIDFromHex(claims.UserID)
	plan, err := h.Planner.LatestPlan(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, plan)
}

// ActiveGoalHandler returns the caller's active nutrition goal.
// GET /goals/active
func (h *PlanHandler) ActiveGoalHandler(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	userID, _ := primitive.ObjectIDFromHex(claims.UserID)
	goal, err := h.Goals.GetActiveGoal(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, goal)
}
