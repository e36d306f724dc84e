package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/models"
	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/services"
	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/logger"
)

// FoodHandler handles HTTP requests for the food catalog.
type FoodHandler struct {
	Service *services.FoodService
}

func NewFoodHandler(service *services.FoodService) *FoodHandler {
	return &FoodHandler{Service: service}
}

// CreateFoodHandler adds a catalog entry. Admin only.
// POST /foods
func (h *FoodHandler) CreateFoodHandler(w http.ResponseWriter, r *http.Request) {
	var food models.Food
	if err := json.NewDecoder(r.Body).Decode(&food); err != nil {
		logger.Log.WithError(err).Warn("Failed to decode food payload")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateFood(r.Context(), &food)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// GetFoodHandler returns a single catalog entry.
// GET /foods/{id}
func (h *FoodHandler) GetFoodHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	food, err := h.Service.GetFood(r.Context(), vars["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, food)
}

// ListFoodsHandler lists catalog entries with optional filters.
// GET /foods?meal_type=breakfast&category=grains
func (h *FoodHandler) ListFoodsHandler(w http.ResponseWriter, r *http.Request) {
	foods, err := h.Service.ListFoods(r.Context(), r.URL.Query().Get("meal_type"), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, foods)
}
