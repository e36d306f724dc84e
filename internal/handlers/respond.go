package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/errs"
	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/logger"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps the error taxonomy to HTTP statuses: validation -> 400,
// not found -> 404, upstream generation -> 502 with a retry hint,
// everything else -> 500.
func writeError(w http.ResponseWriter, err error) {
	var verr *errs.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": verr.Error()})
		return
	}

	var nferr *errs.NotFoundError
	if errors.As(err, &nferr) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": nferr.Error()})
		return
	}

	var gerr *errs.GenerationError
	if errors.As(err, &gerr) {
		logger.Log.WithError(err).Warn("Meal plan generation failed")
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error": "Meal plan generation failed. Please try again.",
		})
		return
	}

	logger.Log.WithError(err).Error("Internal error")
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
}
