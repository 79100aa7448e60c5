package api

import (
	"encoding/json"
	"errors"
	"net/http"

	matchservice "github.com/matchday-club/predictor/app/modules/match/application"
	predictionservice "github.com/matchday-club/predictor/app/modules/prediction/application"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps application errors onto HTTP statuses. Anything
// unrecognized is an internal error and the message is not leaked.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, predictionservice.ErrMatchNotFound),
		errors.Is(err, predictionservice.ErrPredictionNotFound),
		errors.Is(err, matchservice.ErrMatchNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, predictionservice.ErrDuplicatePrediction):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, predictionservice.ErrGateLocked):
		writeError(w, http.StatusLocked, err.Error())
	case errors.Is(err, predictionservice.ErrNotOwner):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, predictionservice.ErrInvalidGoals),
		errors.Is(err, matchservice.ErrInvalidMatch),
		errors.Is(err, matchservice.ErrInvalidStatus),
		errors.Is(err, matchservice.ErrInvalidScore):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
