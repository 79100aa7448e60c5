package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	predictionservice "github.com/matchday-club/predictor/app/modules/prediction/application"
	predictiontypes "github.com/matchday-club/predictor/app/modules/prediction/domain/types"
)

// PredictionHandlers handles HTTP requests for predictions.
type PredictionHandlers struct {
	predictions predictionservice.Service
}

// NewPredictionHandlers creates a new PredictionHandlers instance.
func NewPredictionHandlers(predictions predictionservice.Service) *PredictionHandlers {
	return &PredictionHandlers{predictions: predictions}
}

type createPredictionRequest struct {
	MatchID   uuid.UUID `json:"match_id"`
	HomeGoals int       `json:"home_goals"`
	AwayGoals int       `json:"away_goals"`
}

type updatePredictionRequest struct {
	HomeGoals int `json:"home_goals"`
	AwayGoals int `json:"away_goals"`
}

type listPredictionsResponse struct {
	Predictions []predictiontypes.Prediction `json:"predictions"`
	Total       int                          `json:"total"`
}

// CreatePrediction records the caller's guess for a match.
func (h *PredictionHandlers) CreatePrediction(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createPredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	prediction, err := h.predictions.CreatePrediction(r.Context(), userID, req.MatchID, req.HomeGoals, req.AwayGoals)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, prediction)
}

// UpdatePrediction replaces the caller's predicted goals.
func (h *PredictionHandlers) UpdatePrediction(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "predictionID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid prediction ID")
		return
	}

	var req updatePredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	prediction, err := h.predictions.UpdatePrediction(r.Context(), id, userID, req.HomeGoals, req.AwayGoals)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prediction)
}

// DeletePrediction removes the caller's prediction.
func (h *PredictionHandlers) DeletePrediction(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "predictionID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid prediction ID")
		return
	}

	if err := h.predictions.DeletePrediction(r.Context(), id, userID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetPrediction returns one prediction.
func (h *PredictionHandlers) GetPrediction(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "predictionID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid prediction ID")
		return
	}

	prediction, err := h.predictions.GetPrediction(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prediction)
}

// ListMyPredictions returns the caller's predictions, newest first.
func (h *PredictionHandlers) ListMyPredictions(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	q := r.URL.Query()
	filter := predictiontypes.PredictionFilter{UserID: userID}
	if matchID, err := uuid.Parse(q.Get("match_id")); err == nil {
		filter.MatchID = matchID
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	predictions, total, err := h.predictions.ListPredictions(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if predictions == nil {
		predictions = []predictiontypes.Prediction{}
	}
	writeJSON(w, http.StatusOK, listPredictionsResponse{Predictions: predictions, Total: total})
}
