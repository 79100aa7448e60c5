package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	matchservice "github.com/matchday-club/predictor/app/modules/match/application"
	matchtypes "github.com/matchday-club/predictor/app/modules/match/domain/types"
)

// MatchHandlers handles HTTP requests for matches.
type MatchHandlers struct {
	matches matchservice.Service
}

// NewMatchHandlers creates a new MatchHandlers instance.
func NewMatchHandlers(matches matchservice.Service) *MatchHandlers {
	return &MatchHandlers{matches: matches}
}

type createMatchRequest struct {
	HomeTeam    string    `json:"home_team"`
	AwayTeam    string    `json:"away_team"`
	KickoffTime time.Time `json:"kickoff_time"`
	Round       string    `json:"round,omitempty"`
	Venue       string    `json:"venue,omitempty"`
}

type listMatchesResponse struct {
	Matches []matchservice.MatchDetail `json:"matches"`
	Total   int                        `json:"total"`
	Page    int                        `json:"page"`
	Limit   int                        `json:"limit"`
}

// ListMatches returns a page of fixtures.
func (h *MatchHandlers) ListMatches(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := matchtypes.MatchFilter{
		Status: matchtypes.MatchStatus(q.Get("status")),
		Round:  q.Get("round"),
		Team:   q.Get("team"),
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	if filter.Status != "" && !filter.Status.IsValid() {
		writeError(w, http.StatusBadRequest, "unknown status filter")
		return
	}

	matches, total, err := h.matches.ListMatches(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if matches == nil {
		matches = []matchservice.MatchDetail{}
	}
	writeJSON(w, http.StatusOK, listMatchesResponse{
		Matches: matches,
		Total:   total,
		Page:    filter.Page,
		Limit:   filter.Limit,
	})
}

// GetMatch returns one fixture with its gate state and countdown.
func (h *MatchHandlers) GetMatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "matchID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid match ID")
		return
	}

	detail, err := h.matches.GetMatch(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// ListLiveMatches returns every match currently in play.
func (h *MatchHandlers) ListLiveMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := h.matches.ListLiveMatches(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if matches == nil {
		matches = []matchtypes.Match{}
	}
	writeJSON(w, http.StatusOK, matches)
}

// CreateMatch adds a fixture. Admin only.
func (h *MatchHandlers) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var req createMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	match, err := h.matches.CreateMatch(r.Context(), matchservice.CreateMatchInput{
		HomeTeam:    req.HomeTeam,
		AwayTeam:    req.AwayTeam,
		KickoffTime: req.KickoffTime,
		Round:       req.Round,
		Venue:       req.Venue,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, match)
}

type updateMatchRequest struct {
	HomeTeam    *string                 `json:"home_team,omitempty"`
	AwayTeam    *string                 `json:"away_team,omitempty"`
	KickoffTime *time.Time              `json:"kickoff_time,omitempty"`
	HomeScore   *int                    `json:"home_score,omitempty"`
	AwayScore   *int                    `json:"away_score,omitempty"`
	Status      *matchtypes.MatchStatus `json:"status,omitempty"`
	Round       *string                 `json:"round,omitempty"`
	Venue       *string                 `json:"venue,omitempty"`
}

// UpdateMatch applies a partial update. Admin only.
func (h *MatchHandlers) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "matchID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid match ID")
		return
	}

	var req updateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	match, err := h.matches.UpdateMatch(r.Context(), id, matchservice.UpdateMatchInput{
		HomeTeam:    req.HomeTeam,
		AwayTeam:    req.AwayTeam,
		KickoffTime: req.KickoffTime,
		HomeScore:   req.HomeScore,
		AwayScore:   req.AwayScore,
		Status:      req.Status,
		Round:       req.Round,
		Venue:       req.Venue,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, match)
}

// DeleteMatch removes a fixture. Admin only.
func (h *MatchHandlers) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "matchID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid match ID")
		return
	}

	if err := h.matches.DeleteMatch(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
