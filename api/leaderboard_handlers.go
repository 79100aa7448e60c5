package api

import (
	"net/http"

	leaderboardservice "github.com/matchday-club/predictor/app/modules/leaderboard/application"
)

// LeaderboardHandlers handles HTTP requests for the standings.
type LeaderboardHandlers struct {
	leaderboard leaderboardservice.Service
}

// NewLeaderboardHandlers creates a new LeaderboardHandlers instance.
func NewLeaderboardHandlers(leaderboard leaderboardservice.Service) *LeaderboardHandlers {
	return &LeaderboardHandlers{leaderboard: leaderboard}
}

// GetLeaderboard returns the full standings, with the caller's own entry
// pulled out when authenticated.
func (h *LeaderboardHandlers) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	forUser, _ := UserIDFromContext(r.Context())

	leaderboard, err := h.leaderboard.GetLeaderboard(r.Context(), forUser)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leaderboard)
}

// ExportLeaderboard streams the standings as a spreadsheet.
func (h *LeaderboardHandlers) ExportLeaderboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="leaderboard.xlsx"`)

	if err := h.leaderboard.ExportXLSX(r.Context(), w); err != nil {
		// Headers may already be gone; nothing more to report to the client.
		return
	}
}

// LeaderboardChart streams a PNG bar chart of the top standings.
func (h *LeaderboardHandlers) LeaderboardChart(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/png")

	if err := h.leaderboard.RenderChart(r.Context(), w); err != nil {
		return
	}
}
