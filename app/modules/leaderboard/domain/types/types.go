package leaderboardtypes

import "github.com/google/uuid"

// Entry is one user's aggregated standing.
type Entry struct {
	UserID           uuid.UUID `json:"user_id"`
	UserName         string    `json:"user_name"`
	Department       string    `json:"department,omitempty"`
	TotalPoints      int       `json:"total_points"`
	TotalPredictions int       `json:"total_predictions"`
	ExactScores      int       `json:"exact_scores"`
	CorrectWinners   int       `json:"correct_winners"`
	Rank             int       `json:"rank"`
}

// Leaderboard is the full standings plus, when requested, the caller's own
// entry pulled out for display.
type Leaderboard struct {
	Entries   []Entry `json:"entries"`
	UserEntry *Entry  `json:"user_entry,omitempty"`
}
