package matchtypes

import (
	"time"

	"github.com/google/uuid"
)

// MatchStatus is the lifecycle state of a match. Values mirror what the
// external data feed sends.
type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "SCHEDULED"
	MatchStatusLive      MatchStatus = "LIVE"
	MatchStatusFinished  MatchStatus = "FINISHED"
	MatchStatusCancelled MatchStatus = "CANCELLED"
)

// IsValid reports whether s is one of the known statuses.
func (s MatchStatus) IsValid() bool {
	switch s {
	case MatchStatusScheduled, MatchStatusLive, MatchStatusFinished, MatchStatusCancelled:
		return true
	}
	return false
}

// Match is a fixture in the pool. Scores are pointers because they exist only
// once the match is Live or Finished.
type Match struct {
	ID          uuid.UUID   `json:"id"`
	HomeTeam    string      `json:"home_team"`
	AwayTeam    string      `json:"away_team"`
	KickoffTime time.Time   `json:"kickoff_time"`
	Status      MatchStatus `json:"status"`
	HomeScore   *int        `json:"home_score,omitempty"`
	AwayScore   *int        `json:"away_score,omitempty"`
	Round       string      `json:"round,omitempty"`
	Venue       string      `json:"venue,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// HasFinalScore reports whether the match is finished with both scores present.
// Only then is a prediction's score authoritative.
func (m *Match) HasFinalScore() bool {
	return m.Status == MatchStatusFinished && m.HomeScore != nil && m.AwayScore != nil
}

// MatchFilter narrows match listings.
type MatchFilter struct {
	Status   MatchStatus
	Round    string
	Team     string
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	Limit    int
}
