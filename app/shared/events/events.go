package sharedevents

import (
	"time"

	"github.com/google/uuid"
)

// Stream and subject names for the notification sink. One JetStream stream per
// aggregate, subjects scoped under it.
const (
	MatchStream      = "match"
	PredictionStream = "prediction"

	MatchCreated       = "match.created"
	MatchUpdated       = "match.updated"
	MatchDeleted       = "match.deleted"
	MatchScoreUpdated  = "match.score.updated"
	MatchStatusChanged = "match.status.changed"

	PredictionPointsRecalculated = "prediction.points.recalculated"
)

// MatchUpdateType distinguishes score ticks from lifecycle transitions on the
// shared MatchUpdatePayload.
type MatchUpdateType string

const (
	MatchUpdateScore  MatchUpdateType = "SCORE_UPDATE"
	MatchUpdateStatus MatchUpdateType = "STATUS_CHANGE"
)

// MatchCreatedPayload is published when an admin or the data feed adds a match.
type MatchCreatedPayload struct {
	MatchID     uuid.UUID `json:"match_id"`
	HomeTeam    string    `json:"home_team"`
	AwayTeam    string    `json:"away_team"`
	KickoffTime time.Time `json:"kickoff_time"`
}

// MatchUpdatedPayload is published when fixture details change: teams,
// kickoff, round, or venue. Score ticks and status transitions have their own
// subjects.
type MatchUpdatedPayload struct {
	MatchID     uuid.UUID `json:"match_id"`
	HomeTeam    string    `json:"home_team"`
	AwayTeam    string    `json:"away_team"`
	KickoffTime time.Time `json:"kickoff_time"`
	Round       string    `json:"round,omitempty"`
	Venue       string    `json:"venue,omitempty"`
}

// MatchUpdatePayload is published on score or status changes.
type MatchUpdatePayload struct {
	MatchID   uuid.UUID       `json:"match_id"`
	Type      MatchUpdateType `json:"type"`
	HomeScore *int            `json:"home_score,omitempty"`
	AwayScore *int            `json:"away_score,omitempty"`
	Status    string          `json:"status,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// MatchDeletedPayload is published when a match is removed.
type MatchDeletedPayload struct {
	MatchID uuid.UUID `json:"match_id"`
}

// PointsRecalculatedPayload is published after a recalculation sweep that
// changed at least one prediction.
type PointsRecalculatedPayload struct {
	UpdatedCount int       `json:"updated_count"`
	Timestamp    time.Time `json:"timestamp"`
}
