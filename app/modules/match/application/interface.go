package matchservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	matchtypes "github.com/matchday-club/predictor/app/modules/match/domain/types"
)

// CreateMatchInput carries the fields for a new fixture.
type CreateMatchInput struct {
	HomeTeam    string
	AwayTeam    string
	KickoffTime time.Time
	Round       string
	Venue       string
}

// UpdateMatchInput is a partial update; nil fields are left untouched.
type UpdateMatchInput struct {
	HomeTeam    *string
	AwayTeam    *string
	KickoffTime *time.Time
	HomeScore   *int
	AwayScore   *int
	Status      *matchtypes.MatchStatus
	Round       *string
	Venue       *string
}

// MatchDetail is a match plus its prediction gate as seen at request time.
type MatchDetail struct {
	matchtypes.Match
	Gate          matchtypes.GateState     `json:"gate"`
	TimeRemaining matchtypes.TimeRemaining `json:"time_remaining"`
}

// Service is the match module's application contract.
type Service interface {
	// CreateMatch adds a fixture and announces it on the bus.
	CreateMatch(ctx context.Context, input CreateMatchInput) (*matchtypes.Match, error)

	// GetMatch fetches a fixture together with its gate state and countdown.
	GetMatch(ctx context.Context, id uuid.UUID) (*MatchDetail, error)

	// ListMatches pages through fixtures with optional filters.
	ListMatches(ctx context.Context, filter matchtypes.MatchFilter) ([]MatchDetail, int, error)

	// ListLiveMatches returns every match currently in play.
	ListLiveMatches(ctx context.Context) ([]matchtypes.Match, error)

	// UpdateMatch applies a partial update, publishing fixture, score, and
	// status events for the fields that changed.
	UpdateMatch(ctx context.Context, id uuid.UUID, input UpdateMatchInput) (*matchtypes.Match, error)

	// UpdateScore sets the current score. Used by the data feed and the
	// simulator on every score tick.
	UpdateScore(ctx context.Context, id uuid.UUID, homeScore, awayScore int) (*matchtypes.Match, error)

	// UpdateStatus transitions the match lifecycle.
	UpdateStatus(ctx context.Context, id uuid.UUID, status matchtypes.MatchStatus) (*matchtypes.Match, error)

	// DeleteMatch removes a fixture.
	DeleteMatch(ctx context.Context, id uuid.UUID) error
}
