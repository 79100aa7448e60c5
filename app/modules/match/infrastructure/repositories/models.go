package matchdb

import (
	"time"

	"github.com/google/uuid"
	matchtypes "github.com/matchday-club/predictor/app/modules/match/domain/types"
	"github.com/uptrace/bun"
)

// Match is the persisted fixture row.
type Match struct {
	bun.BaseModel `bun:"table:matches,alias:m"`

	ID          uuid.UUID              `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	HomeTeam    string                 `bun:"home_team,notnull"`
	AwayTeam    string                 `bun:"away_team,notnull"`
	KickoffTime time.Time              `bun:"kickoff_time,notnull"`
	Status      matchtypes.MatchStatus `bun:"status,notnull,default:'SCHEDULED'"`
	HomeScore   *int                   `bun:"home_score"`
	AwayScore   *int                   `bun:"away_score"`
	Round       string                 `bun:"round,nullzero"`
	Venue       string                 `bun:"venue,nullzero"`
	CreatedAt   time.Time              `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt   time.Time              `bun:"updated_at,notnull,default:current_timestamp"`
}

func (m *Match) toDomain() *matchtypes.Match {
	return &matchtypes.Match{
		ID:          m.ID,
		HomeTeam:    m.HomeTeam,
		AwayTeam:    m.AwayTeam,
		KickoffTime: m.KickoffTime,
		Status:      m.Status,
		HomeScore:   m.HomeScore,
		AwayScore:   m.AwayScore,
		Round:       m.Round,
		Venue:       m.Venue,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromDomain(m *matchtypes.Match) *Match {
	return &Match{
		ID:          m.ID,
		HomeTeam:    m.HomeTeam,
		AwayTeam:    m.AwayTeam,
		KickoffTime: m.KickoffTime,
		Status:      m.Status,
		HomeScore:   m.HomeScore,
		AwayScore:   m.AwayScore,
		Round:       m.Round,
		Venue:       m.Venue,
	}
}

// MatchUpdateFields carries a partial update; nil fields are left untouched.
type MatchUpdateFields struct {
	HomeTeam    *string
	AwayTeam    *string
	KickoffTime *time.Time
	HomeScore   *int
	AwayScore   *int
	Status      *matchtypes.MatchStatus
	Round       *string
	Venue       *string
}
