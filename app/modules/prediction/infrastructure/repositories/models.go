package predictiondb

import (
	"time"

	"github.com/google/uuid"
	predictiontypes "github.com/matchday-club/predictor/app/modules/prediction/domain/types"
	"github.com/uptrace/bun"
)

// Prediction is the persisted guess row. The (user_id, match_id) unique index
// is the authoritative duplicate guard; the service's check-then-act merely
// gives a friendlier error in the common case.
type Prediction struct {
	bun.BaseModel `bun:"table:predictions,alias:p"`

	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	UserID    uuid.UUID `bun:"user_id,type:uuid,notnull"`
	MatchID   uuid.UUID `bun:"match_id,type:uuid,notnull"`
	HomeGoals int       `bun:"home_goals,notnull"`
	AwayGoals int       `bun:"away_goals,notnull"`
	Points    int       `bun:"points,notnull,default:0"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

func (p *Prediction) toDomain() *predictiontypes.Prediction {
	return &predictiontypes.Prediction{
		ID:        p.ID,
		UserID:    p.UserID,
		MatchID:   p.MatchID,
		HomeGoals: p.HomeGoals,
		AwayGoals: p.AwayGoals,
		Points:    p.Points,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// SweepRow pairs a prediction with its match's final score for the
// recalculation sweep. Scanned from a join, never written.
type SweepRow struct {
	Prediction `bun:",extend"`

	ActualHome int `bun:"actual_home,scanonly"`
	ActualAway int `bun:"actual_away,scanonly"`
}
