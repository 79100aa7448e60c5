package predictiontypes

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxGoals bounds predicted goal values. Matches the validation the prediction
// form applies client-side.
const MaxGoals = 20

// Prediction is one user's score guess for one match. Points are written only
// by the recalculation sweep, never by the owning user.
type Prediction struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	MatchID   uuid.UUID `json:"match_id"`
	HomeGoals int       `json:"home_goals"`
	AwayGoals int       `json:"away_goals"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidateGoals checks the goal pair against the configured bound.
func ValidateGoals(homeGoals, awayGoals int) error {
	if homeGoals < 0 || homeGoals > MaxGoals {
		return fmt.Errorf("home goals must be between 0 and %d, got %d", MaxGoals, homeGoals)
	}
	if awayGoals < 0 || awayGoals > MaxGoals {
		return fmt.Errorf("away goals must be between 0 and %d, got %d", MaxGoals, awayGoals)
	}
	return nil
}

// PredictionFilter narrows prediction listings.
type PredictionFilter struct {
	UserID  uuid.UUID
	MatchID uuid.UUID
	Page    int
	Limit   int
}
