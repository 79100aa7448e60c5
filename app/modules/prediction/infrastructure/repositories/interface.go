package predictiondb

import (
	"context"

	"github.com/google/uuid"
	predictiontypes "github.com/matchday-club/predictor/app/modules/prediction/domain/types"
)

// Repository defines the persistence contract for predictions.
//
// Error semantics:
//   - ErrNotFound: requested record does not exist
//   - ErrDuplicate: unique (user_id, match_id) constraint violated on insert
//   - ErrNoRowsAffected: UPDATE/DELETE matched no rows
//   - other errors: infrastructure failures
type Repository interface {
	GetPrediction(ctx context.Context, id uuid.UUID) (*predictiontypes.Prediction, error)
	GetByUserAndMatch(ctx context.Context, userID, matchID uuid.UUID) (*predictiontypes.Prediction, error)
	ListPredictions(ctx context.Context, filter predictiontypes.PredictionFilter) ([]predictiontypes.Prediction, int, error)
	ListAll(ctx context.Context) ([]predictiontypes.Prediction, error)
	CreatePrediction(ctx context.Context, prediction *predictiontypes.Prediction) error
	UpdateGoals(ctx context.Context, id uuid.UUID, homeGoals, awayGoals int) (*predictiontypes.Prediction, error)
	UpdatePoints(ctx context.Context, id uuid.UUID, points int) error
	DeletePrediction(ctx context.Context, id uuid.UUID) error

	// ListForFinishedMatches returns every prediction whose match is finished
	// with both final scores present, joined with those scores.
	ListForFinishedMatches(ctx context.Context) ([]SweepRow, error)
}
