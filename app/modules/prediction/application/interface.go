package predictionservice

import (
	"context"

	"github.com/google/uuid"
	predictiontypes "github.com/matchday-club/predictor/app/modules/prediction/domain/types"
)

// Service is the prediction module's application contract.
type Service interface {
	// CreatePrediction records a new guess while the match's gate is open.
	CreatePrediction(ctx context.Context, userID, matchID uuid.UUID, homeGoals, awayGoals int) (*predictiontypes.Prediction, error)

	// UpdatePrediction replaces the predicted goals of the caller's own
	// prediction while the gate is still open. Points are untouched.
	UpdatePrediction(ctx context.Context, predictionID, callerUserID uuid.UUID, homeGoals, awayGoals int) (*predictiontypes.Prediction, error)

	// DeletePrediction removes the caller's own prediction while the gate is
	// still open.
	DeletePrediction(ctx context.Context, predictionID, callerUserID uuid.UUID) error

	// GetPrediction fetches a single prediction.
	GetPrediction(ctx context.Context, predictionID uuid.UUID) (*predictiontypes.Prediction, error)

	// ListPredictions pages through predictions, optionally filtered by user
	// and match.
	ListPredictions(ctx context.Context, filter predictiontypes.PredictionFilter) ([]predictiontypes.Prediction, int, error)

	// Recalculate re-scores every prediction whose match has finished and
	// returns how many stored point values changed. Safe to run repeatedly.
	Recalculate(ctx context.Context) (int, error)
}
