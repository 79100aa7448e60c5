package predictionservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	matchtypes "github.com/matchday-club/predictor/app/modules/match/domain/types"
	matchdb "github.com/matchday-club/predictor/app/modules/match/infrastructure/repositories"
	predictiontypes "github.com/matchday-club/predictor/app/modules/prediction/domain/types"
	predictiondb "github.com/matchday-club/predictor/app/modules/prediction/infrastructure/repositories"
	"github.com/matchday-club/predictor/app/shared/attr"
)

// CreatePrediction records a new guess for the caller. The gate is evaluated
// against a single clock sample taken at the top of the request.
func (s *PredictionService) CreatePrediction(ctx context.Context, userID, matchID uuid.UUID, homeGoals, awayGoals int) (*predictiontypes.Prediction, error) {
	return withTelemetry(s, ctx, "create_prediction", func(ctx context.Context) (*predictiontypes.Prediction, error) {
		if err := predictiontypes.ValidateGoals(homeGoals, awayGoals); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidGoals, err)
		}

		match, err := s.matchRepo.GetMatch(ctx, matchID)
		if err != nil {
			if errors.Is(err, matchdb.ErrNotFound) {
				return nil, ErrMatchNotFound
			}
			return nil, err
		}

		now := s.clock.NowUTC()
		if matchtypes.Gate(now, match.KickoffTime) == matchtypes.GateLocked {
			return nil, ErrGateLocked
		}

		if _, err := s.repo.GetByUserAndMatch(ctx, userID, matchID); err == nil {
			return nil, ErrDuplicatePrediction
		} else if !errors.Is(err, predictiondb.ErrNotFound) {
			return nil, err
		}

		prediction := &predictiontypes.Prediction{
			UserID:    userID,
			MatchID:   matchID,
			HomeGoals: homeGoals,
			AwayGoals: awayGoals,
		}

		// The unique index is the authoritative guard: a concurrent create that
		// slipped past the read above still comes back as a conflict here.
		if err := s.repo.CreatePrediction(ctx, prediction); err != nil {
			if errors.Is(err, predictiondb.ErrDuplicate) {
				return nil, ErrDuplicatePrediction
			}
			return nil, err
		}

		s.logger.InfoContext(ctx, "Prediction created",
			attr.UUIDValue("prediction_id", prediction.ID),
			attr.UUIDValue("user_id", userID),
			attr.UUIDValue("match_id", matchID),
			attr.ExtractCorrelationID(ctx),
		)

		return prediction, nil
	})
}

// UpdatePrediction replaces the caller's predicted goals. The gate is
// re-evaluated at update time, never cached from creation.
func (s *PredictionService) UpdatePrediction(ctx context.Context, predictionID, callerUserID uuid.UUID, homeGoals, awayGoals int) (*predictiontypes.Prediction, error) {
	return withTelemetry(s, ctx, "update_prediction", func(ctx context.Context) (*predictiontypes.Prediction, error) {
		if err := predictiontypes.ValidateGoals(homeGoals, awayGoals); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidGoals, err)
		}

		prediction, match, err := s.getOwnedPredictionWithMatch(ctx, predictionID, callerUserID)
		if err != nil {
			return nil, err
		}

		now := s.clock.NowUTC()
		if matchtypes.Gate(now, match.KickoffTime) == matchtypes.GateLocked {
			return nil, ErrGateLocked
		}

		updated, err := s.repo.UpdateGoals(ctx, prediction.ID, homeGoals, awayGoals)
		if err != nil {
			if errors.Is(err, predictiondb.ErrNotFound) {
				return nil, ErrPredictionNotFound
			}
			return nil, err
		}

		s.logger.InfoContext(ctx, "Prediction updated",
			attr.UUIDValue("prediction_id", prediction.ID),
			attr.UUIDValue("user_id", callerUserID),
			attr.ExtractCorrelationID(ctx),
		)

		return updated, nil
	})
}

// DeletePrediction removes the caller's prediction while the gate is open.
func (s *PredictionService) DeletePrediction(ctx context.Context, predictionID, callerUserID uuid.UUID) error {
	_, err := withTelemetry(s, ctx, "delete_prediction", func(ctx context.Context) (struct{}, error) {
		prediction, match, err := s.getOwnedPredictionWithMatch(ctx, predictionID, callerUserID)
		if err != nil {
			return struct{}{}, err
		}

		now := s.clock.NowUTC()
		if matchtypes.Gate(now, match.KickoffTime) == matchtypes.GateLocked {
			return struct{}{}, ErrGateLocked
		}

		if err := s.repo.DeletePrediction(ctx, prediction.ID); err != nil {
			if errors.Is(err, predictiondb.ErrNotFound) {
				return struct{}{}, ErrPredictionNotFound
			}
			return struct{}{}, err
		}

		s.logger.InfoContext(ctx, "Prediction deleted",
			attr.UUIDValue("prediction_id", prediction.ID),
			attr.UUIDValue("user_id", callerUserID),
			attr.ExtractCorrelationID(ctx),
		)

		return struct{}{}, nil
	})
	return err
}

// GetPrediction fetches a single prediction.
func (s *PredictionService) GetPrediction(ctx context.Context, predictionID uuid.UUID) (*predictiontypes.Prediction, error) {
	prediction, err := s.repo.GetPrediction(ctx, predictionID)
	if err != nil {
		if errors.Is(err, predictiondb.ErrNotFound) {
			return nil, ErrPredictionNotFound
		}
		return nil, err
	}
	return prediction, nil
}

// ListPredictions pages through predictions.
func (s *PredictionService) ListPredictions(ctx context.Context, filter predictiontypes.PredictionFilter) ([]predictiontypes.Prediction, int, error) {
	return s.repo.ListPredictions(ctx, filter)
}

// getOwnedPredictionWithMatch loads a prediction, enforces ownership, and
// resolves its match for gate evaluation.
func (s *PredictionService) getOwnedPredictionWithMatch(ctx context.Context, predictionID, callerUserID uuid.UUID) (*predictiontypes.Prediction, *matchtypes.Match, error) {
	prediction, err := s.repo.GetPrediction(ctx, predictionID)
	if err != nil {
		if errors.Is(err, predictiondb.ErrNotFound) {
			return nil, nil, ErrPredictionNotFound
		}
		return nil, nil, err
	}

	if prediction.UserID != callerUserID {
		return nil, nil, ErrNotOwner
	}

	match, err := s.matchRepo.GetMatch(ctx, prediction.MatchID)
	if err != nil {
		return nil, nil, err
	}

	return prediction, match, nil
}
