package predictionservice

import (
	"context"

	predictiontypes "github.com/matchday-club/predictor/app/modules/prediction/domain/types"
	"github.com/matchday-club/predictor/app/shared/attr"
	sharedevents "github.com/matchday-club/predictor/app/shared/events"
)

// Recalculate re-scores every prediction whose match has finished with a final
// score, and returns how many stored point values actually changed. The sweep
// is idempotent: running it twice in a row without new results yields zero on
// the second pass.
//
// A single bad record never aborts the sweep; failures are logged and skipped
// so the next run picks them up again.
func (s *PredictionService) Recalculate(ctx context.Context) (int, error) {
	return withTelemetry(s, ctx, "recalculate_points", func(ctx context.Context) (int, error) {
		rows, err := s.repo.ListForFinishedMatches(ctx)
		if err != nil {
			return 0, err
		}

		updated := 0
		skipped := 0
		for i := range rows {
			row := &rows[i]
			points := predictiontypes.Score(row.HomeGoals, row.AwayGoals, row.ActualHome, row.ActualAway)
			if points == row.Points {
				continue
			}

			if err := s.repo.UpdatePoints(ctx, row.ID, points); err != nil {
				skipped++
				s.logger.WarnContext(ctx, "Failed to update points, skipping record",
					attr.UUIDValue("prediction_id", row.ID),
					attr.UUIDValue("match_id", row.MatchID),
					attr.Int("points", points),
					attr.Error(err),
					attr.ExtractCorrelationID(ctx),
				)
				continue
			}
			updated++
		}

		s.logger.InfoContext(ctx, "Recalculation sweep finished",
			attr.Int("scanned", len(rows)),
			attr.Int("updated", updated),
			attr.Int("skipped", skipped),
			attr.ExtractCorrelationID(ctx),
		)

		if updated > 0 {
			payload := sharedevents.PointsRecalculatedPayload{
				UpdatedCount: updated,
				Timestamp:    s.clock.NowUTC(),
			}
			if err := s.eventBus.PublishJSON(ctx, sharedevents.PredictionPointsRecalculated, payload); err != nil {
				// Notification only; the sweep itself already succeeded.
				s.logger.WarnContext(ctx, "Failed to publish recalculation event",
					attr.Error(err),
				)
			}
		}

		return updated, nil
	})
}
