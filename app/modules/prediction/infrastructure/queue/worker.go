package predictionqueue

import (
	"context"
	"log/slog"
	"time"

	predictionservice "github.com/matchday-club/predictor/app/modules/prediction/application"
	"github.com/matchday-club/predictor/app/shared/attr"
	"github.com/riverqueue/river"
)

// workTimeout bounds a single sweep so a stuck database call cannot stack runs
// behind it.
const workTimeout = 2 * time.Minute

// recalculateWorker runs the scoring sweep when a RecalculateJob fires.
type recalculateWorker struct {
	river.WorkerDefaults[RecalculateJob]

	service predictionservice.Service
	logger  *slog.Logger
}

func newRecalculateWorker(service predictionservice.Service, logger *slog.Logger) *recalculateWorker {
	return &recalculateWorker{service: service, logger: logger}
}

func (w *recalculateWorker) Work(ctx context.Context, job *river.Job[RecalculateJob]) error {
	ctx, cancel := context.WithTimeout(ctx, workTimeout)
	defer cancel()

	updated, err := w.service.Recalculate(ctx)
	if err != nil {
		w.logger.ErrorContext(ctx, "Scheduled recalculation sweep failed",
			attr.Int64("job_id", job.ID),
			attr.Error(err),
		)
		return err
	}

	w.logger.InfoContext(ctx, "Scheduled recalculation sweep completed",
		attr.Int64("job_id", job.ID),
		attr.Int("updated", updated),
	)
	return nil
}
