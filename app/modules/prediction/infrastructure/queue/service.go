package predictionqueue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	predictionservice "github.com/matchday-club/predictor/app/modules/prediction/application"
	"github.com/matchday-club/predictor/app/shared/attr"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/uptrace/bun"
)

// QueueService schedules and runs recalculation sweeps through River.
type QueueService interface {
	// EnqueueSweep inserts an immediate sweep job. Deduplicated against an
	// already-pending sweep, so hammering the admin endpoint is safe.
	EnqueueSweep(ctx context.Context) error
	// GetSweepJobs lists recent sweep jobs for the admin endpoint.
	GetSweepJobs(ctx context.Context) ([]JobInfo, error)
	// HealthCheck verifies the queue tables are reachable.
	HealthCheck(ctx context.Context) error
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

var _ QueueService = (*Service)(nil)

// Service is the River-backed sweep scheduler. A periodic job fires the sweep
// on a fixed interval; EnqueueSweep covers on-demand runs.
type Service struct {
	client *river.Client[pgx.Tx]
	pool   *pgxpool.Pool
	db     *bun.DB
	logger *slog.Logger
}

// NewService builds the River client with the sweep worker registered and a
// periodic job at the given interval. River needs its own pgx pool; the bun
// handle is only used for job table queries.
func NewService(
	ctx context.Context,
	bunDB *bun.DB,
	dsn string,
	interval time.Duration,
	service predictionservice.Service,
	logger *slog.Logger,
) (*Service, error) {
	ctxLogger := logger.With(attr.String("component", "river_queue"))

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, newRecalculateWorker(service, ctxLogger))

	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 10},
			"prediction":       {MaxWorkers: 1}, // sweeps never run concurrently
		},
		Workers: workers,
		PeriodicJobs: []*river.PeriodicJob{
			river.NewPeriodicJob(
				river.PeriodicInterval(interval),
				func() (river.JobArgs, *river.InsertOpts) {
					return RecalculateJob{}, &river.InsertOpts{Queue: "prediction"}
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		},
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create River client: %w", err)
	}

	ctxLogger.Info("Prediction queue service initialized",
		attr.Duration("sweep_interval", interval),
	)

	return &Service{
		client: riverClient,
		pool:   pool,
		db:     bunDB,
		logger: ctxLogger,
	}, nil
}

func (s *Service) Start(ctx context.Context) error {
	s.logger.Info("Starting prediction queue service")
	if err := s.client.Start(ctx); err != nil {
		return fmt.Errorf("failed to start River client: %w", err)
	}
	return nil
}

func (s *Service) Stop(ctx context.Context) error {
	s.logger.Info("Stopping prediction queue service")
	if err := s.client.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop River client: %w", err)
	}
	s.pool.Close()
	return nil
}

func (s *Service) EnqueueSweep(ctx context.Context) error {
	result, err := s.client.Insert(ctx, RecalculateJob{}, &river.InsertOpts{
		Queue: "prediction",
		UniqueOpts: river.UniqueOpts{
			ByArgs: true, // collapses with a pending periodic sweep
		},
	})
	if err != nil {
		return fmt.Errorf("failed to enqueue sweep job: %w", err)
	}

	s.logger.InfoContext(ctx, "Sweep job enqueued",
		attr.Int64("job_id", result.Job.ID),
		attr.Bool("deduplicated", result.UniqueSkippedAsDuplicate),
	)
	return nil
}

func (s *Service) GetSweepJobs(ctx context.Context) ([]JobInfo, error) {
	type riverJobRow struct {
		ID          int64      `bun:"id"`
		Kind        string     `bun:"kind"`
		State       string     `bun:"state"`
		ScheduledAt *time.Time `bun:"scheduled_at"`
		CreatedAt   time.Time  `bun:"created_at"`
		Attempt     int16      `bun:"attempt"`
		MaxAttempts int16      `bun:"max_attempts"`
	}

	var jobs []riverJobRow
	err := s.db.NewSelect().
		Table("river_job").
		Column("id", "kind", "state", "scheduled_at", "created_at", "attempt", "max_attempts").
		Where("kind = ?", RecalculateJob{}.Kind()).
		Order("created_at DESC").
		Limit(50).
		Scan(ctx, &jobs)
	if err != nil {
		return nil, fmt.Errorf("failed to query sweep jobs: %w", err)
	}

	result := make([]JobInfo, len(jobs))
	for i, job := range jobs {
		scheduledAt := ""
		if job.ScheduledAt != nil {
			scheduledAt = job.ScheduledAt.Format(time.RFC3339)
		}
		result[i] = JobInfo{
			ID:          job.ID,
			Kind:        job.Kind,
			State:       job.State,
			ScheduledAt: scheduledAt,
			CreatedAt:   job.CreatedAt.Format(time.RFC3339),
			Attempt:     int(job.Attempt),
			MaxAttempts: int(job.MaxAttempts),
		}
	}
	return result, nil
}

func (s *Service) HealthCheck(ctx context.Context) error {
	if s.client == nil {
		return fmt.Errorf("river client is nil")
	}

	var count int
	err := s.db.NewSelect().
		Table("river_job").
		ColumnExpr("COUNT(*)").
		Scan(ctx, &count)
	if err != nil {
		return fmt.Errorf("queue health check failed: %w", err)
	}
	return nil
}
