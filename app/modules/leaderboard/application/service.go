package leaderboardservice

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	leaderboardtypes "github.com/matchday-club/predictor/app/modules/leaderboard/domain/types"
	predictiondb "github.com/matchday-club/predictor/app/modules/prediction/infrastructure/repositories"
	userdb "github.com/matchday-club/predictor/app/modules/user/infrastructure/repositories"
	"github.com/matchday-club/predictor/app/shared/attr"
	"github.com/matchday-club/predictor/app/shared/observability"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Service is the leaderboard module's application contract.
type Service interface {
	// GetLeaderboard builds the current standings. When forUser is non-zero,
	// that user's entry is also returned separately.
	GetLeaderboard(ctx context.Context, forUser uuid.UUID) (*leaderboardtypes.Leaderboard, error)

	// ExportXLSX writes the standings as a spreadsheet.
	ExportXLSX(ctx context.Context, w io.Writer) error

	// RenderChart writes a PNG bar chart of the top standings.
	RenderChart(ctx context.Context, w io.Writer) error
}

// LeaderboardService aggregates predictions into standings on demand. Nothing
// is cached: the sweep keeps points current and the fold is cheap at pool
// scale.
type LeaderboardService struct {
	userRepo       userdb.Repository
	predictionRepo predictiondb.Repository
	logger         *slog.Logger
	metrics        observability.OperationMetrics
	tracer         trace.Tracer
}

// NewLeaderboardService creates a new LeaderboardService.
func NewLeaderboardService(
	userRepo userdb.Repository,
	predictionRepo predictiondb.Repository,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
) *LeaderboardService {
	return &LeaderboardService{
		userRepo:       userRepo,
		predictionRepo: predictionRepo,
		logger:         logger,
		metrics:        metrics,
		tracer:         tracer,
	}
}

var _ Service = (*LeaderboardService)(nil)

// withTelemetry wraps a service operation with tracing, metrics, logging, and
// panic recovery.
func withTelemetry[T any](
	s *LeaderboardService,
	ctx context.Context,
	operationName string,
	op func(ctx context.Context) (T, error),
) (result T, err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.String("operation", operationName),
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName)
			span.RecordError(err)
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.WarnContext(ctx, "Operation failed",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.Error(wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	s.metrics.RecordOperationSuccess(ctx, operationName)
	return result, nil
}
