package predictionservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	matchdb "github.com/matchday-club/predictor/app/modules/match/infrastructure/repositories"
	predictiondb "github.com/matchday-club/predictor/app/modules/prediction/infrastructure/repositories"
	"github.com/matchday-club/predictor/app/shared/attr"
	"github.com/matchday-club/predictor/app/shared/eventbus"
	"github.com/matchday-club/predictor/app/shared/observability"
	sharedutils "github.com/matchday-club/predictor/app/shared/utils"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PredictionService implements the Service interface.
type PredictionService struct {
	repo      predictiondb.Repository
	matchRepo matchdb.Repository
	eventBus  eventbus.EventBus
	logger    *slog.Logger
	metrics   observability.OperationMetrics
	tracer    trace.Tracer
	clock     sharedutils.Clock
}

// NewPredictionService creates a new PredictionService.
func NewPredictionService(
	repo predictiondb.Repository,
	matchRepo matchdb.Repository,
	eventBus eventbus.EventBus,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	clock sharedutils.Clock,
) *PredictionService {
	return &PredictionService{
		repo:      repo,
		matchRepo: matchRepo,
		eventBus:  eventBus,
		logger:    logger,
		metrics:   metrics,
		tracer:    tracer,
		clock:     clock,
	}
}

var _ Service = (*PredictionService)(nil)

// withTelemetry wraps a service operation with tracing, metrics, logging, and
// panic recovery.
func withTelemetry[T any](
	s *PredictionService,
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
