// Package app wires the modules together and owns the process lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/matchday-club/predictor/api"
	leaderboardservice "github.com/matchday-club/predictor/app/modules/leaderboard/application"
	matchservice "github.com/matchday-club/predictor/app/modules/match/application"
	matchfeed "github.com/matchday-club/predictor/app/modules/match/infrastructure/feed"
	predictionservice "github.com/matchday-club/predictor/app/modules/prediction/application"
	predictionqueue "github.com/matchday-club/predictor/app/modules/prediction/infrastructure/queue"
	simulatorservice "github.com/matchday-club/predictor/app/modules/simulator/application"
	"github.com/matchday-club/predictor/app/shared/attr"
	"github.com/matchday-club/predictor/app/shared/eventbus"
	sharedevents "github.com/matchday-club/predictor/app/shared/events"
	"github.com/matchday-club/predictor/app/shared/observability"
	sharedutils "github.com/matchday-club/predictor/app/shared/utils"
	"github.com/matchday-club/predictor/config"
	"github.com/matchday-club/predictor/db/bundb"
	"github.com/matchday-club/predictor/pkg/jwt"
	"github.com/prometheus/client_golang/prometheus"
)

const shutdownTimeout = 15 * time.Second

// App holds every wired component of the predictor service.
type App struct {
	Config *config.Config

	logger   *slog.Logger
	db       *bundb.DBService
	eventBus eventbus.EventBus

	Matches     matchservice.Service
	Predictions predictionservice.Service
	Leaderboard leaderboardservice.Service

	queue     *predictionqueue.Service
	simulator *simulatorservice.Simulator

	httpServer    *http.Server
	metricsServer *http.Server
}

// NewApp builds the full dependency graph from config. Nothing is started yet;
// call Run.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	dbService, err := bundb.NewBunDBService(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database service: %w", err)
	}

	bus, err := newEventBus(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	clock := sharedutils.RealClock{}
	registry := prometheus.NewRegistry()

	matches := matchservice.NewMatchService(
		dbService.MatchDB,
		bus,
		logger,
		observability.NewPrometheusMetrics(registry, "match"),
		observability.NewTracer("match"),
		clock,
	)
	predictions := predictionservice.NewPredictionService(
		dbService.PredictionDB,
		dbService.MatchDB,
		bus,
		logger,
		observability.NewPrometheusMetrics(registry, "prediction"),
		observability.NewTracer("prediction"),
		clock,
	)
	leaderboard := leaderboardservice.NewLeaderboardService(
		dbService.UserDB,
		dbService.PredictionDB,
		logger,
		observability.NewPrometheusMetrics(registry, "leaderboard"),
		observability.NewTracer("leaderboard"),
	)

	queue, err := predictionqueue.NewService(
		ctx,
		dbService.GetDB(),
		cfg.Postgres.DSN,
		cfg.Sweep.Interval,
		predictions,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize prediction queue: %w", err)
	}

	var simulator *simulatorservice.Simulator
	if cfg.Simulator.Enabled {
		simulator = simulatorservice.New(matches, logger, clock, cfg.Simulator.Interval, cfg.Simulator.Seed)
	}

	if err := seedFixtures(ctx, cfg.Feed, matches, clock, logger); err != nil {
		return nil, err
	}

	tokens := jwt.NewService(cfg.JWT.Secret, cfg.JWT.DefaultTTL)
	router := api.NewRouter(cfg.HTTP, tokens, api.Handlers{
		Matches:     api.NewMatchHandlers(matches),
		Predictions: api.NewPredictionHandlers(predictions),
		Leaderboard: api.NewLeaderboardHandlers(leaderboard),
		Users:       api.NewUserHandlers(dbService.UserDB),
		Admin:       api.NewAdminHandlers(predictions, queue, simulator),
	})

	app := &App{
		Config:      cfg,
		logger:      logger,
		db:          dbService,
		eventBus:    bus,
		Matches:     matches,
		Predictions: predictions,
		Leaderboard: leaderboard,
		queue:       queue,
		simulator:   simulator,
		httpServer: &http.Server{
			Addr:              cfg.HTTP.Address,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
	if cfg.Observability.MetricsAddress != "" {
		app.metricsServer = observability.NewMetricsServer(cfg.Observability.MetricsAddress, registry)
	}
	return app, nil
}

// newEventBus connects to NATS when configured, or falls back to a no-op sink.
func newEventBus(ctx context.Context, cfg *config.Config, logger *slog.Logger) (eventbus.EventBus, error) {
	if cfg.NATS.URL == "" {
		logger.InfoContext(ctx, "NATS URL not set, event publishing disabled")
		return eventbus.NoOpEventBus{}, nil
	}

	bus, err := eventbus.NewEventBus(ctx, cfg.NATS.URL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize event bus: %w", err)
	}

	streams := map[string][]string{
		sharedevents.MatchStream:      {sharedevents.MatchStream + ".>"},
		sharedevents.PredictionStream: {sharedevents.PredictionStream + ".>"},
	}
	for name, subjects := range streams {
		if err := bus.EnsureStream(ctx, name, subjects...); err != nil {
			bus.Close()
			return nil, fmt.Errorf("failed to ensure stream %s: %w", name, err)
		}
	}
	return bus, nil
}

func seedFixtures(ctx context.Context, cfg config.FeedConfig, matches matchservice.Service, clock sharedutils.Clock, logger *slog.Logger) error {
	var source matchfeed.Source
	switch cfg.Source {
	case "mock":
		source = matchfeed.NewMockSource(cfg.Seed, clock)
	case "none":
		return nil
	default:
		return fmt.Errorf("unknown feed source %q", cfg.Source)
	}

	if _, err := matchfeed.NewLoader(source, matches, logger).SeedIfEmpty(ctx); err != nil {
		return fmt.Errorf("failed to seed fixtures: %w", err)
	}
	return nil
}

// Run starts the queue, the simulator when enabled, and the HTTP servers, then
// blocks until ctx is canceled. Shutdown is graceful with a bounded timeout.
func (a *App) Run(ctx context.Context) error {
	if err := a.queue.Start(ctx); err != nil {
		return fmt.Errorf("failed to start prediction queue: %w", err)
	}

	if a.simulator != nil {
		if err := a.simulator.Start(ctx); err != nil {
			return fmt.Errorf("failed to start simulator: %w", err)
		}
	}

	errCh := make(chan error, 2)

	if a.metricsServer != nil {
		go func() {
			a.logger.Info("Metrics server listening", attr.String("address", a.metricsServer.Addr))
			if err := a.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("metrics server failed: %w", err)
			}
		}()
	}

	go func() {
		a.logger.Info("HTTP server listening", attr.String("address", a.httpServer.Addr))
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server failed: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("Shutdown signal received")
		return a.Close()
	case err := <-errCh:
		a.Close()
		return err
	}
}

// Close stops every component, most-dependent first.
func (a *App) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("Failed to shut down HTTP server", attr.Error(err))
	}
	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			a.logger.Error("Failed to shut down metrics server", attr.Error(err))
		}
	}

	if a.simulator != nil {
		a.simulator.Stop()
	}

	if err := a.queue.Stop(ctx); err != nil {
		a.logger.Error("Failed to stop prediction queue", attr.Error(err))
	}

	if err := a.eventBus.Close(); err != nil {
		a.logger.Error("Failed to close event bus", attr.Error(err))
	}

	if err := a.db.GetDB().Close(); err != nil {
		a.logger.Error("Failed to close database connection", attr.Error(err))
		return err
	}

	a.logger.Info("Application shut down")
	return nil
}
