// Package simulatorservice drives fake live matches for demos and local
// development. All state lives on the service instance, so independent
// simulators can run side by side in tests.
package simulatorservice

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	matchservice "github.com/matchday-club/predictor/app/modules/match/application"
	matchtypes "github.com/matchday-club/predictor/app/modules/match/domain/types"
	"github.com/matchday-club/predictor/app/shared/attr"
	sharedutils "github.com/matchday-club/predictor/app/shared/utils"
)

// ErrAlreadyRunning is returned by Start when the simulator is active.
var ErrAlreadyRunning = errors.New("simulator already running")

// goalChancePercent is the per-team chance of scoring on one tick.
const goalChancePercent = 15

// ticksPerMatch is how many ticks a live match lasts before it finishes.
const ticksPerMatch = 30

// Status is a snapshot of the simulator for the admin endpoint.
type Status struct {
	Running     bool `json:"running"`
	Ticks       int  `json:"ticks"`
	LiveMatches int  `json:"live_matches"`
}

// Simulator advances scheduled matches to live, invents goals, and finishes
// matches after a fixed number of ticks.
type Simulator struct {
	matches  matchservice.Service
	logger   *slog.Logger
	clock    sharedutils.Clock
	faker    *gofakeit.Faker
	interval time.Duration

	mu       sync.Mutex
	cancel   context.CancelFunc
	done     chan struct{}
	ticks    int
	liveAges map[string]int // match ID -> ticks spent live
}

// New creates a stopped simulator. Pass seed 0 for random behavior.
func New(matches matchservice.Service, logger *slog.Logger, clock sharedutils.Clock, interval time.Duration, seed uint64) *Simulator {
	return &Simulator{
		matches:  matches,
		logger:   logger,
		clock:    clock,
		faker:    gofakeit.New(seed),
		interval: interval,
		liveAges: make(map[string]int),
	}
}

// Start launches the tick loop. Returns ErrAlreadyRunning if active.
func (s *Simulator) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return ErrAlreadyRunning
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done

	s.logger.InfoContext(ctx, "Simulator started",
		attr.Duration("interval", s.interval),
	)

	// The goroutine closes its own capture of done: Stop nils the field the
	// moment it is called, possibly before the goroutine is scheduled.
	go func() {
		defer close(done)
		s.run(runCtx)
	}()
	return nil
}

// Stop halts the tick loop and waits for it to exit. Safe to call when
// stopped.
func (s *Simulator) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel = nil
	s.done = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	s.logger.Info("Simulator stopped")
}

// Status reports whether the loop is running and how much it has done.
func (s *Simulator) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		Running:     s.cancel != nil,
		Ticks:       s.ticks,
		LiveMatches: len(s.liveAges),
	}
}

func (s *Simulator) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.clock.After(s.interval):
			s.Tick(ctx)
		}
	}
}

// Tick performs one simulation step: promote due matches to live, maybe score,
// finish matches whose time is up. Exported so tests can drive the simulator
// without the loop.
func (s *Simulator) Tick(ctx context.Context) {
	s.mu.Lock()
	s.ticks++
	s.mu.Unlock()

	s.promoteDueMatches(ctx)
	s.advanceLiveMatches(ctx)
}

func (s *Simulator) promoteDueMatches(ctx context.Context) {
	now := s.clock.NowUTC()
	matches, _, err := s.matches.ListMatches(ctx, matchtypes.MatchFilter{
		Status: matchtypes.MatchStatusScheduled,
		Limit:  50,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "Simulator failed to list scheduled matches", attr.Error(err))
		return
	}

	for i := range matches {
		match := &matches[i]
		if now.Before(match.KickoffTime) {
			continue
		}

		if _, err := s.matches.UpdateStatus(ctx, match.ID, matchtypes.MatchStatusLive); err != nil {
			s.logger.WarnContext(ctx, "Simulator failed to start match",
				attr.UUIDValue("match_id", match.ID),
				attr.Error(err),
			)
			continue
		}
		if _, err := s.matches.UpdateScore(ctx, match.ID, 0, 0); err != nil {
			s.logger.WarnContext(ctx, "Simulator failed to zero score",
				attr.UUIDValue("match_id", match.ID),
				attr.Error(err),
			)
		}

		s.mu.Lock()
		s.liveAges[match.ID.String()] = 0
		s.mu.Unlock()

		s.logger.InfoContext(ctx, "Simulator kicked off match",
			attr.UUIDValue("match_id", match.ID),
			attr.String("home_team", match.HomeTeam),
			attr.String("away_team", match.AwayTeam),
		)
	}
}

func (s *Simulator) advanceLiveMatches(ctx context.Context) {
	live, err := s.matches.ListLiveMatches(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "Simulator failed to list live matches", attr.Error(err))
		return
	}

	for i := range live {
		match := &live[i]
		key := match.ID.String()

		s.mu.Lock()
		s.liveAges[key]++
		age := s.liveAges[key]
		s.mu.Unlock()

		if age >= ticksPerMatch {
			if _, err := s.matches.UpdateStatus(ctx, match.ID, matchtypes.MatchStatusFinished); err != nil {
				s.logger.WarnContext(ctx, "Simulator failed to finish match",
					attr.UUIDValue("match_id", match.ID),
					attr.Error(err),
				)
				continue
			}
			s.mu.Lock()
			delete(s.liveAges, key)
			s.mu.Unlock()
			continue
		}

		home, away := scoreOf(match)
		scored := false
		if s.faker.Number(1, 100) <= goalChancePercent {
			home++
			scored = true
		}
		if s.faker.Number(1, 100) <= goalChancePercent {
			away++
			scored = true
		}
		if !scored {
			continue
		}

		if _, err := s.matches.UpdateScore(ctx, match.ID, home, away); err != nil {
			s.logger.WarnContext(ctx, "Simulator failed to update score",
				attr.UUIDValue("match_id", match.ID),
				attr.Error(err),
			)
		}
	}
}

func scoreOf(match *matchtypes.Match) (int, int) {
	home, away := 0, 0
	if match.HomeScore != nil {
		home = *match.HomeScore
	}
	if match.AwayScore != nil {
		away = *match.AwayScore
	}
	return home, away
}
