package matchservice

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	matchtypes "github.com/matchday-club/predictor/app/modules/match/domain/types"
	matchdb "github.com/matchday-club/predictor/app/modules/match/infrastructure/repositories"
	sharedevents "github.com/matchday-club/predictor/app/shared/events"
	"github.com/matchday-club/predictor/app/shared/observability"
	sharedutils "github.com/matchday-club/predictor/app/shared/utils"
	"go.opentelemetry.io/otel/trace/noop"
)

var testKickoff = time.Date(2026, 6, 14, 18, 0, 0, 0, time.UTC)

func newTestService(repo *fakeMatchRepo, bus *capturingEventBus, now time.Time) *MatchService {
	return NewMatchService(
		repo,
		bus,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		observability.NoOpMetrics{},
		noop.NewTracerProvider().Tracer("test"),
		&sharedutils.FakeClock{NowUTCFn: func() time.Time { return now }},
	)
}

func TestCreateMatch(t *testing.T) {
	tests := []struct {
		name    string
		input   CreateMatchInput
		wantErr error
	}{
		{
			name: "valid fixture",
			input: CreateMatchInput{
				HomeTeam:    "Arsenal",
				AwayTeam:    "Chelsea",
				KickoffTime: testKickoff,
				Round:       "Matchday 1",
				Venue:       "Emirates Stadium",
			},
		},
		{
			name: "missing home team",
			input: CreateMatchInput{
				AwayTeam:    "Chelsea",
				KickoffTime: testKickoff,
			},
			wantErr: ErrInvalidMatch,
		},
		{
			name: "whitespace team name",
			input: CreateMatchInput{
				HomeTeam:    "   ",
				AwayTeam:    "Chelsea",
				KickoffTime: testKickoff,
			},
			wantErr: ErrInvalidMatch,
		},
		{
			name: "team playing itself",
			input: CreateMatchInput{
				HomeTeam:    "Arsenal",
				AwayTeam:    "arsenal",
				KickoffTime: testKickoff,
			},
			wantErr: ErrInvalidMatch,
		},
		{
			name: "missing kickoff",
			input: CreateMatchInput{
				HomeTeam: "Arsenal",
				AwayTeam: "Chelsea",
			},
			wantErr: ErrInvalidMatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeMatchRepo{}
			bus := &capturingEventBus{}
			s := newTestService(repo, bus, testKickoff.Add(-24*time.Hour))

			got, err := s.CreateMatch(context.Background(), tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CreateMatch() error = %v, want %v", err, tt.wantErr)
				}
				if len(bus.subjects) != 0 {
					t.Errorf("no event expected for rejected input, got %v", bus.subjects)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateMatch() unexpected error: %v", err)
			}
			if got.Status != matchtypes.MatchStatusScheduled {
				t.Errorf("new match status = %s, want SCHEDULED", got.Status)
			}
			if len(bus.subjects) != 1 || bus.subjects[0] != sharedevents.MatchCreated {
				t.Errorf("published subjects = %v, want [%s]", bus.subjects, sharedevents.MatchCreated)
			}
		})
	}
}

func TestGetMatchGate(t *testing.T) {
	matchID := uuid.New()
	repo := &fakeMatchRepo{
		GetMatchFunc: func(ctx context.Context, id uuid.UUID) (*matchtypes.Match, error) {
			return &matchtypes.Match{
				ID:          matchID,
				HomeTeam:    "Arsenal",
				AwayTeam:    "Chelsea",
				KickoffTime: testKickoff,
				Status:      matchtypes.MatchStatusScheduled,
			}, nil
		},
	}

	t.Run("open with countdown before kickoff", func(t *testing.T) {
		now := testKickoff.Add(-(26*time.Hour + 3*time.Minute + 5*time.Second))
		s := newTestService(repo, &capturingEventBus{}, now)

		detail, err := s.GetMatch(context.Background(), matchID)
		if err != nil {
			t.Fatalf("GetMatch() unexpected error: %v", err)
		}
		if detail.Gate != matchtypes.GateOpen {
			t.Errorf("gate = %s, want OPEN", detail.Gate)
		}
		want := matchtypes.TimeRemaining{Days: 1, Hours: 2, Minutes: 3, Seconds: 5}
		if detail.TimeRemaining != want {
			t.Errorf("time remaining = %+v, want %+v", detail.TimeRemaining, want)
		}
	})

	t.Run("locked and expired at kickoff", func(t *testing.T) {
		s := newTestService(repo, &capturingEventBus{}, testKickoff)

		detail, err := s.GetMatch(context.Background(), matchID)
		if err != nil {
			t.Fatalf("GetMatch() unexpected error: %v", err)
		}
		if detail.Gate != matchtypes.GateLocked {
			t.Errorf("gate = %s, want LOCKED", detail.Gate)
		}
		if !detail.TimeRemaining.Expired {
			t.Errorf("countdown should be expired at kickoff")
		}
	})

	t.Run("not found", func(t *testing.T) {
		s := newTestService(&fakeMatchRepo{}, &capturingEventBus{}, testKickoff)
		_, err := s.GetMatch(context.Background(), uuid.New())
		if !errors.Is(err, ErrMatchNotFound) {
			t.Fatalf("error = %v, want ErrMatchNotFound", err)
		}
	})
}

func TestListMatchesSharesClockSample(t *testing.T) {
	repo := &fakeMatchRepo{
		ListMatchesFunc: func(ctx context.Context, filter matchtypes.MatchFilter) ([]matchtypes.Match, int, error) {
			return []matchtypes.Match{
				{ID: uuid.New(), KickoffTime: testKickoff.Add(-time.Hour)},
				{ID: uuid.New(), KickoffTime: testKickoff.Add(time.Hour)},
			}, 2, nil
		},
	}
	s := newTestService(repo, &capturingEventBus{}, testKickoff)

	details, total, err := s.ListMatches(context.Background(), matchtypes.MatchFilter{})
	if err != nil {
		t.Fatalf("ListMatches() unexpected error: %v", err)
	}
	if total != 2 || len(details) != 2 {
		t.Fatalf("got %d details (total %d), want 2", len(details), total)
	}
	if details[0].Gate != matchtypes.GateLocked {
		t.Errorf("past kickoff should be LOCKED")
	}
	if details[1].Gate != matchtypes.GateOpen {
		t.Errorf("future kickoff should be OPEN")
	}
}

func TestUpdateMatchPublishesFixtureChange(t *testing.T) {
	matchID := uuid.New()
	repo := &fakeMatchRepo{
		UpdateMatchFunc: func(ctx context.Context, id uuid.UUID, fields matchdb.MatchUpdateFields) (*matchtypes.Match, error) {
			return &matchtypes.Match{
				ID:          matchID,
				HomeTeam:    "Arsenal",
				AwayTeam:    "Chelsea",
				KickoffTime: *fields.KickoffTime,
				Status:      matchtypes.MatchStatusScheduled,
			}, nil
		},
	}
	bus := &capturingEventBus{}
	s := newTestService(repo, bus, testKickoff.Add(-24*time.Hour))

	rescheduled := testKickoff.Add(48 * time.Hour)
	if _, err := s.UpdateMatch(context.Background(), matchID, UpdateMatchInput{KickoffTime: &rescheduled}); err != nil {
		t.Fatalf("UpdateMatch() unexpected error: %v", err)
	}

	if len(bus.subjects) != 1 || bus.subjects[0] != sharedevents.MatchUpdated {
		t.Fatalf("published subjects = %v, want [%s]", bus.subjects, sharedevents.MatchUpdated)
	}
	payload, ok := bus.payloads[0].(sharedevents.MatchUpdatedPayload)
	if !ok {
		t.Fatalf("payload type = %T", bus.payloads[0])
	}
	if !payload.KickoffTime.Equal(rescheduled) {
		t.Errorf("payload kickoff = %s, want %s", payload.KickoffTime, rescheduled)
	}
}

func TestUpdateScorePublishesTick(t *testing.T) {
	matchID := uuid.New()
	home, away := 2, 1
	repo := &fakeMatchRepo{
		UpdateMatchFunc: func(ctx context.Context, id uuid.UUID, fields matchdb.MatchUpdateFields) (*matchtypes.Match, error) {
			return &matchtypes.Match{
				ID:          matchID,
				KickoffTime: testKickoff,
				Status:      matchtypes.MatchStatusLive,
				HomeScore:   fields.HomeScore,
				AwayScore:   fields.AwayScore,
			}, nil
		},
	}
	bus := &capturingEventBus{}
	s := newTestService(repo, bus, testKickoff.Add(30*time.Minute))

	got, err := s.UpdateScore(context.Background(), matchID, home, away)
	if err != nil {
		t.Fatalf("UpdateScore() unexpected error: %v", err)
	}
	if *got.HomeScore != home || *got.AwayScore != away {
		t.Errorf("score = %d-%d, want %d-%d", *got.HomeScore, *got.AwayScore, home, away)
	}

	if len(bus.subjects) != 1 || bus.subjects[0] != sharedevents.MatchScoreUpdated {
		t.Fatalf("published subjects = %v, want [%s]", bus.subjects, sharedevents.MatchScoreUpdated)
	}
	payload, ok := bus.payloads[0].(sharedevents.MatchUpdatePayload)
	if !ok {
		t.Fatalf("payload type = %T", bus.payloads[0])
	}
	if payload.Type != sharedevents.MatchUpdateScore {
		t.Errorf("payload type = %s, want SCORE_UPDATE", payload.Type)
	}
}

func TestUpdateScoreRejectsNegative(t *testing.T) {
	repo := &fakeMatchRepo{}
	s := newTestService(repo, &capturingEventBus{}, testKickoff)

	_, err := s.UpdateScore(context.Background(), uuid.New(), -1, 0)
	if !errors.Is(err, ErrInvalidScore) {
		t.Fatalf("error = %v, want ErrInvalidScore", err)
	}
	if len(repo.updateCalls) != 0 {
		t.Errorf("invalid score must not reach the repository")
	}
}

func TestUpdateStatus(t *testing.T) {
	matchID := uuid.New()
	repo := &fakeMatchRepo{
		UpdateMatchFunc: func(ctx context.Context, id uuid.UUID, fields matchdb.MatchUpdateFields) (*matchtypes.Match, error) {
			return &matchtypes.Match{ID: matchID, Status: *fields.Status}, nil
		},
	}
	bus := &capturingEventBus{}
	s := newTestService(repo, bus, testKickoff)

	got, err := s.UpdateStatus(context.Background(), matchID, matchtypes.MatchStatusFinished)
	if err != nil {
		t.Fatalf("UpdateStatus() unexpected error: %v", err)
	}
	if got.Status != matchtypes.MatchStatusFinished {
		t.Errorf("status = %s, want FINISHED", got.Status)
	}
	if len(bus.subjects) != 1 || bus.subjects[0] != sharedevents.MatchStatusChanged {
		t.Errorf("published subjects = %v, want [%s]", bus.subjects, sharedevents.MatchStatusChanged)
	}

	if _, err := s.UpdateStatus(context.Background(), matchID, matchtypes.MatchStatus("PAUSED")); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("unknown status error = %v, want ErrInvalidStatus", err)
	}
}

func TestDeleteMatch(t *testing.T) {
	matchID := uuid.New()
	repo := &fakeMatchRepo{
		DeleteMatchFunc: func(ctx context.Context, id uuid.UUID) error {
			if id == matchID {
				return nil
			}
			return matchdb.ErrNotFound
		},
	}
	bus := &capturingEventBus{}
	s := newTestService(repo, bus, testKickoff)

	if err := s.DeleteMatch(context.Background(), matchID); err != nil {
		t.Fatalf("DeleteMatch() unexpected error: %v", err)
	}
	if len(bus.subjects) != 1 || bus.subjects[0] != sharedevents.MatchDeleted {
		t.Errorf("published subjects = %v, want [%s]", bus.subjects, sharedevents.MatchDeleted)
	}

	if err := s.DeleteMatch(context.Background(), uuid.New()); !errors.Is(err, ErrMatchNotFound) {
		t.Errorf("error = %v, want ErrMatchNotFound", err)
	}
}
