package matchservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	matchtypes "github.com/matchday-club/predictor/app/modules/match/domain/types"
	matchdb "github.com/matchday-club/predictor/app/modules/match/infrastructure/repositories"
	"github.com/matchday-club/predictor/app/shared/attr"
	sharedevents "github.com/matchday-club/predictor/app/shared/events"
)

// CreateMatch adds a fixture and announces it on the bus.
func (s *MatchService) CreateMatch(ctx context.Context, input CreateMatchInput) (*matchtypes.Match, error) {
	return withTelemetry(s, ctx, "create_match", func(ctx context.Context) (*matchtypes.Match, error) {
		homeTeam := strings.TrimSpace(input.HomeTeam)
		awayTeam := strings.TrimSpace(input.AwayTeam)
		if homeTeam == "" || awayTeam == "" {
			return nil, fmt.Errorf("%w: both team names are required", ErrInvalidMatch)
		}
		if strings.EqualFold(homeTeam, awayTeam) {
			return nil, fmt.Errorf("%w: a team cannot play itself", ErrInvalidMatch)
		}
		if input.KickoffTime.IsZero() {
			return nil, fmt.Errorf("%w: kickoff time is required", ErrInvalidMatch)
		}

		match := &matchtypes.Match{
			HomeTeam:    homeTeam,
			AwayTeam:    awayTeam,
			KickoffTime: input.KickoffTime.UTC(),
			Status:      matchtypes.MatchStatusScheduled,
			Round:       input.Round,
			Venue:       input.Venue,
		}

		if err := s.repo.CreateMatch(ctx, match); err != nil {
			return nil, err
		}

		s.logger.InfoContext(ctx, "Match created",
			attr.UUIDValue("match_id", match.ID),
			attr.String("home_team", match.HomeTeam),
			attr.String("away_team", match.AwayTeam),
			attr.Time("kickoff_time", match.KickoffTime),
			attr.ExtractCorrelationID(ctx),
		)

		s.publish(ctx, sharedevents.MatchCreated, sharedevents.MatchCreatedPayload{
			MatchID:     match.ID,
			HomeTeam:    match.HomeTeam,
			AwayTeam:    match.AwayTeam,
			KickoffTime: match.KickoffTime,
		})

		return match, nil
	})
}

// GetMatch fetches a fixture together with its gate state and countdown, both
// computed from a single clock sample.
func (s *MatchService) GetMatch(ctx context.Context, id uuid.UUID) (*MatchDetail, error) {
	match, err := s.repo.GetMatch(ctx, id)
	if err != nil {
		if errors.Is(err, matchdb.ErrNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	now := s.clock.NowUTC()
	return s.detail(match, now), nil
}

// ListMatches pages through fixtures. Gate state is computed once per request,
// so every entry in a page agrees on what is open.
func (s *MatchService) ListMatches(ctx context.Context, filter matchtypes.MatchFilter) ([]MatchDetail, int, error) {
	matches, total, err := s.repo.ListMatches(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	now := s.clock.NowUTC()
	details := make([]MatchDetail, 0, len(matches))
	for i := range matches {
		details = append(details, *s.detail(&matches[i], now))
	}
	return details, total, nil
}

// ListLiveMatches returns every match currently in play.
func (s *MatchService) ListLiveMatches(ctx context.Context) ([]matchtypes.Match, error) {
	return s.repo.ListLiveMatches(ctx)
}

// UpdateMatch applies a partial update, publishing fixture, score, and status
// events for the fields that changed.
func (s *MatchService) UpdateMatch(ctx context.Context, id uuid.UUID, input UpdateMatchInput) (*matchtypes.Match, error) {
	return withTelemetry(s, ctx, "update_match", func(ctx context.Context) (*matchtypes.Match, error) {
		if input.Status != nil && !input.Status.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *input.Status)
		}
		if err := validateScores(input.HomeScore, input.AwayScore); err != nil {
			return nil, err
		}

		match, err := s.repo.UpdateMatch(ctx, id, matchdb.MatchUpdateFields{
			HomeTeam:    input.HomeTeam,
			AwayTeam:    input.AwayTeam,
			KickoffTime: input.KickoffTime,
			HomeScore:   input.HomeScore,
			AwayScore:   input.AwayScore,
			Status:      input.Status,
			Round:       input.Round,
			Venue:       input.Venue,
		})
		if err != nil {
			if errors.Is(err, matchdb.ErrNotFound) {
				return nil, ErrMatchNotFound
			}
			return nil, err
		}

		s.logger.InfoContext(ctx, "Match updated",
			attr.UUIDValue("match_id", match.ID),
			attr.ExtractCorrelationID(ctx),
		)

		if input.HomeTeam != nil || input.AwayTeam != nil || input.KickoffTime != nil || input.Round != nil || input.Venue != nil {
			s.publish(ctx, sharedevents.MatchUpdated, sharedevents.MatchUpdatedPayload{
				MatchID:     match.ID,
				HomeTeam:    match.HomeTeam,
				AwayTeam:    match.AwayTeam,
				KickoffTime: match.KickoffTime,
				Round:       match.Round,
				Venue:       match.Venue,
			})
		}
		if input.HomeScore != nil || input.AwayScore != nil {
			s.publishScoreUpdate(ctx, match)
		}
		if input.Status != nil {
			s.publishStatusChange(ctx, match)
		}

		return match, nil
	})
}

// UpdateScore sets the current score. Callers that drive a live match forward
// use this on every tick.
func (s *MatchService) UpdateScore(ctx context.Context, id uuid.UUID, homeScore, awayScore int) (*matchtypes.Match, error) {
	return withTelemetry(s, ctx, "update_score", func(ctx context.Context) (*matchtypes.Match, error) {
		if err := validateScores(&homeScore, &awayScore); err != nil {
			return nil, err
		}

		match, err := s.repo.UpdateMatch(ctx, id, matchdb.MatchUpdateFields{
			HomeScore: &homeScore,
			AwayScore: &awayScore,
		})
		if err != nil {
			if errors.Is(err, matchdb.ErrNotFound) {
				return nil, ErrMatchNotFound
			}
			return nil, err
		}

		s.logger.InfoContext(ctx, "Score updated",
			attr.UUIDValue("match_id", match.ID),
			attr.Int("home_score", homeScore),
			attr.Int("away_score", awayScore),
			attr.ExtractCorrelationID(ctx),
		)

		s.publishScoreUpdate(ctx, match)
		return match, nil
	})
}

// UpdateStatus transitions the match lifecycle.
func (s *MatchService) UpdateStatus(ctx context.Context, id uuid.UUID, status matchtypes.MatchStatus) (*matchtypes.Match, error) {
	return withTelemetry(s, ctx, "update_status", func(ctx context.Context) (*matchtypes.Match, error) {
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
		}

		match, err := s.repo.UpdateMatch(ctx, id, matchdb.MatchUpdateFields{
			Status: &status,
		})
		if err != nil {
			if errors.Is(err, matchdb.ErrNotFound) {
				return nil, ErrMatchNotFound
			}
			return nil, err
		}

		s.logger.InfoContext(ctx, "Match status changed",
			attr.UUIDValue("match_id", match.ID),
			attr.String("status", string(status)),
			attr.ExtractCorrelationID(ctx),
		)

		s.publishStatusChange(ctx, match)
		return match, nil
	})
}

// DeleteMatch removes a fixture.
func (s *MatchService) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	_, err := withTelemetry(s, ctx, "delete_match", func(ctx context.Context) (struct{}, error) {
		if err := s.repo.DeleteMatch(ctx, id); err != nil {
			if errors.Is(err, matchdb.ErrNotFound) {
				return struct{}{}, ErrMatchNotFound
			}
			return struct{}{}, err
		}

		s.logger.InfoContext(ctx, "Match deleted",
			attr.UUIDValue("match_id", id),
			attr.ExtractCorrelationID(ctx),
		)

		s.publish(ctx, sharedevents.MatchDeleted, sharedevents.MatchDeletedPayload{MatchID: id})
		return struct{}{}, nil
	})
	return err
}

func (s *MatchService) detail(match *matchtypes.Match, now time.Time) *MatchDetail {
	return &MatchDetail{
		Match:         *match,
		Gate:          matchtypes.Gate(now, match.KickoffTime),
		TimeRemaining: matchtypes.RemainingUntil(now, match.KickoffTime),
	}
}

func validateScores(homeScore, awayScore *int) error {
	if homeScore != nil && *homeScore < 0 {
		return fmt.Errorf("%w: home score %d", ErrInvalidScore, *homeScore)
	}
	if awayScore != nil && *awayScore < 0 {
		return fmt.Errorf("%w: away score %d", ErrInvalidScore, *awayScore)
	}
	return nil
}

// publish delivers a notification without failing the calling operation.
func (s *MatchService) publish(ctx context.Context, subject string, payload any) {
	if err := s.eventBus.PublishJSON(ctx, subject, payload); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish event",
			attr.String("subject", subject),
			attr.Error(err),
		)
	}
}

func (s *MatchService) publishScoreUpdate(ctx context.Context, match *matchtypes.Match) {
	s.publish(ctx, sharedevents.MatchScoreUpdated, sharedevents.MatchUpdatePayload{
		MatchID:   match.ID,
		Type:      sharedevents.MatchUpdateScore,
		HomeScore: match.HomeScore,
		AwayScore: match.AwayScore,
		Status:    string(match.Status),
		Timestamp: s.clock.NowUTC(),
	})
}

func (s *MatchService) publishStatusChange(ctx context.Context, match *matchtypes.Match) {
	s.publish(ctx, sharedevents.MatchStatusChanged, sharedevents.MatchUpdatePayload{
		MatchID:   match.ID,
		Type:      sharedevents.MatchUpdateStatus,
		Status:    string(match.Status),
		Timestamp: s.clock.NowUTC(),
	})
}
