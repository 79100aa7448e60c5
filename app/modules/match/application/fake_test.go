package matchservice

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	matchtypes "github.com/matchday-club/predictor/app/modules/match/domain/types"
	matchdb "github.com/matchday-club/predictor/app/modules/match/infrastructure/repositories"
)

// fakeMatchRepo implements matchdb.Repository with overridable functions.
type fakeMatchRepo struct {
	GetMatchFunc        func(ctx context.Context, id uuid.UUID) (*matchtypes.Match, error)
	ListMatchesFunc     func(ctx context.Context, filter matchtypes.MatchFilter) ([]matchtypes.Match, int, error)
	ListLiveMatchesFunc func(ctx context.Context) ([]matchtypes.Match, error)
	CreateMatchFunc     func(ctx context.Context, match *matchtypes.Match) error
	UpdateMatchFunc     func(ctx context.Context, id uuid.UUID, fields matchdb.MatchUpdateFields) (*matchtypes.Match, error)
	DeleteMatchFunc     func(ctx context.Context, id uuid.UUID) error

	updateCalls []matchdb.MatchUpdateFields
}

var _ matchdb.Repository = (*fakeMatchRepo)(nil)

func (f *fakeMatchRepo) GetMatch(ctx context.Context, id uuid.UUID) (*matchtypes.Match, error) {
	if f.GetMatchFunc != nil {
		return f.GetMatchFunc(ctx, id)
	}
	return nil, matchdb.ErrNotFound
}

func (f *fakeMatchRepo) ListMatches(ctx context.Context, filter matchtypes.MatchFilter) ([]matchtypes.Match, int, error) {
	if f.ListMatchesFunc != nil {
		return f.ListMatchesFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (f *fakeMatchRepo) ListLiveMatches(ctx context.Context) ([]matchtypes.Match, error) {
	if f.ListLiveMatchesFunc != nil {
		return f.ListLiveMatchesFunc(ctx)
	}
	return nil, nil
}

func (f *fakeMatchRepo) CreateMatch(ctx context.Context, match *matchtypes.Match) error {
	if f.CreateMatchFunc != nil {
		return f.CreateMatchFunc(ctx, match)
	}
	if match.ID == uuid.Nil {
		match.ID = uuid.New()
	}
	return nil
}

func (f *fakeMatchRepo) UpdateMatch(ctx context.Context, id uuid.UUID, fields matchdb.MatchUpdateFields) (*matchtypes.Match, error) {
	f.updateCalls = append(f.updateCalls, fields)
	if f.UpdateMatchFunc != nil {
		return f.UpdateMatchFunc(ctx, id, fields)
	}
	return nil, matchdb.ErrNotFound
}

func (f *fakeMatchRepo) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	if f.DeleteMatchFunc != nil {
		return f.DeleteMatchFunc(ctx, id)
	}
	return matchdb.ErrNotFound
}

// capturingEventBus records every published subject and payload.
type capturingEventBus struct {
	subjects []string
	payloads []any
}

func (c *capturingEventBus) Publish(ctx context.Context, subject string, msg *message.Message) error {
	c.subjects = append(c.subjects, subject)
	return nil
}

func (c *capturingEventBus) PublishJSON(ctx context.Context, subject string, payload any) error {
	c.subjects = append(c.subjects, subject)
	c.payloads = append(c.payloads, payload)
	return nil
}

func (c *capturingEventBus) EnsureStream(ctx context.Context, streamName string, subjects ...string) error {
	return nil
}

func (c *capturingEventBus) Close() error { return nil }
