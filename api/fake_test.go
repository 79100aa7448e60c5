package api

import (
	"context"
	"io"

	"github.com/google/uuid"
	leaderboardservice "github.com/matchday-club/predictor/app/modules/leaderboard/application"
	leaderboardtypes "github.com/matchday-club/predictor/app/modules/leaderboard/domain/types"
	matchservice "github.com/matchday-club/predictor/app/modules/match/application"
	matchtypes "github.com/matchday-club/predictor/app/modules/match/domain/types"
	predictionservice "github.com/matchday-club/predictor/app/modules/prediction/application"
	predictiontypes "github.com/matchday-club/predictor/app/modules/prediction/domain/types"
	usertypes "github.com/matchday-club/predictor/app/modules/user/domain/types"
	userdb "github.com/matchday-club/predictor/app/modules/user/infrastructure/repositories"
)

type fakeMatchService struct {
	GetMatchFunc    func(ctx context.Context, id uuid.UUID) (*matchservice.MatchDetail, error)
	ListMatchesFunc func(ctx context.Context, filter matchtypes.MatchFilter) ([]matchservice.MatchDetail, int, error)
	CreateMatchFunc func(ctx context.Context, input matchservice.CreateMatchInput) (*matchtypes.Match, error)
}

var _ matchservice.Service = (*fakeMatchService)(nil)

func (f *fakeMatchService) CreateMatch(ctx context.Context, input matchservice.CreateMatchInput) (*matchtypes.Match, error) {
	if f.CreateMatchFunc != nil {
		return f.CreateMatchFunc(ctx, input)
	}
	return nil, matchservice.ErrInvalidMatch
}

func (f *fakeMatchService) GetMatch(ctx context.Context, id uuid.UUID) (*matchservice.MatchDetail, error) {
	if f.GetMatchFunc != nil {
		return f.GetMatchFunc(ctx, id)
	}
	return nil, matchservice.ErrMatchNotFound
}

func (f *fakeMatchService) ListMatches(ctx context.Context, filter matchtypes.MatchFilter) ([]matchservice.MatchDetail, int, error) {
	if f.ListMatchesFunc != nil {
		return f.ListMatchesFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (f *fakeMatchService) ListLiveMatches(ctx context.Context) ([]matchtypes.Match, error) {
	return nil, nil
}

func (f *fakeMatchService) UpdateMatch(ctx context.Context, id uuid.UUID, input matchservice.UpdateMatchInput) (*matchtypes.Match, error) {
	return nil, matchservice.ErrMatchNotFound
}

func (f *fakeMatchService) UpdateScore(ctx context.Context, id uuid.UUID, homeScore, awayScore int) (*matchtypes.Match, error) {
	return nil, matchservice.ErrMatchNotFound
}

func (f *fakeMatchService) UpdateStatus(ctx context.Context, id uuid.UUID, status matchtypes.MatchStatus) (*matchtypes.Match, error) {
	return nil, matchservice.ErrMatchNotFound
}

func (f *fakeMatchService) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	return matchservice.ErrMatchNotFound
}

type fakePredictionService struct {
	CreatePredictionFunc func(ctx context.Context, userID, matchID uuid.UUID, homeGoals, awayGoals int) (*predictiontypes.Prediction, error)
	UpdatePredictionFunc func(ctx context.Context, predictionID, callerUserID uuid.UUID, homeGoals, awayGoals int) (*predictiontypes.Prediction, error)
	RecalculateFunc      func(ctx context.Context) (int, error)
}

var _ predictionservice.Service = (*fakePredictionService)(nil)

func (f *fakePredictionService) CreatePrediction(ctx context.Context, userID, matchID uuid.UUID, homeGoals, awayGoals int) (*predictiontypes.Prediction, error) {
	if f.CreatePredictionFunc != nil {
		return f.CreatePredictionFunc(ctx, userID, matchID, homeGoals, awayGoals)
	}
	return nil, predictionservice.ErrMatchNotFound
}

func (f *fakePredictionService) UpdatePrediction(ctx context.Context, predictionID, callerUserID uuid.UUID, homeGoals, awayGoals int) (*predictiontypes.Prediction, error) {
	if f.UpdatePredictionFunc != nil {
		return f.UpdatePredictionFunc(ctx, predictionID, callerUserID, homeGoals, awayGoals)
	}
	return nil, predictionservice.ErrPredictionNotFound
}

func (f *fakePredictionService) DeletePrediction(ctx context.Context, predictionID, callerUserID uuid.UUID) error {
	return predictionservice.ErrPredictionNotFound
}

func (f *fakePredictionService) GetPrediction(ctx context.Context, predictionID uuid.UUID) (*predictiontypes.Prediction, error) {
	return nil, predictionservice.ErrPredictionNotFound
}

func (f *fakePredictionService) ListPredictions(ctx context.Context, filter predictiontypes.PredictionFilter) ([]predictiontypes.Prediction, int, error) {
	return nil, 0, nil
}

func (f *fakePredictionService) Recalculate(ctx context.Context) (int, error) {
	if f.RecalculateFunc != nil {
		return f.RecalculateFunc(ctx)
	}
	return 0, nil
}

type fakeLeaderboardService struct {
	GetLeaderboardFunc func(ctx context.Context, forUser uuid.UUID) (*leaderboardtypes.Leaderboard, error)
}

var _ leaderboardservice.Service = (*fakeLeaderboardService)(nil)

func (f *fakeLeaderboardService) GetLeaderboard(ctx context.Context, forUser uuid.UUID) (*leaderboardtypes.Leaderboard, error) {
	if f.GetLeaderboardFunc != nil {
		return f.GetLeaderboardFunc(ctx, forUser)
	}
	return &leaderboardtypes.Leaderboard{Entries: []leaderboardtypes.Entry{}}, nil
}

func (f *fakeLeaderboardService) ExportXLSX(ctx context.Context, w io.Writer) error {
	return nil
}

func (f *fakeLeaderboardService) RenderChart(ctx context.Context, w io.Writer) error {
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]usertypes.User
}

var _ userdb.Repository = (*fakeUserRepo)(nil)

func (f *fakeUserRepo) GetUser(ctx context.Context, id uuid.UUID) (*usertypes.User, error) {
	if user, ok := f.users[id]; ok {
		return &user, nil
	}
	return nil, userdb.ErrNotFound
}

func (f *fakeUserRepo) ListUsers(ctx context.Context) ([]usertypes.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *usertypes.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if f.users == nil {
		f.users = make(map[uuid.UUID]usertypes.User)
	}
	f.users[user.ID] = *user
	return nil
}
