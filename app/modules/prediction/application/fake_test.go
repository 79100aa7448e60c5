package predictionservice

import (
	"context"

	"github.com/google/uuid"
	matchtypes "github.com/matchday-club/predictor/app/modules/match/domain/types"
	matchdb "github.com/matchday-club/predictor/app/modules/match/infrastructure/repositories"
	predictiontypes "github.com/matchday-club/predictor/app/modules/prediction/domain/types"
	predictiondb "github.com/matchday-club/predictor/app/modules/prediction/infrastructure/repositories"
)

// fakePredictionRepo implements predictiondb.Repository with overridable
// functions and call recording.
type fakePredictionRepo struct {
	GetPredictionFunc          func(ctx context.Context, id uuid.UUID) (*predictiontypes.Prediction, error)
	GetByUserAndMatchFunc      func(ctx context.Context, userID, matchID uuid.UUID) (*predictiontypes.Prediction, error)
	ListPredictionsFunc        func(ctx context.Context, filter predictiontypes.PredictionFilter) ([]predictiontypes.Prediction, int, error)
	ListAllFunc                func(ctx context.Context) ([]predictiontypes.Prediction, error)
	CreatePredictionFunc       func(ctx context.Context, prediction *predictiontypes.Prediction) error
	UpdateGoalsFunc            func(ctx context.Context, id uuid.UUID, homeGoals, awayGoals int) (*predictiontypes.Prediction, error)
	UpdatePointsFunc           func(ctx context.Context, id uuid.UUID, points int) error
	DeletePredictionFunc       func(ctx context.Context, id uuid.UUID) error
	ListForFinishedMatchesFunc func(ctx context.Context) ([]predictiondb.SweepRow, error)

	createCalls       []predictiontypes.Prediction
	updatePointsCalls map[uuid.UUID]int
	deleteCalls       []uuid.UUID
}

var _ predictiondb.Repository = (*fakePredictionRepo)(nil)

func (f *fakePredictionRepo) GetPrediction(ctx context.Context, id uuid.UUID) (*predictiontypes.Prediction, error) {
	if f.GetPredictionFunc != nil {
		return f.GetPredictionFunc(ctx, id)
	}
	return nil, predictiondb.ErrNotFound
}

func (f *fakePredictionRepo) GetByUserAndMatch(ctx context.Context, userID, matchID uuid.UUID) (*predictiontypes.Prediction, error) {
	if f.GetByUserAndMatchFunc != nil {
		return f.GetByUserAndMatchFunc(ctx, userID, matchID)
	}
	return nil, predictiondb.ErrNotFound
}

func (f *fakePredictionRepo) ListPredictions(ctx context.Context, filter predictiontypes.PredictionFilter) ([]predictiontypes.Prediction, int, error) {
	if f.ListPredictionsFunc != nil {
		return f.ListPredictionsFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (f *fakePredictionRepo) ListAll(ctx context.Context) ([]predictiontypes.Prediction, error) {
	if f.ListAllFunc != nil {
		return f.ListAllFunc(ctx)
	}
	return nil, nil
}

func (f *fakePredictionRepo) CreatePrediction(ctx context.Context, prediction *predictiontypes.Prediction) error {
	f.createCalls = append(f.createCalls, *prediction)
	if f.CreatePredictionFunc != nil {
		return f.CreatePredictionFunc(ctx, prediction)
	}
	if prediction.ID == uuid.Nil {
		prediction.ID = uuid.New()
	}
	return nil
}

func (f *fakePredictionRepo) UpdateGoals(ctx context.Context, id uuid.UUID, homeGoals, awayGoals int) (*predictiontypes.Prediction, error) {
	if f.UpdateGoalsFunc != nil {
		return f.UpdateGoalsFunc(ctx, id, homeGoals, awayGoals)
	}
	return &predictiontypes.Prediction{ID: id, HomeGoals: homeGoals, AwayGoals: awayGoals}, nil
}

func (f *fakePredictionRepo) UpdatePoints(ctx context.Context, id uuid.UUID, points int) error {
	if f.updatePointsCalls == nil {
		f.updatePointsCalls = make(map[uuid.UUID]int)
	}
	f.updatePointsCalls[id] = points
	if f.UpdatePointsFunc != nil {
		return f.UpdatePointsFunc(ctx, id, points)
	}
	return nil
}

func (f *fakePredictionRepo) DeletePrediction(ctx context.Context, id uuid.UUID) error {
	f.deleteCalls = append(f.deleteCalls, id)
	if f.DeletePredictionFunc != nil {
		return f.DeletePredictionFunc(ctx, id)
	}
	return nil
}

func (f *fakePredictionRepo) ListForFinishedMatches(ctx context.Context) ([]predictiondb.SweepRow, error) {
	if f.ListForFinishedMatchesFunc != nil {
		return f.ListForFinishedMatchesFunc(ctx)
	}
	return nil, nil
}

// fakeMatchRepo implements matchdb.Repository for gate tests.
type fakeMatchRepo struct {
	GetMatchFunc func(ctx context.Context, id uuid.UUID) (*matchtypes.Match, error)
}

var _ matchdb.Repository = (*fakeMatchRepo)(nil)

func (f *fakeMatchRepo) GetMatch(ctx context.Context, id uuid.UUID) (*matchtypes.Match, error) {
	if f.GetMatchFunc != nil {
		return f.GetMatchFunc(ctx, id)
	}
	return nil, matchdb.ErrNotFound
}

func (f *fakeMatchRepo) ListMatches(ctx context.Context, filter matchtypes.MatchFilter) ([]matchtypes.Match, int, error) {
	return nil, 0, nil
}

func (f *fakeMatchRepo) ListLiveMatches(ctx context.Context) ([]matchtypes.Match, error) {
	return nil, nil
}

func (f *fakeMatchRepo) CreateMatch(ctx context.Context, match *matchtypes.Match) error {
	return nil
}

func (f *fakeMatchRepo) UpdateMatch(ctx context.Context, id uuid.UUID, fields matchdb.MatchUpdateFields) (*matchtypes.Match, error) {
	return nil, matchdb.ErrNotFound
}

func (f *fakeMatchRepo) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	return matchdb.ErrNotFound
}
