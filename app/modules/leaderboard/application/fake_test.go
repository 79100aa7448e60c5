package leaderboardservice

import (
	"context"

	"github.com/google/uuid"
	predictiontypes "github.com/matchday-club/predictor/app/modules/prediction/domain/types"
	predictiondb "github.com/matchday-club/predictor/app/modules/prediction/infrastructure/repositories"
	usertypes "github.com/matchday-club/predictor/app/modules/user/domain/types"
	userdb "github.com/matchday-club/predictor/app/modules/user/infrastructure/repositories"
)

type fakeUserRepo struct {
	users []usertypes.User
	err   error
}

var _ userdb.Repository = (*fakeUserRepo)(nil)

func (f *fakeUserRepo) GetUser(ctx context.Context, id uuid.UUID) (*usertypes.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, userdb.ErrNotFound
}

func (f *fakeUserRepo) ListUsers(ctx context.Context) ([]usertypes.User, error) {
	return f.users, f.err
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *usertypes.User) error {
	f.users = append(f.users, *user)
	return nil
}

type fakePredictionRepo struct {
	predictions []predictiontypes.Prediction
	err         error
}

var _ predictiondb.Repository = (*fakePredictionRepo)(nil)

func (f *fakePredictionRepo) GetPrediction(ctx context.Context, id uuid.UUID) (*predictiontypes.Prediction, error) {
	return nil, predictiondb.ErrNotFound
}

func (f *fakePredictionRepo) GetByUserAndMatch(ctx context.Context, userID, matchID uuid.UUID) (*predictiontypes.Prediction, error) {
	return nil, predictiondb.ErrNotFound
}

func (f *fakePredictionRepo) ListPredictions(ctx context.Context, filter predictiontypes.PredictionFilter) ([]predictiontypes.Prediction, int, error) {
	return nil, 0, nil
}

func (f *fakePredictionRepo) ListAll(ctx context.Context) ([]predictiontypes.Prediction, error) {
	return f.predictions, f.err
}

func (f *fakePredictionRepo) CreatePrediction(ctx context.Context, prediction *predictiontypes.Prediction) error {
	f.predictions = append(f.predictions, *prediction)
	return nil
}

func (f *fakePredictionRepo) UpdateGoals(ctx context.Context, id uuid.UUID, homeGoals, awayGoals int) (*predictiontypes.Prediction, error) {
	return nil, predictiondb.ErrNotFound
}

func (f *fakePredictionRepo) UpdatePoints(ctx context.Context, id uuid.UUID, points int) error {
	return predictiondb.ErrNoRowsAffected
}

func (f *fakePredictionRepo) DeletePrediction(ctx context.Context, id uuid.UUID) error {
	return predictiondb.ErrNotFound
}

func (f *fakePredictionRepo) ListForFinishedMatches(ctx context.Context) ([]predictiondb.SweepRow, error) {
	return nil, nil
}
