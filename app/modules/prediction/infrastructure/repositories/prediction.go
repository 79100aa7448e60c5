package predictiondb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	matchtypes "github.com/matchday-club/predictor/app/modules/match/domain/types"
	predictiontypes "github.com/matchday-club/predictor/app/modules/prediction/domain/types"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
)

const maxPageSize = 50

// PredictionDBImpl is the bun-backed prediction repository.
type PredictionDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*PredictionDBImpl)(nil)

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == "23505"
	}
	return false
}

func (db *PredictionDBImpl) GetPrediction(ctx context.Context, id uuid.UUID) (*predictiontypes.Prediction, error) {
	prediction := new(Prediction)
	err := db.DB.NewSelect().
		Model(prediction).
		Where("p.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch prediction %s: %w", id, err)
	}
	return prediction.toDomain(), nil
}

func (db *PredictionDBImpl) GetByUserAndMatch(ctx context.Context, userID, matchID uuid.UUID) (*predictiontypes.Prediction, error) {
	prediction := new(Prediction)
	err := db.DB.NewSelect().
		Model(prediction).
		Where("p.user_id = ?", userID).
		Where("p.match_id = ?", matchID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch prediction for user %s match %s: %w", userID, matchID, err)
	}
	return prediction.toDomain(), nil
}

func (db *PredictionDBImpl) ListPredictions(ctx context.Context, filter predictiontypes.PredictionFilter) ([]predictiontypes.Prediction, int, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	var rows []Prediction
	query := db.DB.NewSelect().Model(&rows)

	if filter.UserID != uuid.Nil {
		query = query.Where("p.user_id = ?", filter.UserID)
	}
	if filter.MatchID != uuid.Nil {
		query = query.Where("p.match_id = ?", filter.MatchID)
	}

	total, err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		ScanAndCount(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list predictions: %w", err)
	}

	predictions := make([]predictiontypes.Prediction, 0, len(rows))
	for i := range rows {
		predictions = append(predictions, *rows[i].toDomain())
	}
	return predictions, total, nil
}

func (db *PredictionDBImpl) ListAll(ctx context.Context) ([]predictiontypes.Prediction, error) {
	var rows []Prediction
	err := db.DB.NewSelect().
		Model(&rows).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list all predictions: %w", err)
	}

	predictions := make([]predictiontypes.Prediction, 0, len(rows))
	for i := range rows {
		predictions = append(predictions, *rows[i].toDomain())
	}
	return predictions, nil
}

func (db *PredictionDBImpl) CreatePrediction(ctx context.Context, prediction *predictiontypes.Prediction) error {
	row := &Prediction{
		ID:        prediction.ID,
		UserID:    prediction.UserID,
		MatchID:   prediction.MatchID,
		HomeGoals: prediction.HomeGoals,
		AwayGoals: prediction.AwayGoals,
		Points:    0,
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}

	if _, err := db.DB.NewInsert().Model(row).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create prediction: %w", err)
	}

	prediction.ID = row.ID
	prediction.Points = 0
	return nil
}

// UpdateGoals replaces the predicted goals only; points are untouched by this
// path.
func (db *PredictionDBImpl) UpdateGoals(ctx context.Context, id uuid.UUID, homeGoals, awayGoals int) (*predictiontypes.Prediction, error) {
	result, err := db.DB.NewUpdate().
		Model((*Prediction)(nil)).
		Set("home_goals = ?", homeGoals).
		Set("away_goals = ?", awayGoals).
		Set("updated_at = current_timestamp").
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update prediction %s: %w", id, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, ErrNotFound
	}

	return db.GetPrediction(ctx, id)
}

// UpdatePoints is the sweep's write path; nothing else mutates points.
func (db *PredictionDBImpl) UpdatePoints(ctx context.Context, id uuid.UUID, points int) error {
	result, err := db.DB.NewUpdate().
		Model((*Prediction)(nil)).
		Set("points = ?", points).
		Set("updated_at = current_timestamp").
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update points for prediction %s: %w", id, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

func (db *PredictionDBImpl) DeletePrediction(ctx context.Context, id uuid.UUID) error {
	result, err := db.DB.NewDelete().
		Model((*Prediction)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete prediction %s: %w", id, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *PredictionDBImpl) ListForFinishedMatches(ctx context.Context) ([]SweepRow, error) {
	var rows []SweepRow
	err := db.DB.NewSelect().
		Model(&rows).
		ColumnExpr("p.*").
		ColumnExpr("m.home_score AS actual_home, m.away_score AS actual_away").
		Join("JOIN matches AS m ON m.id = p.match_id").
		Where("m.status = ?", matchtypes.MatchStatusFinished).
		Where("m.home_score IS NOT NULL").
		Where("m.away_score IS NOT NULL").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions for finished matches: %w", err)
	}
	return rows, nil
}
