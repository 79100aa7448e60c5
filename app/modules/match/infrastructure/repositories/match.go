package matchdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	matchtypes "github.com/matchday-club/predictor/app/modules/match/domain/types"
	"github.com/uptrace/bun"
)

const maxPageSize = 50

// MatchDBImpl is the bun-backed match repository.
type MatchDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*MatchDBImpl)(nil)

func (db *MatchDBImpl) GetMatch(ctx context.Context, id uuid.UUID) (*matchtypes.Match, error) {
	match := new(Match)
	err := db.DB.NewSelect().
		Model(match).
		Where("m.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch match %s: %w", id, err)
	}
	return match.toDomain(), nil
}

func (db *MatchDBImpl) ListMatches(ctx context.Context, filter matchtypes.MatchFilter) ([]matchtypes.Match, int, error) {
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

	var rows []Match
	query := db.DB.NewSelect().Model(&rows)

	if filter.Status != "" {
		query = query.Where("m.status = ?", filter.Status)
	}
	if filter.Round != "" {
		query = query.Where("m.round ILIKE ?", "%"+filter.Round+"%")
	}
	if filter.Team != "" {
		pattern := "%" + filter.Team + "%"
		query = query.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("m.home_team ILIKE ?", pattern).
				WhereOr("m.away_team ILIKE ?", pattern)
		})
	}
	if filter.DateFrom != nil {
		query = query.Where("m.kickoff_time >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("m.kickoff_time <= ?", *filter.DateTo)
	}

	total, err := query.
		Order("kickoff_time ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		ScanAndCount(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list matches: %w", err)
	}

	matches := make([]matchtypes.Match, 0, len(rows))
	for i := range rows {
		matches = append(matches, *rows[i].toDomain())
	}
	return matches, total, nil
}

func (db *MatchDBImpl) ListLiveMatches(ctx context.Context) ([]matchtypes.Match, error) {
	var rows []Match
	err := db.DB.NewSelect().
		Model(&rows).
		Where("m.status = ?", matchtypes.MatchStatusLive).
		Order("kickoff_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list live matches: %w", err)
	}

	matches := make([]matchtypes.Match, 0, len(rows))
	for i := range rows {
		matches = append(matches, *rows[i].toDomain())
	}
	return matches, nil
}

func (db *MatchDBImpl) CreateMatch(ctx context.Context, match *matchtypes.Match) error {
	row := fromDomain(match)
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if row.Status == "" {
		row.Status = matchtypes.MatchStatusScheduled
	}

	if _, err := db.DB.NewInsert().Model(row).Exec(ctx); err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}

	match.ID = row.ID
	match.Status = row.Status
	return nil
}

func (db *MatchDBImpl) UpdateMatch(ctx context.Context, id uuid.UUID, fields MatchUpdateFields) (*matchtypes.Match, error) {
	query := db.DB.NewUpdate().
		Model((*Match)(nil)).
		Set("updated_at = current_timestamp").
		Where("id = ?", id)

	if fields.HomeTeam != nil {
		query = query.Set("home_team = ?", *fields.HomeTeam)
	}
	if fields.AwayTeam != nil {
		query = query.Set("away_team = ?", *fields.AwayTeam)
	}
	if fields.KickoffTime != nil {
		query = query.Set("kickoff_time = ?", *fields.KickoffTime)
	}
	if fields.HomeScore != nil {
		query = query.Set("home_score = ?", *fields.HomeScore)
	}
	if fields.AwayScore != nil {
		query = query.Set("away_score = ?", *fields.AwayScore)
	}
	if fields.Status != nil {
		query = query.Set("status = ?", *fields.Status)
	}
	if fields.Round != nil {
		query = query.Set("round = ?", *fields.Round)
	}
	if fields.Venue != nil {
		query = query.Set("venue = ?", *fields.Venue)
	}

	result, err := query.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update match %s: %w", id, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, ErrNotFound
	}

	return db.GetMatch(ctx, id)
}

func (db *MatchDBImpl) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	result, err := db.DB.NewDelete().
		Model((*Match)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete match %s: %w", id, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}
