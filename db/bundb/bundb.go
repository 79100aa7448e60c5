package bundb

import (
	"context"
	"database/sql"
	"fmt"

	matchdb "github.com/matchday-club/predictor/app/modules/match/infrastructure/repositories"
	predictiondb "github.com/matchday-club/predictor/app/modules/prediction/infrastructure/repositories"
	userdb "github.com/matchday-club/predictor/app/modules/user/infrastructure/repositories"
	"github.com/matchday-club/predictor/config"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// DBService bundles the per-module repositories over one bun connection.
type DBService struct {
	UserDB       *userdb.UserDBImpl
	MatchDB      *matchdb.MatchDBImpl
	PredictionDB *predictiondb.PredictionDBImpl
	db           *bun.DB
}

// GetDB returns the underlying database connection pool.
func (dbService *DBService) GetDB() *bun.DB {
	return dbService.db
}

// NewBunDBService initializes a new DBService with the provided Postgres
// configuration.
func NewBunDBService(ctx context.Context, cfg config.PostgresConfig) (*DBService, error) {
	sqldb, err := pgConn(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	db.RegisterModel(&userdb.User{})
	db.RegisterModel(&matchdb.Match{})
	db.RegisterModel(&predictiondb.Prediction{})

	return &DBService{
		UserDB:       &userdb.UserDBImpl{DB: db},
		MatchDB:      &matchdb.MatchDBImpl{DB: db},
		PredictionDB: &predictiondb.PredictionDBImpl{DB: db},
		db:           db,
	}, nil
}

func pgConn(ctx context.Context, dsn string) (*sql.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))

	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return sqldb, nil
}
