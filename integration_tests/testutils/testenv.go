package testutils

import (
	"context"
	"database/sql"
	"fmt"

	matchdb "github.com/matchday-club/predictor/app/modules/match/infrastructure/repositories"
	matchmigrations "github.com/matchday-club/predictor/app/modules/match/infrastructure/repositories/migrations"
	predictiondb "github.com/matchday-club/predictor/app/modules/prediction/infrastructure/repositories"
	predictionmigrations "github.com/matchday-club/predictor/app/modules/prediction/infrastructure/repositories/migrations"
	userdb "github.com/matchday-club/predictor/app/modules/user/infrastructure/repositories"
	usermigrations "github.com/matchday-club/predictor/app/modules/user/infrastructure/repositories/migrations"
	"github.com/matchday-club/predictor/integration_tests/containers"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
)

// TestEnvironment is a Postgres container with the full schema migrated, plus
// the repositories wired against it.
type TestEnvironment struct {
	DB           *bun.DB
	DSN          string
	UserDB       *userdb.UserDBImpl
	MatchDB      *matchdb.MatchDBImpl
	PredictionDB *predictiondb.PredictionDBImpl

	container *postgres.PostgresContainer
}

// NewTestEnvironment starts a Postgres container and migrates every module's
// schema. Call Teardown when done.
func NewTestEnvironment(ctx context.Context) (*TestEnvironment, error) {
	container, dsn, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		return nil, err
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())

	db.RegisterModel(&userdb.User{})
	db.RegisterModel(&matchdb.Match{})
	db.RegisterModel(&predictiondb.Prediction{})

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		container.Terminate(ctx)
		return nil, err
	}

	return &TestEnvironment{
		DB:           db,
		DSN:          dsn,
		UserDB:       &userdb.UserDBImpl{DB: db},
		MatchDB:      &matchdb.MatchDBImpl{DB: db},
		PredictionDB: &predictiondb.PredictionDBImpl{DB: db},
		container:    container,
	}, nil
}

// Teardown closes the database handle and kills the container.
func (env *TestEnvironment) Teardown(ctx context.Context) {
	if env.DB != nil {
		env.DB.Close()
	}
	if env.container != nil {
		env.container.Terminate(ctx)
	}
}

// Truncate clears every table between tests. Predictions go first so the
// foreign keys never get in the way.
func (env *TestEnvironment) Truncate(ctx context.Context) error {
	for _, table := range []string{"predictions", "matches", "users"} {
		if _, err := env.DB.NewRaw(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Exec(ctx); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}

func runMigrations(ctx context.Context, db *bun.DB) error {
	// Predictions reference matches and users, so dependency order matters.
	ordered := []struct {
		name       string
		migrations *migrate.Migrations
	}{
		{"user", usermigrations.Migrations},
		{"match", matchmigrations.Migrations},
		{"prediction", predictionmigrations.Migrations},
	}

	for _, m := range ordered {
		migrator := migrate.NewMigrator(db, m.migrations)
		if err := migrator.Init(ctx); err != nil {
			return fmt.Errorf("failed to init migrations for %s: %w", m.name, err)
		}
		if _, err := migrator.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", m.name, err)
		}
	}
	return nil
}
