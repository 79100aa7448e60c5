package matchmigrations

import (
	"context"
	"fmt"

	matchdb "github.com/matchday-club/predictor/app/modules/match/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating matches table...")

		if _, err := db.NewCreateTable().Model((*matchdb.Match)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		// Listings filter on status and sort on kickoff; the sweep selects by status.
		_, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_matches_status ON matches (status)").Exec(ctx)
		if err != nil {
			return err
		}
		_, err = db.NewRaw("CREATE INDEX IF NOT EXISTS idx_matches_kickoff_time ON matches (kickoff_time)").Exec(ctx)
		if err != nil {
			return err
		}

		fmt.Println("Matches table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping matches table...")

		if _, err := db.NewDropTable().Model((*matchdb.Match)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Matches table dropped successfully!")
		return nil
	})
}
