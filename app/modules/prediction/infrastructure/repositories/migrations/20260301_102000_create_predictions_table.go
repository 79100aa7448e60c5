package predictionmigrations

import (
	"context"
	"fmt"

	predictiondb "github.com/matchday-club/predictor/app/modules/prediction/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating predictions table...")

		if _, err := db.NewCreateTable().Model((*predictiondb.Prediction)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		// One prediction per user per match. This index, not the service-level
		// check, is what actually prevents concurrent duplicate creates.
		_, err := db.NewRaw("CREATE UNIQUE INDEX IF NOT EXISTS idx_predictions_user_match ON predictions (user_id, match_id)").Exec(ctx)
		if err != nil {
			return err
		}
		_, err = db.NewRaw("CREATE INDEX IF NOT EXISTS idx_predictions_match_id ON predictions (match_id)").Exec(ctx)
		if err != nil {
			return err
		}
		_, err = db.NewRaw("CREATE INDEX IF NOT EXISTS idx_predictions_user_id ON predictions (user_id)").Exec(ctx)
		if err != nil {
			return err
		}

		fmt.Println("Predictions table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping predictions table...")

		if _, err := db.NewDropTable().Model((*predictiondb.Prediction)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Predictions table dropped successfully!")
		return nil
	})
}
