package usermigrations

import (
	"context"
	"fmt"

	userdb "github.com/matchday-club/predictor/app/modules/user/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating users table...")

		if _, err := db.NewCreateTable().Model((*userdb.User)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		_, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_users_department ON users (department)").Exec(ctx)
		if err != nil {
			return err
		}

		fmt.Println("Users table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping users table...")

		if _, err := db.NewDropTable().Model((*userdb.User)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Users table dropped successfully!")
		return nil
	})
}
