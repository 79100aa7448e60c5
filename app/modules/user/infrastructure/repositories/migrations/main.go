package usermigrations

import "github.com/uptrace/bun/migrate"

var Migrations = migrate.NewMigrations()

func init() {
	// Migration IDs are derived from file names; MustRegister in separate files
	// needs caller discovery enabled.
	if err := Migrations.DiscoverCaller(); err != nil {
		panic(err)
	}
}
