package bootstrap

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/verdantgames/GardenGrove_Go/internal/config"
)

// RunMigrations applies any pending goose SQL migrations before the
// application starts serving traffic. Uses a separate database/sql
// connection because goose does not speak pgx pools.
func RunMigrations(cfg *config.Config) error {
	db, err := sql.Open("pgx", cfg.GetDBConnString())
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedOpenMigrationDB, err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSetDialect, err)
	}

	if err := goose.Up(db, MigrationsDir); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRunMigrations, err)
	}

	slog.Info(LogMsgMigrationsApplied)
	return nil
}
