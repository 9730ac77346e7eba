package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	pg "vet-clinic/internal/adapters/storage/postgres"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate [up|down|status]",
		Short: "Run database migrations",
		Long: `Aplica (up, default), revierte la última (down) o lista (status)
las migraciones embebidas contra DB_DSN.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"up", "down", "status"},
		RunE:      runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := setup(ctx)
	if err != nil {
		return err
	}
	if !a.cfg.UsesPostgres() {
		return errors.New("migrate: DB_DSN is required")
	}

	db, err := a.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	direction := "up"
	if len(args) == 1 {
		direction = args[0]
	}

	switch direction {
	case "up":
		err = pg.Migrate(ctx, db)
	case "down":
		err = pg.MigrateDown(ctx, db)
	case "status":
		err = pg.MigrationStatus(ctx, db)
	default:
		return fmt.Errorf("migrate: unknown direction %q", direction)
	}
	if err != nil {
		return err
	}

	a.log.Info("migrate done", map[string]any{"direction": direction})
	return nil
}
