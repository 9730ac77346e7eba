package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	pg "vet-clinic/internal/adapters/storage/postgres"
	"vet-clinic/internal/config"
	"vet-clinic/internal/platform/logger"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet-clinic",
		Short: "Veterinary clinic API",
		Long: `API HTTP para clientes, mascotas, citas e historiales médicos.

Sin subcomando levanta el servidor (igual que "serve").
La configuración se lee del entorno (PORT, DB_DSN, LOG_LEVEL, TIMEZONE, ...).`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())

	return cmd
}

// app es lo que comparten los subcomandos.
type app struct {
	cfg *config.Config
	log logger.Logger
}

func setup(ctx context.Context) (*app, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFmt),
		App:    cfg.AppName,
	})

	return &app{cfg: cfg, log: log}, nil
}

func (a *app) openDB() (*sql.DB, error) {
	db, err := pg.Open(a.cfg.DB.DSN, pg.PoolOptions{
		MaxOpenConns: a.cfg.DB.MaxOpenConns,
		MaxIdleConns: a.cfg.DB.MaxIdleConns,
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}
