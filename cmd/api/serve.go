package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	pg "vet-clinic/internal/adapters/storage/postgres"
	"vet-clinic/internal/middleware"
	"vet-clinic/internal/router"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := setup(ctx)
	if err != nil {
		return err
	}

	loc, err := a.cfg.Location()
	if err != nil {
		return err
	}

	var db *sql.DB
	if a.cfg.UsesPostgres() {
		db, err = a.openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		if a.cfg.DB.AutoMigrate {
			if err := pg.Migrate(ctx, db); err != nil {
				return err
			}
			a.log.Info("migrations applied", nil)
		}
	} else {
		a.log.Warn("DB_DSN not set, using in-memory storage", nil)
	}

	opts := router.Options{
		DB:       db,
		Logger:   a.log,
		Location: loc,
		Swagger:  a.cfg.Swagger,
	}
	if a.cfg.RateLimit.Enabled {
		opts.RateLimit = &middleware.RateLimitOptions{
			RPS:   a.cfg.RateLimit.RPS,
			Burst: a.cfg.RateLimit.Burst,
		}
	}

	srv := &http.Server{
		Addr:         a.cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("starting server", map[string]any{
			"addr":     srv.Addr,
			"env":      a.cfg.Env,
			"timezone": loc.String(),
			"storage":  storageName(db),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func storageName(db *sql.DB) string {
	if db == nil {
		return "memory"
	}
	return "postgres"
}
