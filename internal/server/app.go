// Package server initializes and runs the dev backend: it opens the
// database, applies migrations, and serves the profile store and identity
// endpoint over HTTP with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ykarpenko/sessionkeeper/internal/logging"
	"github.com/ykarpenko/sessionkeeper/internal/server/accounts"
	"github.com/ykarpenko/sessionkeeper/internal/server/config"
	"github.com/ykarpenko/sessionkeeper/internal/server/httpapi"
	"github.com/ykarpenko/sessionkeeper/internal/server/profiles"
	"github.com/ykarpenko/sessionkeeper/internal/server/shared/db"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config         *config.Config
	logger         logging.Logger
	repoManager    db.RepositoryManager
	profileService *profiles.Service
	accountService *accounts.Service
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	rm, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	ps := profiles.NewService(rm.Profiles())
	as := accounts.NewService(rm.Accounts(), c)

	return &App{
		config:         c,
		logger:         logger,
		repoManager:    rm,
		profileService: ps,
		accountService: as,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.repoManager.RunMigrations(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	router := httpapi.NewRouter(&httpapi.Deps{
		Logger:   app.logger,
		Profiles: app.profileService,
		Accounts: app.accountService,
		Config:   app.config,
	})

	srv := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "HTTP server listening", "addr", app.config.EndpointAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		app.logger.Info(ctx, "Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}

	if conn := app.repoManager.Conn(); conn != nil {
		if err := conn.Close(); err != nil {
			app.logger.Error(ctx, "error closing db connection", "error", err)
		}
	}

	return nil
}
