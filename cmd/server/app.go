package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsaputra/taskboard-api/internal/config"
	"github.com/jsaputra/taskboard-api/internal/maintenance"
	"github.com/jsaputra/taskboard-api/internal/platform/postgres"
	"github.com/jsaputra/taskboard-api/internal/service/auth"
	"github.com/jsaputra/taskboard-api/internal/store"
)

// application holds the wired dependencies of the running server. All
// construction happens in newApplication; nothing reaches for globals.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (interfaces, so tests can substitute mocks)
	userStore    store.UserStore
	tokenStore   store.TokenStore // nil when token persistence is disabled
	projectStore store.ProjectStore
	taskStore    store.TaskStore
	labelStore   store.LabelStore
	commentStore store.CommentStore

	// Services
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier

	// Background maintenance
	sweeper       *maintenance.TokenSweeper
	cancelSweeper context.CancelFunc
}

// newApplication creates an application instance with all dependencies
// initialized from the given configuration, logger and database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	hasher := auth.NewBcryptHasher()
	app.passwordHasher = hasher
	app.passwordVerifier = hasher

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.projectStore = postgres.NewPostgresProjectStore(db, logger)
	app.taskStore = postgres.NewPostgresTaskStore(db, logger)
	app.labelStore = postgres.NewPostgresLabelStore(db, logger)
	app.commentStore = postgres.NewPostgresCommentStore(db, logger)

	if cfg.Auth.PersistTokens {
		tokenStore := postgres.NewPostgresTokenStore(db, logger)
		app.tokenStore = tokenStore

		interval := time.Duration(cfg.Auth.SweepIntervalMinutes) * time.Minute
		if interval > 0 {
			app.sweeper = maintenance.NewTokenSweeper(tokenStore, interval,
				logger.With("component", "token_sweeper"))
		}
	}

	return app, nil
}

// Run starts the background sweeper and the HTTP server, blocking until
// shutdown.
func (app *application) Run(ctx context.Context) error {
	if app.sweeper != nil {
		sweepCtx, cancel := context.WithCancel(ctx)
		app.cancelSweeper = cancel
		go app.sweeper.Run(sweepCtx)
	}

	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.cancelSweeper != nil {
		app.cancelSweeper()
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
