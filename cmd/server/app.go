package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pulse-social/pulse-api/internal/config"
	"github.com/pulse-social/pulse-api/internal/platform/postgres"
	"github.com/pulse-social/pulse-api/internal/service"
	"github.com/pulse-social/pulse-api/internal/service/auth"
	"github.com/pulse-social/pulse-api/internal/store"
)

// application holds the shared dependencies of the server: config,
// logger, the database handle, and the store and service layers that
// the handlers are built from.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore    store.UserStore
	groupStore   store.GroupStore
	postStore    store.PostStore
	commentStore store.CommentStore
	followStore  store.FollowStore

	jwtService       auth.JWTService
	passwordVerifier *auth.BcryptVerifier

	postService    service.PostService
	commentService service.CommentService
	groupService   service.GroupService
	followService  service.FollowService
}

// newApplication connects to the database, runs pending migrations and
// wires stores, services and auth components together.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	app.db = db

	if err := postgres.RunMigrations(db, logger); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.groupStore = postgres.NewPostgresGroupStore(db, logger)
	app.postStore = postgres.NewPostgresPostStore(db, logger)
	app.commentStore = postgres.NewPostgresCommentStore(db, logger)
	app.followStore = postgres.NewPostgresFollowStore(db, logger)

	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}
	app.passwordVerifier = auth.NewBcryptVerifier()

	app.postService = service.NewPostService(app.postStore, app.userStore, logger)
	app.commentService = service.NewCommentService(app.commentStore, app.postStore, app.userStore, logger)
	app.groupService = service.NewGroupService(app.groupStore, logger)
	app.followService = service.NewFollowService(db, app.followStore, app.userStore, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
