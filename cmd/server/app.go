package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/users-api/internal/config"
	"github.com/phrazzld/users-api/internal/platform/sqlite"
	"github.com/phrazzld/users-api/internal/seed"
	"github.com/phrazzld/users-api/internal/service"
	"github.com/phrazzld/users-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sqlite.DB

	userStore   store.UserStore
	userService service.UserService
}

// newApplication creates a new application instance with all dependencies initialized.
// The database must already be open and migrated.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sqlite.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.userStore = sqlite.NewSQLiteUserStore(db, logger)

	var generator seed.Generator
	if cfg.Seed.Enabled {
		generator = seed.NewFakeGenerator(uint64(time.Now().UnixNano()))
		logger.Warn("seed endpoint enabled; do not expose this instance publicly",
			"count", cfg.Seed.Count,
			"rate_per_minute", cfg.Seed.RatePerMinute)
	}

	userService, err := service.NewUserService(app.userStore, generator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}
	app.userService = userService

	logger.Info("Application initialized successfully")
	return app, nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		app.logger.Info("Closing database", "path", app.db.Path())
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
