package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/users-api/internal/config"
	"github.com/phrazzld/users-api/internal/platform/sqlite"
)

// handleMigrations runs a single goose command against the configured
// database and returns. It is called from main when -migrate is set.
func handleMigrations(ctx context.Context, cfg *config.Config, command string, logger *slog.Logger) error {
	db, err := sqlite.OpenWithoutMigrations(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to open database for migrations: %w", err)
	}
	logger.Info("Executing migrations", "command", command, "database", db.Path())
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.Error("failed to close database after migrations", "error", cerr)
		}
	}()

	return db.Migrate(ctx, command)
}
