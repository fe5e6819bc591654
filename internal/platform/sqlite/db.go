package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/users-api/internal/config"
	"github.com/phrazzld/users-api/internal/store"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// DB is the shared handle to the service's single database file.
// It is safe for concurrent use; writes are serialized by the pool holding a
// single connection.
type DB struct {
	bun    *bun.DB
	path   string
	logger *slog.Logger
}

// Open opens (creating if absent) the database file named in cfg, verifies the
// connection and applies any pending migrations before returning.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*DB, error) {
	db, err := OpenWithoutMigrations(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx, MigrateUp); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return db, nil
}

// OpenWithoutMigrations opens the database file without touching its schema.
// The migrate CLI uses it so that commands such as "down" or "status" run
// against the schema as it is.
func OpenWithoutMigrations(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Path == "" {
		return nil, fmt.Errorf("database path is empty: check your configuration")
	}

	sqldb, err := sql.Open(sqliteshim.ShimName, cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// SQLite allows a single writer; one connection keeps writers queued in
	// the pool instead of failing with SQLITE_BUSY.
	sqldb.SetMaxOpenConns(1)
	sqldb.SetMaxIdleConns(1)
	sqldb.SetConnMaxLifetime(0)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := sqldb.PingContext(pingCtx); err != nil {
		_ = sqldb.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connection established",
		"path", cfg.Path,
		"driver", sqliteshim.DriverName())

	return &DB{
		bun:    bun.NewDB(sqldb, sqlitedialect.New()),
		path:   cfg.Path,
		logger: logger.With("component", "database"),
	}, nil
}

// Path returns the database file path.
func (d *DB) Path() string {
	return d.path
}

// PingContext verifies that the database is reachable.
func (d *DB) PingContext(ctx context.Context) error {
	return d.bun.PingContext(ctx)
}

// Close releases the database file.
func (d *DB) Close() error {
	return d.bun.Close()
}

// ExecReturning runs an INSERT or UPDATE statement that ends in a RETURNING
// clause and returns the affected row. Placeholders are named after the bun
// column names of params, e.g. ?first_name.
func ExecReturning[T any](ctx context.Context, d *DB, query string, params any) (*T, error) {
	rows, err := QueryAll[T](ctx, d, query, params)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: statement returned no row", store.ErrNotFound)
	}
	return &rows[0], nil
}

// QueryOne runs a read statement expected to match at most one row.
// It returns store.ErrNotFound when nothing matches.
func QueryOne[T any](ctx context.Context, d *DB, query string, params any) (*T, error) {
	rows, err := QueryAll[T](ctx, d, query, params)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, store.ErrNotFound
	}
	return &rows[0], nil
}

// QueryAll runs a read statement and returns every matching row.
// The result is never nil.
func QueryAll[T any](ctx context.Context, d *DB, query string, params any) ([]T, error) {
	rows := make([]T, 0)
	if err := d.raw(query, params).Scan(ctx, &rows); err != nil {
		return nil, MapError(err)
	}
	return rows, nil
}

// QueryScalar runs a statement returning a single column of a single row.
func QueryScalar[T any](ctx context.Context, d *DB, query string, params any) (T, error) {
	var value T
	if err := d.raw(query, params).Scan(ctx, &value); err != nil {
		return value, MapError(err)
	}
	return value, nil
}

func (d *DB) raw(query string, params any) *bun.RawQuery {
	if params == nil {
		return d.bun.NewRaw(query)
	}
	return d.bun.NewRaw(query, params)
}
