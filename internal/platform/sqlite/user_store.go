package sqlite

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/users-api/internal/domain"
	"github.com/phrazzld/users-api/internal/store"
	"github.com/uptrace/bun"
)

// User statements. Placeholders resolve against userRecord's column names.
const (
	insertUserSQL = `INSERT INTO users (first_name, last_name, email, about)
VALUES (?first_name, ?last_name, ?email, ?about)
RETURNING user_id, first_name, last_name, email, about`

	selectUserByIDSQL = `SELECT user_id, first_name, last_name, email, about
FROM users
WHERE user_id = ?user_id`

	listUsersSQL = `SELECT user_id, first_name, last_name, email, about
FROM users
ORDER BY first_name DESC
LIMIT ?limit`

	countUsersSQL = `SELECT COUNT(*) FROM users`
)

// userRecord is the row shape of the users table.
type userRecord struct {
	bun.BaseModel `bun:"table:users"`

	UserID    int64   `bun:"user_id,pk,autoincrement"`
	FirstName string  `bun:"first_name,notnull"`
	LastName  string  `bun:"last_name,notnull"`
	Email     string  `bun:"email,notnull"`
	About     *string `bun:"about"`
}

// listParams binds the LIMIT placeholder of listUsersSQL.
type listParams struct {
	Limit int `bun:"limit"`
}

func recordFromDomain(u *domain.User) userRecord {
	return userRecord{
		UserID:    u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		About:     u.About,
	}
}

func (r *userRecord) toDomain() *domain.User {
	return &domain.User{
		ID:        r.UserID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		About:     r.About,
	}
}

// SQLiteUserStore implements the store.UserStore interface
// on top of the shared SQLite handle.
type SQLiteUserStore struct {
	db     *DB
	logger *slog.Logger
}

// NewSQLiteUserStore creates a new SQLite implementation of the UserStore interface.
// It accepts a database handle that should be opened and closed by the caller.
func NewSQLiteUserStore(db *DB, logger *slog.Logger) *SQLiteUserStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLiteUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure SQLiteUserStore implements store.UserStore interface
var _ store.UserStore = (*SQLiteUserStore)(nil)

// Create implements store.UserStore.Create
func (s *SQLiteUserStore) Create(ctx context.Context, user *domain.User) error {
	if user == nil {
		return fmt.Errorf("%w: user is nil", store.ErrInvalidEntity)
	}
	if user.IsPersisted() {
		return store.NewStoreError("user", "create", "user already has an identifier", store.ErrInvalidEntity)
	}
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	created, err := ExecReturning[userRecord](ctx, s.db, insertUserSQL, recordFromDomain(user))
	if err != nil {
		s.logger.Error("failed to insert user", slog.String("error", err.Error()))
		return store.NewStoreError("user", "create", "insert failed", err)
	}

	*user = *created.toDomain()

	s.logger.Debug("user created", slog.Int64("user_id", user.ID))
	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *SQLiteUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	record, err := QueryOne[userRecord](ctx, s.db, selectUserByIDSQL, userRecord{UserID: id})
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrUserNotFound
		}
		s.logger.Error("failed to query user",
			slog.Int64("user_id", id),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("user", "get", "query failed", err)
	}

	return record.toDomain(), nil
}

// List implements store.UserStore.List
func (s *SQLiteUserStore) List(ctx context.Context, limit int) ([]*domain.User, error) {
	if limit < 0 {
		return nil, store.NewStoreError("user", "list", "limit must not be negative", store.ErrInvalidEntity)
	}

	records, err := QueryAll[userRecord](ctx, s.db, listUsersSQL, listParams{Limit: limit})
	if err != nil {
		s.logger.Error("failed to list users",
			slog.Int("limit", limit),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("user", "list", "query failed", err)
	}

	users := make([]*domain.User, 0, len(records))
	for i := range records {
		users = append(users, records[i].toDomain())
	}
	return users, nil
}

// Count implements store.UserStore.Count
func (s *SQLiteUserStore) Count(ctx context.Context) (int, error) {
	n, err := QueryScalar[int](ctx, s.db, countUsersSQL, nil)
	if err != nil {
		return 0, store.NewStoreError("user", "count", "query failed", err)
	}
	return n, nil
}
