package store

import (
	"context"

	"github.com/phrazzld/users-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create inserts a new user and fills in the identifier assigned by the
	// database. Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their identifier.
	// Returns ErrUserNotFound if no row matches.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// List returns at most limit users ordered by first name, descending.
	// A limit of zero yields an empty, non-nil slice.
	List(ctx context.Context, limit int) ([]*domain.User, error)

	// Count returns the total number of stored users.
	Count(ctx context.Context) (int, error)
}
