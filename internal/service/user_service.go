package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/users-api/internal/domain"
	"github.com/phrazzld/users-api/internal/seed"
	"github.com/phrazzld/users-api/internal/store"
)

// CreateUserInput carries the already validated fields of a create request.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	About     *string
}

// SeedResult reports how many users a seed run inserted.
type SeedResult struct {
	Requested int
	Inserted  int
}

// UserService provides the user use cases exposed over HTTP.
type UserService interface {
	// CreateUser stores a new user and returns it with its assigned ID.
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)

	// GetUser retrieves a user by ID. Returns store.ErrUserNotFound when absent.
	GetUser(ctx context.Context, id int64) (*domain.User, error)

	// ListUsers returns at most limit users ordered by first name descending.
	ListUsers(ctx context.Context, limit int) ([]*domain.User, error)

	// Seed inserts count generated users one at a time. Users inserted before
	// a failure stay in place; the result reports how many made it.
	Seed(ctx context.Context, count int) (SeedResult, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	generator seed.Generator
	logger    *slog.Logger
}

// NewUserService creates a new UserService. The generator is only used by
// Seed and may be nil when seeding is turned off.
func NewUserService(userStore store.UserStore, generator seed.Generator, logger *slog.Logger) (*UserServiceImpl, error) {
	if userStore == nil {
		return nil, fmt.Errorf("userStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserServiceImpl{
		userStore: userStore,
		generator: generator,
		logger:    logger.With("component", "user_service"),
	}, nil
}

// Ensure UserServiceImpl implements UserService
var _ UserService = (*UserServiceImpl)(nil)

// CreateUser stores a new user built from input.
func (s *UserServiceImpl) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	user, err := domain.NewUser(input.FirstName, input.LastName, input.Email, input.About)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		s.logger.Error("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Debug("created user", "user_id", user.ID)
	return user, nil
}

// GetUser retrieves a user by their ID
func (s *UserServiceImpl) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found", "user_id", id)
		} else {
			s.logger.Error("failed to retrieve user", "error", err, "user_id", id)
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	return user, nil
}

// ListUsers returns up to limit users.
func (s *UserServiceImpl) ListUsers(ctx context.Context, limit int) ([]*domain.User, error) {
	users, err := s.userStore.List(ctx, limit)
	if err != nil {
		s.logger.Error("failed to list users", "error", err, "limit", limit)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// Seed inserts count generated users sequentially through the same store call
// used by CreateUser. There is no enclosing transaction.
func (s *UserServiceImpl) Seed(ctx context.Context, count int) (SeedResult, error) {
	result := SeedResult{Requested: count}

	if s.generator == nil {
		return result, ErrSeedingDisabled
	}
	if count <= 0 {
		return result, ErrInvalidSeedCount
	}

	for i := 0; i < count; i++ {
		user, err := s.generator.NextUser()
		if err != nil {
			return result, fmt.Errorf("failed to generate user %d: %w", i+1, err)
		}

		if err := s.userStore.Create(ctx, user); err != nil {
			s.logger.Error("seeding aborted",
				"error", err,
				"inserted", result.Inserted,
				"requested", count)
			return result, fmt.Errorf("failed to insert seeded user %d: %w", i+1, err)
		}
		result.Inserted++
	}

	s.logger.Info("database seeded", "inserted", result.Inserted)
	return result, nil
}
