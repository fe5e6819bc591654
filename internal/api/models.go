package api

import (
	"github.com/phrazzld/users-api/internal/domain"
)

// DefaultListLimit is used when GET /users carries no limit parameter.
const DefaultListLimit = 10

// MaxListLimit is the largest accepted limit for GET /users.
const MaxListLimit = 1000

// CreateUserRequest defines the payload for the create user endpoint.
type CreateUserRequest struct {
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name"  validate:"required"`
	Email     string  `json:"email"      validate:"required,email"`
	About     *string `json:"about"`
}

// GetUserParams holds the validated path parameters of GET /users/{id}.
type GetUserParams struct {
	ID int64 `json:"id" validate:"min=1"`
}

// ListUsersParams holds the validated query parameters of GET /users.
type ListUsersParams struct {
	Limit int `json:"limit" validate:"min=0,max=1000"`
}

// UserResponse is the JSON representation of a stored user.
type UserResponse struct {
	ID        int64   `json:"user_id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	About     *string `json:"about"`
}

// SeedResponse is returned after a successful seed run.
type SeedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// userToResponse converts a domain.User to a UserResponse.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		About:     user.About,
	}
}

// usersToResponse converts users to responses. The result is never nil so
// an empty list encodes as [] rather than null.
func usersToResponse(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userToResponse(u))
	}
	return out
}
