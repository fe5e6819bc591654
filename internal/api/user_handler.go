package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/users-api/internal/api/shared"
	"github.com/phrazzld/users-api/internal/platform/logger"
	"github.com/phrazzld/users-api/internal/service"
)

// SeedSuccessMessage is the confirmation returned by POST /seed.
const SeedSuccessMessage = "Database seeded successfully"

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService service.UserService
	seedCount   int
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler. seedCount is the number of users
// generated per POST /seed call.
func NewUserHandler(userService service.UserService, seedCount int, logger *slog.Logger) *UserHandler {
	if logger == nil {
		panic("logger cannot be nil for UserHandler")
	}

	return &UserHandler{
		userService: userService,
		seedCount:   seedCount,
		logger:      logger.With("component", "user_handler"),
	}
}

// CreateUser handles POST /users requests
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateUserRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		log.Debug("invalid create user payload", "error", err)
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	user, err := h.userService.CreateUser(r.Context(), service.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		About:     req.About,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("user created", "user_id", user.ID)
	shared.RespondWithJSON(w, r, http.StatusCreated, userToResponse(user))
}

// GetUser handles GET /users/{id} requests
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	params, err := parseGetUserParams(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	user, err := h.userService.GetUser(r.Context(), params.ID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// ListUsers handles GET /users requests
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	params, err := parseListUsersParams(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	users, err := h.userService.ListUsers(r.Context(), params.Limit)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, usersToResponse(users))
}

// Seed handles POST /seed requests. Users inserted before a failure are kept.
func (h *UserHandler) Seed(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	result, err := h.userService.Seed(r.Context(), h.seedCount)
	if err != nil {
		log.Warn("seed run incomplete",
			"requested", result.Requested,
			"inserted", result.Inserted)
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, SeedResponse{
		Message: SeedSuccessMessage,
		Count:   result.Inserted,
	})
}
