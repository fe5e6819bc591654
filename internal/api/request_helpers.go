package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/users-api/internal/api/shared"
	"github.com/phrazzld/users-api/internal/domain"
)

// parseGetUserParams extracts and validates the {id} path segment.
func parseGetUserParams(r *http.Request) (GetUserParams, error) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		return GetUserParams{}, domain.NewValidationError("id", "required field", domain.ErrValidation)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return GetUserParams{}, domain.NewValidationError("id", "must be an integer", domain.ErrInvalidID)
	}

	params := GetUserParams{ID: id}
	if err := shared.ValidateRequest(params); err != nil {
		return GetUserParams{}, err
	}
	return params, nil
}

// parseListUsersParams extracts and validates the limit query parameter.
// An absent or empty limit falls back to DefaultListLimit.
func parseListUsersParams(r *http.Request) (ListUsersParams, error) {
	params := ListUsersParams{Limit: DefaultListLimit}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return ListUsersParams{}, domain.NewValidationError("limit", "must be an integer", domain.ErrInvalidFormat)
		}
		params.Limit = limit
	}

	if err := shared.ValidateRequest(params); err != nil {
		return ListUsersParams{}, err
	}
	return params, nil
}
