package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/users-api/internal/api/shared"
	"github.com/phrazzld/users-api/internal/domain"
	"github.com/phrazzld/users-api/internal/service"
	"github.com/phrazzld/users-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	case store.IsDuplicateError(err):
		return http.StatusConflict

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, shared.ErrEmptyBody):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrSeedingDisabled):
		return http.StatusForbidden

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return SanitizeValidationError(vErr)

	case store.IsNotFoundError(err):
		return "User not found"

	case store.IsDuplicateError(err):
		return "User already exists"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, shared.ErrEmptyBody):
		return "Invalid request format"

	case errors.Is(err, domain.ErrValidation):
		return "Validation error"

	case errors.Is(err, service.ErrSeedingDisabled):
		return "Seeding is disabled"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError renders a ValidationError as "Invalid <field>: <message>".
func SanitizeValidationError(err *domain.ValidationError) string {
	if err == nil {
		return "Validation error"
	}
	if err.Field == "" {
		return fmt.Sprintf("Invalid request: %s", err.Message)
	}
	return fmt.Sprintf("Invalid %s: %s", err.Field, err.Message)
}

// HandleAPIError writes the status and safe message for err and logs the
// details through the request logger.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
