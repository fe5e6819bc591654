package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/users-api/internal/api/shared"
	"github.com/phrazzld/users-api/internal/domain"
	"github.com/phrazzld/users-api/internal/service"
	"github.com/phrazzld/users-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "user not found",
			err:        fmt.Errorf("failed to retrieve user: %w", store.ErrUserNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    "User not found",
		},
		{
			name:       "generic not found",
			err:        store.NewStoreError("user", "get", "no row", store.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    "User not found",
		},
		{
			name:       "duplicate",
			err:        store.NewStoreError("user", "create", "insert failed", store.ErrDuplicate),
			wantStatus: http.StatusConflict,
			wantMsg:    "User already exists",
		},
		{
			name:       "constraint violation",
			err:        fmt.Errorf("failed to create user: %w", store.ErrInvalidEntity),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid entity data",
		},
		{
			name:       "field validation",
			err:        domain.NewValidationError("email", "invalid email format", nil),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid email: invalid email format",
		},
		{
			name:       "domain validation",
			err:        fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrEmptyLastName),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Validation error",
		},
		{
			name:       "empty body",
			err:        shared.ErrEmptyBody,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid request format",
		},
		{
			name:       "seeding disabled",
			err:        service.ErrSeedingDisabled,
			wantStatus: http.StatusForbidden,
			wantMsg:    "Seeding is disabled",
		},
		{
			name:       "unknown",
			err:        errors.New("sqlite: database disk image is malformed"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "An unexpected error occurred",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantStatus, MapErrorToStatusCode(tc.err))
			assert.Equal(t, tc.wantMsg, GetSafeErrorMessage(tc.err))
		})
	}

	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
}

func TestSanitizeValidationError(t *testing.T) {
	assert.Equal(t, "Validation error", SanitizeValidationError(nil))
	assert.Equal(t, "Invalid request: bad",
		SanitizeValidationError(domain.NewValidationError("", "bad", nil)))
}

func TestParseListUsersParams(t *testing.T) {
	tests := []struct {
		query     string
		wantLimit int
		wantErr   bool
	}{
		{query: "", wantLimit: DefaultListLimit},
		{query: "?limit=", wantLimit: DefaultListLimit},
		{query: "?limit=0", wantLimit: 0},
		{query: "?limit=1000", wantLimit: 1000},
		{query: "?limit=1001", wantErr: true},
		{query: "?limit=-5", wantErr: true},
		{query: "?limit=ten", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			params, err := parseListUsersParams(httptest.NewRequest(http.MethodGet, "/users"+tc.query, nil))
			if tc.wantErr {
				var vErr *domain.ValidationError
				require.True(t, errors.As(err, &vErr))
				assert.Equal(t, "limit", vErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantLimit, params.Limit)
		})
	}
}

func TestParseGetUserParams(t *testing.T) {
	withID := func(id string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/users/"+id, nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}

	params, err := parseGetUserParams(withID("42"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), params.ID)

	_, err = parseGetUserParams(withID("abc"))
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = parseGetUserParams(withID("0"))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = parseGetUserParams(httptest.NewRequest(http.MethodGet, "/users/", nil))
	assert.ErrorIs(t, err, domain.ErrValidation)
}
