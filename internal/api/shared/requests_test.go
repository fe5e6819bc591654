package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/users-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Age   int    `json:"age" validate:"min=0,max=150"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantErr   error
		wantValue testRequest
	}{
		{
			name:      "valid body",
			body:      `{"name":"Ada","email":"ada@example.com","age":36}`,
			wantValue: testRequest{Name: "Ada", Email: "ada@example.com", Age: 36},
		},
		{
			name:    "empty body",
			body:    "",
			wantErr: ErrEmptyBody,
		},
		{
			name:    "malformed JSON",
			body:    `{"name":`,
			wantErr: domain.ErrInvalidFormat,
		},
		{
			name:    "wrong type",
			body:    `{"age":"old"}`,
			wantErr: domain.ErrInvalidFormat,
		},
		{
			name:    "trailing data",
			body:    `{"name":"Ada"} {"name":"Bob"}`,
			wantErr: domain.ErrInvalidFormat,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			var got testRequest
			err := DecodeJSON(w, req, &got)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantValue, got)
		})
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name        string
		req         testRequest
		wantField   string
		wantMessage string
	}{
		{
			name: "valid",
			req:  testRequest{Name: "Ada", Email: "ada@example.com"},
		},
		{
			name:        "missing name",
			req:         testRequest{Email: "ada@example.com"},
			wantField:   "name",
			wantMessage: "required field",
		},
		{
			name:        "bad email",
			req:         testRequest{Name: "Ada", Email: "nope"},
			wantField:   "email",
			wantMessage: "invalid email format",
		},
		{
			name:        "age out of range",
			req:         testRequest{Name: "Ada", Email: "ada@example.com", Age: 200},
			wantField:   "age",
			wantMessage: "value too large",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRequest(tc.req)
			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var vErr *domain.ValidationError
			require.True(t, errors.As(err, &vErr), "expected *domain.ValidationError, got %T", err)
			assert.Equal(t, tc.wantField, vErr.Field)
			assert.Equal(t, tc.wantMessage, vErr.Message)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestValidationTagMessage(t *testing.T) {
	assert.Equal(t, "required field", ValidationTagMessage("required"))
	assert.Equal(t, "value too small", ValidationTagMessage("min"))
	assert.Equal(t, "validation failed", ValidationTagMessage("uuid"))
}
