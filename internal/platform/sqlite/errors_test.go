package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/users-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "no rows",
			err:      sql.ErrNoRows,
			expected: store.ErrNotFound,
		},
		{
			name:     "wrapped no rows",
			err:      fmt.Errorf("scan: %w", sql.ErrNoRows),
			expected: store.ErrNotFound,
		},
		{
			name:     "unique violation",
			err:      errors.New("constraint failed: UNIQUE constraint failed: users.email (2067)"),
			expected: store.ErrDuplicate,
		},
		{
			name:     "primary key violation",
			err:      errors.New("PRIMARY KEY constraint failed: users.user_id"),
			expected: store.ErrDuplicate,
		},
		{
			name:     "not null violation",
			err:      errors.New("NOT NULL constraint failed: users.email"),
			expected: store.ErrInvalidEntity,
		},
		{
			name:     "check violation",
			err:      errors.New("CHECK constraint failed: email_shape"),
			expected: store.ErrInvalidEntity,
		},
		{
			name:     "foreign key violation",
			err:      errors.New("FOREIGN KEY constraint failed"),
			expected: store.ErrInvalidEntity,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mapped := MapError(tc.err)
			assert.ErrorIs(t, mapped, tc.expected)
			assert.Contains(t, mapped.Error(), tc.err.Error(), "original message is preserved")
		})
	}
}

func TestMapErrorPassThrough(t *testing.T) {
	assert.NoError(t, MapError(nil))

	original := errors.New("disk I/O error")
	assert.Same(t, original, MapError(original))
}

func TestViolationPredicates(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: t.c")))
	assert.False(t, IsNotNullViolation(errors.New("UNIQUE constraint failed: t.c")))
	assert.True(t, IsNotNullViolation(errors.New("NOT NULL constraint failed: t.c")))
	assert.True(t, IsCheckConstraintViolation(errors.New("CHECK constraint failed: c")))
	assert.True(t, IsForeignKeyViolation(errors.New("FOREIGN KEY constraint failed")))
}
