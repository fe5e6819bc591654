package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/phrazzld/users-api/internal/store"
)

// Constraint failure fragments reported by SQLite. The cgo and pure Go
// drivers behind sqliteshim expose different error types but share the
// engine's message text.
const (
	uniqueViolationText     = "UNIQUE constraint failed"
	primaryKeyViolationText = "PRIMARY KEY constraint failed"
	notNullViolationText    = "NOT NULL constraint failed"
	checkViolationText      = "CHECK constraint failed"
	foreignKeyViolationText = "FOREIGN KEY constraint failed"
)

// MapError maps a database error to an appropriate store error.
// It wraps the original error to preserve context and provide better debugging information.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	switch {
	case IsUniqueViolation(err):
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	case IsNotNullViolation(err):
		return fmt.Errorf("%w: not null violation: %v", store.ErrInvalidEntity, err)
	case IsCheckConstraintViolation(err):
		return fmt.Errorf("%w: check constraint violation: %v", store.ErrInvalidEntity, err)
	case IsForeignKeyViolation(err):
		return fmt.Errorf("%w: foreign key violation: %v", store.ErrInvalidEntity, err)
	}

	// Return the original error for errors that don't have specific mappings
	return err
}

// IsUniqueViolation checks if the given error is a SQLite unique or primary key violation.
func IsUniqueViolation(err error) bool {
	return errorContains(err, uniqueViolationText) || errorContains(err, primaryKeyViolationText)
}

// IsNotNullViolation checks if the given error is a SQLite not null violation.
func IsNotNullViolation(err error) bool {
	return errorContains(err, notNullViolationText)
}

// IsCheckConstraintViolation checks if the given error is a SQLite check constraint violation.
func IsCheckConstraintViolation(err error) bool {
	return errorContains(err, checkViolationText)
}

// IsForeignKeyViolation checks if the given error is a SQLite foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return errorContains(err, foreignKeyViolationText)
}

func errorContains(err error, fragment string) bool {
	return err != nil && strings.Contains(err.Error(), fragment)
}
