// Package sqlite provides the embedded SQLite implementation of the data
// storage interfaces defined in the internal/store package.
// It owns the database file, applies the embedded schema migrations when the
// handle is opened, and maps driver errors to store errors.
package sqlite
