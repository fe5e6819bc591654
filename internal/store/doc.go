// Package store defines the persistence contract for users and the errors
// every implementation reports. The SQLite implementation lives in
// internal/platform/sqlite.
package store
