package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers use errors.Is to check for them; the API layer maps them to HTTP
// status codes.
var (
	// ErrSeedingDisabled is returned when seeding is requested but turned off
	// in configuration.
	ErrSeedingDisabled = errors.New("seeding is disabled")

	// ErrInvalidSeedCount is returned for a non-positive seed count.
	ErrInvalidSeedCount = errors.New("seed count must be positive")
)
