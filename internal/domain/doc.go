// Package domain contains the User entity, its invariants, and the
// validation errors shared by the layers above it.
package domain
