// Package config loads the service settings from defaults, an optional
// config.yaml, and USERS_* environment variables, then validates them.
package config
