// Package testutils provides HTTP helpers shared by handler and router tests.
package testutils
