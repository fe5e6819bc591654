// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and the store
// interfaces (defined in internal/store) to fulfill application features.
//
// Services receive their dependencies through constructor injection and never
// depend on a specific storage implementation.
package service
