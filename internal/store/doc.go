// Package store defines the persistence interfaces and shared persistence
// errors for the application. Implementations live in
// internal/platform/postgres.
package store
