// Package store defines the persistence interfaces consumed by the API
// layer, along with the sentinel errors every implementation returns.
// Concrete implementations live in internal/platform/postgres.
package store
