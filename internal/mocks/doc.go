// Package mocks provides centralized mock implementations for testing.
//
// Each mock exposes function fields (CreateFn, GetByIDFn, ...) that tests
// can set for custom behavior; when a field is nil the mock falls back to a
// simple in-memory default so common flows need no setup.
package mocks
