// Package api contains the HTTP handlers for the taskboard API and the
// single translation point between internal errors and HTTP status codes.
// Handlers decode and validate request bodies, call into the store and
// service layers, and write JSON responses through the shared helpers.
package api
