// Package postgres provides PostgreSQL implementations of the store
// interfaces. Implementations accept a store.DBTX so they run equally
// against a pooled connection or a caller-managed transaction, and they
// translate driver-level errors (unique and foreign-key violations,
// missing rows) into the store package's sentinel errors.
package postgres
