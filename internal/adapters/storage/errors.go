package storage

import "errors"

// Sentinel errors shared by all stores. Callers branch on these with
// errors.Is rather than inspecting driver errors.
var (
	// ErrNotFound is returned when a lookup or update targets a row that
	// does not exist (including rows deleted by a concurrent request).
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a write violates a uniqueness constraint,
	// the backstop for two requests passing validation concurrently.
	ErrConflict = errors.New("conflicting write")

	// ErrInvalidRef is returned when a write references a row that does not
	// exist, surfaced by the database's foreign key enforcement.
	ErrInvalidRef = errors.New("referenced record does not exist")
)
