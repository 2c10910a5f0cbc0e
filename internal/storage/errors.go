// ABOUTME: Sentinel errors returned by the workout store.
// ABOUTME: Callers branch on them with errors.Is.
package storage

import "errors"

var (
	// ErrStorageUnavailable means the database could not be opened or migrated.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrWriteFailed means an insert, update or delete was rejected by SQLite.
	ErrWriteFailed = errors.New("write failed")

	// ErrNotFound is the expected outcome of a lookup on a stale or unknown id.
	ErrNotFound = errors.New("not found")
)
