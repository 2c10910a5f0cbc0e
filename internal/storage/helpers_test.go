// ABOUTME: Shared test helpers for storage tests.
// ABOUTME: Provides setupTestDB and seed helpers over isolated temp databases.
package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "workouts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

type seed struct {
	name, duration, workoutType string
}

func createAll(t *testing.T, db *DB, seeds ...seed) []int64 {
	t.Helper()
	ids := make([]int64, 0, len(seeds))
	for _, s := range seeds {
		id, err := db.Create(s.name, s.duration, s.workoutType)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func workoutIDs(t *testing.T, db *DB, f Filter) []int64 {
	t.Helper()
	workouts, err := db.List(f)
	require.NoError(t, err)
	ids := make([]int64, 0, len(workouts))
	for _, w := range workouts {
		ids = append(ids, w.ID)
	}
	return ids
}
