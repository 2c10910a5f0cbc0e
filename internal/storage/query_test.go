// ABOUTME: Tests for filtered listings and id alignment.
// ABOUTME: Verifies newest-first ordering, filter correctness, and list/id correspondence.
package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAllNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	ids := createAll(t, db,
		seed{"A", "10", "Running"},
		seed{"B", "20", "Cycling"},
		seed{"C", "30", "Swimming"},
	)

	all, err := db.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "C", all[0].Name)
	assert.Equal(t, "B", all[1].Name)
	assert.Equal(t, "A", all[2].Name)

	got, err := db.IDsAll()
	require.NoError(t, err)
	assert.Equal(t, []int64{ids[2], ids[1], ids[0]}, got)
}

func TestListEmpty(t *testing.T) {
	db := setupTestDB(t)

	all, err := db.ListAll()
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	ids, err := db.IDsByStatus(true)
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestListByType(t *testing.T) {
	db := setupTestDB(t)
	ids := createAll(t, db,
		seed{"Run 1", "30", "Running"},
		seed{"Run 2", "45", "Running"},
		seed{"Ride", "60", "Cycling"},
	)

	running, err := db.ListByType("Running")
	require.NoError(t, err)
	require.Len(t, running, 2)
	assert.Equal(t, ids[1], running[0].ID)
	assert.Equal(t, ids[0], running[1].ID)

	runIDs, err := db.IDsByType("Running")
	require.NoError(t, err)
	assert.Equal(t, []int64{ids[1], ids[0]}, runIDs)

	swimming, err := db.ListByType("Swimming")
	require.NoError(t, err)
	assert.Empty(t, swimming)

	// Exact match only.
	lower, err := db.ListByType("running")
	require.NoError(t, err)
	assert.Empty(t, lower)
}

func TestListByStatus(t *testing.T) {
	db := setupTestDB(t)
	ids := createAll(t, db,
		seed{"A", "10", "Running"},
		seed{"B", "20", "Cycling"},
		seed{"C", "30", "Walking"},
	)
	_, err := db.MarkComplete(ids[0])
	require.NoError(t, err)
	_, err = db.MarkComplete(ids[2])
	require.NoError(t, err)

	done, err := db.ListByStatus(true)
	require.NoError(t, err)
	require.Len(t, done, 2)
	assert.Equal(t, ids[2], done[0].ID)
	assert.Equal(t, ids[0], done[1].ID)
	for _, w := range done {
		assert.True(t, w.Completed)
	}

	pending, err := db.ListByStatus(false)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, ids[1], pending[0].ID)

	pendingIDs, err := db.IDsByStatus(false)
	require.NoError(t, err)
	assert.Equal(t, []int64{ids[1]}, pendingIDs)
}

func TestListIDAlignmentAfterMutations(t *testing.T) {
	db := setupTestDB(t)
	ids := createAll(t, db,
		seed{"A", "10", "Running"},
		seed{"B", "20", "Cycling"},
		seed{"C", "30", "Running"},
		seed{"D", "40", "Walking"},
		seed{"E", "50", "Running"},
	)

	_, err := db.DeleteOne(ids[1])
	require.NoError(t, err)
	_, err = db.Update(ids[3], "D2", "45", "Running")
	require.NoError(t, err)
	_, err = db.MarkComplete(ids[2])
	require.NoError(t, err)
	createAll(t, db, seed{"F", "15", "Cycling"})

	filters := map[string]Filter{
		"all":       AllWorkouts(),
		"running":   ByType("Running"),
		"cycling":   ByType("Cycling"),
		"swimming":  ByType("Swimming"),
		"completed": ByStatus(true),
		"pending":   ByStatus(false),
	}

	for name, f := range filters {
		t.Run(name, func(t *testing.T) {
			list, err := db.List(f)
			require.NoError(t, err)
			idList, err := db.IDs(f)
			require.NoError(t, err)

			require.Len(t, idList, len(list))
			for i := range list {
				assert.Equal(t, list[i].ID, idList[i], "position %d", i)
			}

			snap, err := db.Snapshot(f)
			require.NoError(t, err)
			require.Len(t, snap.IDs, len(snap.Workouts))
			for i := range snap.Workouts {
				assert.Equal(t, snap.Workouts[i].ID, snap.IDs[i], "snapshot position %d", i)
			}
			assert.Equal(t, idList, snap.IDs)
		})
	}

	assert.Equal(t, []int64{ids[4], ids[3], ids[2], ids[0]}, workoutIDs(t, db, ByType("Running")))
}

func TestFilterCombined(t *testing.T) {
	db := setupTestDB(t)
	ids := createAll(t, db,
		seed{"A", "10", "Running"},
		seed{"B", "20", "Running"},
		seed{"C", "30", "Cycling"},
	)
	_, err := db.MarkComplete(ids[0])
	require.NoError(t, err)
	_, err = db.MarkComplete(ids[2])
	require.NoError(t, err)

	f := Filter{Type: ByType("Running").Type, Completed: ByStatus(true).Completed}
	assert.Equal(t, []int64{ids[0]}, workoutIDs(t, db, f))
}

func TestFilterString(t *testing.T) {
	tests := []struct {
		name string
		f    Filter
		want string
	}{
		{"empty", AllWorkouts(), "all"},
		{"type", ByType("Running"), "type=Running"},
		{"completed", ByStatus(true), "status=completed"},
		{"pending", ByStatus(false), "status=pending"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f.String())
			assert.Equal(t, tt.name == "empty", tt.f.IsEmpty())
		})
	}
}
