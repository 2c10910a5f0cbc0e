// ABOUTME: Filtered workout listings and their aligned id sequences.
// ABOUTME: Lists and ids share one WHERE/ORDER BY so position i always matches.
package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/harperreed/fitlog/internal/models"
	"go.uber.org/multierr"
)

// Filter narrows a listing by workout type or completion status.
// The zero value matches every workout.
type Filter struct {
	Type      *string
	Completed *bool
}

// AllWorkouts matches every workout.
func AllWorkouts() Filter {
	return Filter{}
}

// ByType matches workouts whose type equals t exactly.
func ByType(t string) Filter {
	return Filter{Type: &t}
}

// ByStatus matches workouts with the given completion flag.
func ByStatus(completed bool) Filter {
	return Filter{Completed: &completed}
}

// IsEmpty reports whether the filter matches every workout.
func (f Filter) IsEmpty() bool {
	return f.Type == nil && f.Completed == nil
}

// String describes the filter for logs and export headings.
func (f Filter) String() string {
	var parts []string
	if f.Type != nil {
		parts = append(parts, "type="+*f.Type)
	}
	if f.Completed != nil {
		if *f.Completed {
			parts = append(parts, "status="+models.StatusCompleted)
		} else {
			parts = append(parts, "status="+models.StatusPending)
		}
	}
	if len(parts) == 0 {
		return "all"
	}
	return strings.Join(parts, ",")
}

// where renders the WHERE clause and its arguments. Both dimensions set
// combine with AND.
func (f Filter) where() (string, []any) {
	var conds []string
	var args []any

	if f.Type != nil {
		conds = append(conds, "type = ?")
		args = append(args, *f.Type)
	}
	if f.Completed != nil {
		if *f.Completed {
			conds = append(conds, "completed = 1")
		} else {
			conds = append(conds, "(completed = 0 OR completed IS NULL)")
		}
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// querier is the read surface shared by *sql.DB and *sql.Tx.
type querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// Listing is a filtered listing and its ids taken from one snapshot.
// IDs[i] == Workouts[i].ID for every i.
type Listing struct {
	Workouts []*models.Workout
	IDs      []int64
}

// List returns workouts matching f, most recently created first.
func (d *DB) List(f Filter) ([]*models.Workout, error) {
	return listWorkouts(d.db, f)
}

// IDs returns the ids of workouts matching f in the same order as List.
func (d *DB) IDs(f Filter) ([]int64, error) {
	return listIDs(d.db, f)
}

// ListAll returns every workout, most recently created first.
func (d *DB) ListAll() ([]*models.Workout, error) {
	return d.List(AllWorkouts())
}

// ListByType returns workouts of exactly type t.
func (d *DB) ListByType(t string) ([]*models.Workout, error) {
	return d.List(ByType(t))
}

// ListByStatus returns workouts with the given completion flag.
func (d *DB) ListByStatus(completed bool) ([]*models.Workout, error) {
	return d.List(ByStatus(completed))
}

// IDsAll returns every workout id, aligned with ListAll.
func (d *DB) IDsAll() ([]int64, error) {
	return d.IDs(AllWorkouts())
}

// IDsByType returns ids aligned with ListByType.
func (d *DB) IDsByType(t string) ([]int64, error) {
	return d.IDs(ByType(t))
}

// IDsByStatus returns ids aligned with ListByStatus.
func (d *DB) IDsByStatus(completed bool) ([]int64, error) {
	return d.IDs(ByStatus(completed))
}

// Snapshot reads the listing and its ids inside one transaction,
// so no write can land between the two reads.
func (d *DB) Snapshot(f Filter) (_ *Listing, err error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin snapshot: %w", err)
	}
	defer func() {
		// Nothing was written; rollback just releases the read transaction.
		err = multierr.Append(err, ignoreTxDone(tx.Rollback()))
	}()

	workouts, err := listWorkouts(tx, f)
	if err != nil {
		return nil, err
	}
	ids, err := listIDs(tx, f)
	if err != nil {
		return nil, err
	}

	return &Listing{Workouts: workouts, IDs: ids}, nil
}

func listWorkouts(q querier, f Filter) ([]*models.Workout, error) {
	where, args := f.where()
	rows, err := q.Query("SELECT "+workoutColumns+" FROM workouts"+where+" ORDER BY id DESC", args...)
	if err != nil {
		return nil, fmt.Errorf("list workouts (%s): %w", f, err)
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

func listIDs(q querier, f Filter) ([]int64, error) {
	where, args := f.where()
	rows, err := q.Query("SELECT id FROM workouts"+where+" ORDER BY id DESC", args...)
	if err != nil {
		return nil, fmt.Errorf("list workout ids (%s): %w", f, err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan workout id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func ignoreTxDone(err error) error {
	if err == sql.ErrTxDone {
		return nil
	}
	return err
}
