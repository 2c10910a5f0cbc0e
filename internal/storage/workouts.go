// ABOUTME: Workout CRUD operations for SQLite storage.
// ABOUTME: Every mutation is a single statement; completed is only set by MarkComplete.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/fitlog/internal/models"
)

const workoutColumns = "id, name, duration, type, completed"

// Create stores a new, not yet completed workout and returns its id.
func (d *DB) Create(name, duration, workoutType string) (int64, error) {
	result, err := d.db.Exec(`
		INSERT INTO workouts (name, duration, type, completed)
		VALUES (?, ?, ?, 0)
	`, name, duration, workoutType)
	if err != nil {
		return 0, fmt.Errorf("%w: create workout: %v", ErrWriteFailed, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: create workout: %v", ErrWriteFailed, err)
	}
	return id, nil
}

// Get retrieves a workout by id. A missing id yields ErrNotFound.
func (d *DB) Get(id int64) (*models.Workout, error) {
	row := d.db.QueryRow("SELECT "+workoutColumns+" FROM workouts WHERE id = ?", id)

	w, err := scanWorkout(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("workout %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get workout %d: %w", id, err)
	}
	return w, nil
}

// Update replaces name, duration and type. It never touches completed and
// reports false when no workout has that id.
func (d *DB) Update(id int64, name, duration, workoutType string) (bool, error) {
	result, err := d.db.Exec(`
		UPDATE workouts SET name = ?, duration = ?, type = ?
		WHERE id = ?
	`, name, duration, workoutType, id)
	return affected(result, err, "update workout")
}

// MarkComplete sets completed on one workout. Marking twice still succeeds.
func (d *DB) MarkComplete(id int64) (bool, error) {
	result, err := d.db.Exec("UPDATE workouts SET completed = 1 WHERE id = ?", id)
	return affected(result, err, "complete workout")
}

// DeleteOne removes a single workout and reports whether it existed.
func (d *DB) DeleteOne(id int64) (bool, error) {
	result, err := d.db.Exec("DELETE FROM workouts WHERE id = ?", id)
	return affected(result, err, "delete workout")
}

// DeleteAll removes every workout. The AUTOINCREMENT sequence is kept, so
// ids are not handed out again.
func (d *DB) DeleteAll() error {
	if _, err := d.db.Exec("DELETE FROM workouts"); err != nil {
		return fmt.Errorf("%w: delete all workouts: %v", ErrWriteFailed, err)
	}
	return nil
}

// SQLite reports matched rows for UPDATE, so a same-value update counts as one.
func affected(result sql.Result, err error, op string) (bool, error) {
	if err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrWriteFailed, op, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrWriteFailed, op, err)
	}
	return n > 0, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanWorkout scans one row selected with workoutColumns.
func scanWorkout(row rowScanner) (*models.Workout, error) {
	var w models.Workout
	var completed sql.NullInt64

	if err := row.Scan(&w.ID, &w.Name, &w.Duration, &w.Type, &completed); err != nil {
		return nil, err
	}
	w.Completed = completed.Valid && completed.Int64 != 0

	return &w, nil
}

// scanWorkouts scans multiple rows into a slice of Workouts.
func scanWorkouts(rows *sql.Rows) ([]*models.Workout, error) {
	workouts := []*models.Workout{}

	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		workouts = append(workouts, w)
	}

	return workouts, rows.Err()
}
