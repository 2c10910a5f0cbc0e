// ABOUTME: Aggregate statistics over the full workout log.
// ABOUTME: Count, total minutes, and most frequent type.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/fitlog/internal/models"
	"go.uber.org/multierr"
)

// Summary holds the aggregate view shown on the summary screen.
type Summary struct {
	Count            int    `json:"count" yaml:"count"`
	TotalDuration    int    `json:"total_duration_minutes" yaml:"total_duration_minutes"`
	MostFrequentType string `json:"most_frequent_type,omitempty" yaml:"most_frequent_type,omitempty"`
	HasWorkouts      bool   `json:"has_workouts" yaml:"has_workouts"`
}

// Count returns the number of stored workouts.
func (d *DB) Count() (int, error) {
	return countWorkouts(d.db)
}

// TotalDuration sums every duration in minutes. Durations that do not parse
// as integers contribute 0.
func (d *DB) TotalDuration() (int, error) {
	return totalDuration(d.db)
}

// MostFrequentType returns the type logged most often. Ties go to the
// lexicographically smallest type. ok is false when the store is empty.
func (d *DB) MostFrequentType() (workoutType string, ok bool, err error) {
	return mostFrequentType(d.db)
}

// Summary computes all aggregates from one transaction.
func (d *DB) Summary() (_ *Summary, err error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin summary: %w", err)
	}
	defer func() {
		err = multierr.Append(err, ignoreTxDone(tx.Rollback()))
	}()

	s := &Summary{}
	if s.Count, err = countWorkouts(tx); err != nil {
		return nil, err
	}
	if s.TotalDuration, err = totalDuration(tx); err != nil {
		return nil, err
	}
	if s.MostFrequentType, s.HasWorkouts, err = mostFrequentType(tx); err != nil {
		return nil, err
	}
	return s, nil
}

func countWorkouts(q querier) (int, error) {
	var count int
	if err := q.QueryRow("SELECT COUNT(*) FROM workouts").Scan(&count); err != nil {
		return 0, fmt.Errorf("count workouts: %w", err)
	}
	return count, nil
}

// Summed in Go rather than SQL: SUM() would coerce "30abc" to 30.
func totalDuration(q querier) (int, error) {
	rows, err := q.Query("SELECT duration FROM workouts")
	if err != nil {
		return 0, fmt.Errorf("total duration: %w", err)
	}
	defer rows.Close()

	total := 0
	for rows.Next() {
		var duration sql.NullString
		if err := rows.Scan(&duration); err != nil {
			return 0, fmt.Errorf("scan duration: %w", err)
		}
		if duration.Valid {
			total += models.ParseMinutes(duration.String)
		}
	}
	return total, rows.Err()
}

func mostFrequentType(q querier) (string, bool, error) {
	var workoutType string
	err := q.QueryRow(`
		SELECT type FROM workouts
		GROUP BY type
		ORDER BY COUNT(*) DESC, type ASC
		LIMIT 1
	`).Scan(&workoutType)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("most frequent type: %w", err)
	}
	return workoutType, true, nil
}
