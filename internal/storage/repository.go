// ABOUTME: Repository interface for workout log storage.
// ABOUTME: Defines the record, query, aggregate and export contract used by callers.
package storage

import "github.com/harperreed/fitlog/internal/models"

// Repository defines the storage interface for the workout log.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Record operations
	Create(name, duration, workoutType string) (int64, error)
	Get(id int64) (*models.Workout, error)
	Update(id int64, name, duration, workoutType string) (bool, error)
	MarkComplete(id int64) (bool, error)
	DeleteOne(id int64) (bool, error)
	DeleteAll() error

	// Queries, newest first
	List(f Filter) ([]*models.Workout, error)
	IDs(f Filter) ([]int64, error)
	Snapshot(f Filter) (*Listing, error)
	ListAll() ([]*models.Workout, error)
	ListByType(t string) ([]*models.Workout, error)
	ListByStatus(completed bool) ([]*models.Workout, error)
	IDsAll() ([]int64, error)
	IDsByType(t string) ([]int64, error)
	IDsByStatus(completed bool) ([]int64, error)

	// Aggregates
	Count() (int, error)
	TotalDuration() (int, error)
	MostFrequentType() (string, bool, error)
	Summary() (*Summary, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) (int, error)
	ExportJSON() ([]byte, error)
	ExportYAML() ([]byte, error)
	ExportMarkdown(f Filter) (string, error)
	ImportJSON(data []byte) (int, error)

	// Lifecycle
	Close() error
}
