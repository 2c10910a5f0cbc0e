// ABOUTME: SQLite database connection and lifecycle management.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required).
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite database connection.
// One DB is opened per process and passed to every caller.
type DB struct {
	db     *sql.DB
	dbPath string
}

// Compile-time check that DB implements Repository.
var _ Repository = (*DB)(nil)

// Open opens or creates a SQLite database at the given path and brings its
// schema up to CurrentSchemaVersion.
func Open(dbPath string) (*DB, error) {
	// Ensure parent directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("%w: create data directory: %v", ErrStorageUnavailable, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %v", ErrStorageUnavailable, err)
	}

	// A single connection keeps PRAGMA state and the single-writer model consistent.
	db.SetMaxOpenConns(1)

	d := &DB{db: db, dbPath: dbPath}

	// The first statement creates the file.
	if err := d.configurePragmas(); err != nil {
		return nil, closeOnError(db, fmt.Errorf("%w: configure pragmas: %v", ErrStorageUnavailable, err))
	}

	if err := os.Chmod(dbPath, 0600); err != nil {
		return nil, closeOnError(db, fmt.Errorf("%w: set database permissions: %v", ErrStorageUnavailable, err))
	}

	if err := d.initSchema(); err != nil {
		return nil, closeOnError(db, fmt.Errorf("%w: initialize schema: %v", ErrStorageUnavailable, err))
	}

	return d, nil
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "fitlog")
}

// DBFileName is the database file created inside the data directory.
const DBFileName = "workouts.db"

// DefaultDBPath returns the default database path following XDG spec.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), DBFileName)
}

// Path returns the filesystem path of the open database.
func (d *DB) Path() string {
	return d.dbPath
}

// Close closes the database connection.
func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// configurePragmas sets up SQLite for a local single-user store.
func (d *DB) configurePragmas() error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := d.db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	return nil
}

func closeOnError(db *sql.DB, err error) error {
	return multierr.Append(err, db.Close())
}
