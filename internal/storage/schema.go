// ABOUTME: SQLite schema definition, versioning, and additive migrations.
// ABOUTME: Schema version lives in PRAGMA user_version.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// CurrentSchemaVersion is the logical schema version this build reads and writes.
const CurrentSchemaVersion = 2

// createWorkoutsTable builds the workouts table directly at CurrentSchemaVersion.
const createWorkoutsTable = `
	CREATE TABLE workouts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		duration TEXT NOT NULL,
		type TEXT NOT NULL,
		completed INTEGER DEFAULT 0
	)
`

// migration moves the schema from version-1 to version. Steps only add
// structure; existing rows keep their data.
type migration struct {
	version int
	column  string
	stmt    string
}

var migrations = []migration{
	{
		version: 2,
		column:  "completed",
		stmt:    "ALTER TABLE workouts ADD COLUMN completed INTEGER DEFAULT 0",
	},
}

// initSchema creates the schema on first use or migrates an older one.
func (d *DB) initSchema() error {
	exists, err := d.tableExists("workouts")
	if err != nil {
		return err
	}

	if !exists {
		return d.createSchema()
	}

	version, err := d.SchemaVersion()
	if err != nil {
		return err
	}
	// Stores written before versioning never set user_version.
	if version == 0 {
		version = 1
	}

	if version > CurrentSchemaVersion {
		return fmt.Errorf("schema version %d is newer than supported version %d", version, CurrentSchemaVersion)
	}

	for _, m := range migrations {
		if m.version <= version {
			continue
		}
		if err := d.applyMigration(m); err != nil {
			return fmt.Errorf("migrate to version %d: %w", m.version, err)
		}
		logrus.WithFields(logrus.Fields{
			"db":      d.dbPath,
			"version": m.version,
		}).Info("migrated workout schema")
	}

	return nil
}

// SchemaVersion returns the schema version recorded in the database file.
func (d *DB) SchemaVersion() (int, error) {
	var version int
	if err := d.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}

func (d *DB) createSchema() (err error) {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, ignoreTxDone(tx.Rollback()))
		}
	}()

	if _, err = tx.Exec(createWorkoutsTable); err != nil {
		return fmt.Errorf("create workouts table: %w", err)
	}
	if err = setUserVersion(tx, CurrentSchemaVersion); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}

	logrus.WithField("db", d.dbPath).Debug("created workout schema")
	return nil
}

// applyMigration runs one step and its version bump in a single transaction.
// A column that is already present only bumps the version.
func (d *DB) applyMigration(m migration) (err error) {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, ignoreTxDone(tx.Rollback()))
		}
	}()

	present, err := columnExists(tx, "workouts", m.column)
	if err != nil {
		return err
	}
	if !present {
		if _, err = tx.Exec(m.stmt); err != nil {
			return fmt.Errorf("add column %s: %w", m.column, err)
		}
	}
	if err = setUserVersion(tx, m.version); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}
	return nil
}

func (d *DB) tableExists(name string) (bool, error) {
	var count int
	err := d.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check table %s: %w", name, err)
	}
	return count > 0, nil
}

func columnExists(tx *sql.Tx, table, column string) (bool, error) {
	rows, err := tx.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, fmt.Errorf("read columns of %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return false, fmt.Errorf("scan column of %s: %w", table, err)
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

// PRAGMA statements do not accept bound parameters.
func setUserVersion(tx *sql.Tx, version int) error {
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", version)); err != nil {
		return fmt.Errorf("set schema version: %w", err)
	}
	return nil
}
