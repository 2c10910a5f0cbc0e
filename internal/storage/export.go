// ABOUTME: Export and import functionality for the workout log.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/fitlog/internal/models"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// ExportFormatVersion identifies the export document layout.
const ExportFormatVersion = "1.0"

// ExportData represents the full export format for the workout log.
type ExportData struct {
	Version       string            `json:"version" yaml:"version"`
	ExportID      uuid.UUID         `json:"export_id" yaml:"export_id"`
	ExportedAt    time.Time         `json:"exported_at" yaml:"exported_at"`
	Tool          string            `json:"tool" yaml:"tool"`
	SchemaVersion int               `json:"schema_version" yaml:"schema_version"`
	Workouts      []*models.Workout `json:"workouts" yaml:"workouts"`
}

// GetAllData retrieves all workouts for export, newest first.
func (d *DB) GetAllData() (*ExportData, error) {
	listing, err := d.Snapshot(AllWorkouts())
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	version, err := d.SchemaVersion()
	if err != nil {
		return nil, err
	}

	return &ExportData{
		Version:       ExportFormatVersion,
		ExportID:      uuid.New(),
		ExportedAt:    time.Now(),
		Tool:          "fitlog",
		SchemaVersion: version,
		Workouts:      listing.Workouts,
	}, nil
}

// ImportData appends the exported workouts in their original creation order
// and returns how many were imported. New ids are assigned by the store and
// durations are copied as stored. Either every workout is imported or none is.
func (d *DB) ImportData(data *ExportData) (_ int, err error) {
	if data == nil {
		return 0, nil
	}

	workouts := make([]*models.Workout, 0, len(data.Workouts))
	for _, w := range data.Workouts {
		if w != nil {
			workouts = append(workouts, w)
		}
	}
	sort.SliceStable(workouts, func(i, j int) bool {
		return workouts[i].ID < workouts[j].ID
	})

	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("%w: begin import: %v", ErrWriteFailed, err)
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, ignoreTxDone(tx.Rollback()))
		}
	}()

	stmt, err := tx.Prepare("INSERT INTO workouts (name, duration, type, completed) VALUES (?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("%w: prepare import: %v", ErrWriteFailed, err)
	}
	defer stmt.Close()

	imported := 0
	for _, w := range workouts {
		if err = models.ValidateStored(w.Name, w.Type); err != nil {
			return 0, fmt.Errorf("import workout %d: %w", w.ID, err)
		}
		completed := 0
		if w.Completed {
			completed = 1
		}
		if _, err = stmt.Exec(w.Name, w.Duration, w.Type, completed); err != nil {
			return 0, fmt.Errorf("%w: import workout %d: %v", ErrWriteFailed, w.ID, err)
		}
		imported++
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: commit import: %v", ErrWriteFailed, err)
	}
	return imported, nil
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML, grouped by workout type.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}

	yamlData := struct {
		Version    string                   `yaml:"version"`
		ExportID   string                   `yaml:"export_id"`
		ExportedAt string                   `yaml:"exported_at"`
		Tool       string                   `yaml:"tool"`
		Workouts   map[string][]yamlWorkout `yaml:"workouts"`
	}{
		Version:    data.Version,
		ExportID:   data.ExportID.String(),
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Workouts:   make(map[string][]yamlWorkout),
	}

	for _, w := range data.Workouts {
		yamlData.Workouts[w.Type] = append(yamlData.Workouts[w.Type], yamlWorkout{
			ID:        w.ID,
			Name:      w.Name,
			Duration:  w.Duration,
			Completed: w.Completed,
		})
	}

	return yaml.Marshal(yamlData)
}

type yamlWorkout struct {
	ID        int64  `yaml:"id"`
	Name      string `yaml:"name"`
	Duration  string `yaml:"duration"`
	Completed bool   `yaml:"completed"`
}

// ExportMarkdown renders the workouts matching f as a Markdown table
// followed by the log summary.
func (d *DB) ExportMarkdown(f Filter) (string, error) {
	workouts, err := d.List(f)
	if err != nil {
		return "", err
	}
	summary, err := d.Summary()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Workout Log - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	if f.IsEmpty() {
		sb.WriteString("## Workouts\n\n")
	} else {
		sb.WriteString(fmt.Sprintf("## Workouts (%s)\n\n", f))
	}

	if len(workouts) == 0 {
		sb.WriteString("No workouts logged.\n\n")
	} else {
		sb.WriteString("| ID | Name | Type | Duration | Status |\n")
		sb.WriteString("|----|------|------|----------|--------|\n")
		for _, w := range workouts {
			sb.WriteString(fmt.Sprintf("| %d | %s | %s | %s min | %s |\n",
				w.ID, escapeCell(w.Name), escapeCell(w.Type), escapeCell(w.Duration), w.Status()))
		}
		sb.WriteString("\n")
	}

	mostFrequent := "None"
	if summary.HasWorkouts {
		mostFrequent = summary.MostFrequentType
	}
	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- Total workouts: %d\n", summary.Count))
	sb.WriteString(fmt.Sprintf("- Total duration: %d min\n", summary.TotalDuration))
	sb.WriteString(fmt.Sprintf("- Most frequent type: %s\n", mostFrequent))

	return sb.String(), nil
}

// ImportJSON imports data from JSON bytes.
func (d *DB) ImportJSON(data []byte) (int, error) {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return 0, fmt.Errorf("unmarshal JSON: %w", err)
	}
	return d.ImportData(&exportData)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
