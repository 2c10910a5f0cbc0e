// ABOUTME: Tests for export and import of the workout log.
// ABOUTME: Covers JSON round-trip, YAML grouping, Markdown tables, and atomic import.
package storage

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestGetAllData(t *testing.T) {
	db := setupTestDB(t)
	ids := createAll(t, db,
		seed{"A", "30", "Running"},
		seed{"B", "45", "Cycling"},
	)

	data, err := db.GetAllData()
	require.NoError(t, err)
	assert.Equal(t, ExportFormatVersion, data.Version)
	assert.Equal(t, "fitlog", data.Tool)
	assert.Equal(t, CurrentSchemaVersion, data.SchemaVersion)
	assert.NotEqual(t, uuid.Nil, data.ExportID)
	require.Len(t, data.Workouts, 2)
	assert.Equal(t, ids[1], data.Workouts[0].ID)
}

func TestExportImportJSONRoundTrip(t *testing.T) {
	src := setupTestDB(t)
	ids := createAll(t, src,
		seed{"A", "30", "Running"},
		seed{"B", "45", "Cycling"},
		seed{"C", "15", "Running"},
	)
	_, err := src.MarkComplete(ids[1])
	require.NoError(t, err)

	raw, err := src.ExportJSON()
	require.NoError(t, err)

	dst := setupTestDB(t)
	n, err := dst.ImportJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	got, err := dst.ListAll()
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"C", "B", "A"}, []string{got[0].Name, got[1].Name, got[2].Name})
	assert.False(t, got[0].Completed)
	assert.True(t, got[1].Completed)
	assert.False(t, got[2].Completed)

	srcSummary, err := src.Summary()
	require.NoError(t, err)
	dstSummary, err := dst.Summary()
	require.NoError(t, err)
	assert.Equal(t, srcSummary, dstSummary)
}

func TestImportIsAllOrNothing(t *testing.T) {
	db := setupTestDB(t)

	data := &ExportData{Workouts: []*models.Workout{
		{ID: 1, Name: "Good", Duration: "30", Type: "Running"},
		{ID: 2, Name: "", Duration: "30", Type: "Running"},
	}}

	_, err := db.ImportData(data)
	require.Error(t, err)

	count, err := db.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestImportKeepsFreeTextDurations(t *testing.T) {
	src := setupTestDB(t)
	createAll(t, src,
		seed{"Old row", "30 min", "Running"},
		seed{"Fine", "20", "Cycling"},
	)

	raw, err := src.ExportJSON()
	require.NoError(t, err)

	dst := setupTestDB(t)
	n, err := dst.ImportJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := dst.ListAll()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Fine", got[0].Name)
	assert.Equal(t, "Old row", got[1].Name)
	assert.Equal(t, "30 min", got[1].Duration)

	total, err := dst.TotalDuration()
	require.NoError(t, err)
	assert.Equal(t, 20, total)
}

func TestImportCountsOnlyInsertedRows(t *testing.T) {
	db := setupTestDB(t)

	data := &ExportData{Workouts: []*models.Workout{
		nil,
		{ID: 2, Name: "Laps", Duration: "45", Type: "Swimming"},
		nil,
	}}

	n, err := db.ImportData(data)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	count, err := db.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestImportJSONInvalid(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.ImportJSON([]byte("{not json"))
	assert.Error(t, err)
}

func TestExportYAML(t *testing.T) {
	db := setupTestDB(t)
	createAll(t, db,
		seed{"A", "30", "Running"},
		seed{"B", "45", "Cycling"},
		seed{"C", "15", "Running"},
	)

	out, err := db.ExportYAML()
	require.NoError(t, err)

	var parsed struct {
		Tool     string                   `yaml:"tool"`
		Workouts map[string][]yamlWorkout `yaml:"workouts"`
	}
	require.NoError(t, yaml.Unmarshal(out, &parsed))
	assert.Equal(t, "fitlog", parsed.Tool)
	assert.Len(t, parsed.Workouts["Running"], 2)
	assert.Len(t, parsed.Workouts["Cycling"], 1)
	assert.Equal(t, "C", parsed.Workouts["Running"][0].Name)
}

func TestExportMarkdown(t *testing.T) {
	db := setupTestDB(t)
	ids := createAll(t, db,
		seed{"Morning run", "30", "Running"},
		seed{"Pipe | test", "45", "Cycling"},
	)
	_, err := db.MarkComplete(ids[0])
	require.NoError(t, err)

	md, err := db.ExportMarkdown(AllWorkouts())
	require.NoError(t, err)
	assert.Contains(t, md, "# Workout Log")
	assert.Contains(t, md, "| Morning run | Running | 30 min | completed |")
	assert.Contains(t, md, `Pipe \| test`)
	assert.Contains(t, md, "- Total duration: 75 min")
	assert.Contains(t, md, "- Most frequent type: Cycling")

	md, err = db.ExportMarkdown(ByType("Running"))
	require.NoError(t, err)
	assert.Contains(t, md, "## Workouts (type=Running)")
	assert.NotContains(t, md, "| 45 min |")
}

func TestExportMarkdownEmpty(t *testing.T) {
	db := setupTestDB(t)

	md, err := db.ExportMarkdown(AllWorkouts())
	require.NoError(t, err)
	assert.Contains(t, md, "No workouts logged.")
	assert.Contains(t, md, "- Most frequent type: None")
}

func TestExportJSONShape(t *testing.T) {
	db := setupTestDB(t)
	createAll(t, db, seed{"A", "30", "Running"})

	raw, err := db.ExportJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	for _, key := range []string{"version", "export_id", "exported_at", "tool", "schema_version", "workouts"} {
		assert.Contains(t, doc, key)
	}
	assert.True(t, strings.Contains(string(raw), `"completed": false`))
}
