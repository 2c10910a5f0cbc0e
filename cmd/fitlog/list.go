// ABOUTME: CLI command for listing workouts.
// ABOUTME: Supports filtering by type or completion status, newest first.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	listType   string
	listStatus string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List workouts",
	Long: `List logged workouts, newest first.

OUTPUT FORMAT:

  Each line shows: ID  STATUS  TYPE  MINUTES  NAME

FILTERING:

  --type     only workouts of one type (Running, Cycling, ...)
  --status   completed or pending

  The two filters cannot be combined.

EXAMPLES:

  fitlog list
  fitlog list --type Running
  fitlog list --status pending`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := filterFromFlags(listType, listStatus)
		if err != nil {
			return err
		}

		workouts, err := repo.List(f)
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		if len(workouts) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		for _, w := range workouts {
			fmt.Println(formatWorkoutLine(w))
		}

		return nil
	},
}

// filterFromFlags builds a storage filter from the --type/--status flags.
func filterFromFlags(workoutType, status string) (storage.Filter, error) {
	workoutType = strings.TrimSpace(workoutType)
	status = strings.TrimSpace(status)

	switch {
	case workoutType != "" && status != "":
		return storage.Filter{}, fmt.Errorf("--type and --status cannot be combined")
	case workoutType != "":
		return storage.ByType(models.NormalizeType(workoutType)), nil
	case status != "":
		completed, err := models.ParseStatus(status)
		if err != nil {
			return storage.Filter{}, err
		}
		return storage.ByStatus(completed), nil
	default:
		return storage.AllWorkouts(), nil
	}
}

func formatWorkoutLine(w *models.Workout) string {
	faint := color.New(color.Faint)
	status := color.YellowString(padRight(w.Status(), 9))
	if w.Completed {
		status = color.GreenString(padRight(w.Status(), 9))
	}
	return fmt.Sprintf("%s %s %s %s %s",
		faint.Sprint(padRight(fmt.Sprintf("#%d", w.ID), 6)),
		status,
		padRight(w.Type, 10),
		faint.Sprint(padRight(w.Duration+" min", 8)),
		truncate(w.Name, 40))
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	listCmd.Flags().StringVarP(&listType, "type", "t", "", "filter by workout type")
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "filter by status (completed or pending)")
	rootCmd.AddCommand(listCmd)
}
