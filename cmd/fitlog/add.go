// ABOUTME: CLI command for logging a new workout.
// ABOUTME: Validates name, duration and type before writing to the store.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/spf13/cobra"
)

var addType string

var addCmd = &cobra.Command{
	Use:     "add <name> <minutes>",
	Aliases: []string{"a"},
	Short:   "Log a workout",
	Long: `Log a workout with a name and a duration in whole minutes.

New workouts start out pending. Use 'fitlog done <id>' once finished.

EXAMPLES:

  fitlog add "Morning run" 30
  fitlog add "Lake swim" 45 --type swimming
  fitlog add "Commute" 20 -t Cycling`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		duration := strings.TrimSpace(args[1])
		workoutType := models.NormalizeType(addType)

		if err := models.Validate(name, duration, workoutType); err != nil {
			return err
		}

		id, err := repo.Create(name, duration, workoutType)
		if err != nil {
			return fmt.Errorf("failed to create workout: %w", err)
		}

		color.Green("✓ Logged %s", name)
		fmt.Printf("  %s %s %s min\n",
			color.New(color.Faint).Sprintf("#%d", id),
			workoutType, duration)

		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addType, "type", "t", models.TypeRunning, "workout type")
	rootCmd.AddCommand(addCmd)
}
