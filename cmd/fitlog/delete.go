// ABOUTME: CLI commands for deleting workouts.
// ABOUTME: Deletes one workout by ID, or clears the whole log with --yes.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var clearConfirm bool

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a workout",
	Long: `Delete a workout by its ID.

The ID is shown in the first column of 'fitlog list' output. Deleted IDs
are never handed out again.

CAUTION:

  This permanently deletes the workout. There is no undo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		// Fetch first to show what we're deleting
		w, err := repo.Get(id)
		if err != nil {
			return lookupError(id, err)
		}

		ok, err := repo.DeleteOne(id)
		if err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}
		if !ok {
			return fmt.Errorf("workout not found: %d", id)
		}

		color.Yellow("✗ Deleted %s", w.Name)
		fmt.Printf("  %s %s %s min\n",
			color.New(color.Faint).Sprintf("#%d", w.ID),
			w.Type, w.Duration)

		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all workouts",
	Long: `Delete every workout in the log.

Requires --yes. Consider 'fitlog export json -o backup.json' first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearConfirm {
			return fmt.Errorf("refusing to delete all workouts without --yes")
		}

		count, err := repo.Count()
		if err != nil {
			return fmt.Errorf("failed to count workouts: %w", err)
		}

		if err := repo.DeleteAll(); err != nil {
			return fmt.Errorf("failed to delete workouts: %w", err)
		}

		color.Yellow("✗ Deleted %d workouts", count)
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVarP(&clearConfirm, "yes", "y", false, "confirm deleting all workouts")

	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
}
