// ABOUTME: CLI commands for a single workout: show, edit and done.
// ABOUTME: Workouts are addressed by the numeric ID shown in 'fitlog list'.
package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	editName     string
	editDuration string
	editType     string
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		w, err := repo.Get(id)
		if err != nil {
			return lookupError(id, err)
		}

		faint := color.New(color.Faint)
		color.New(color.Bold).Println(w.Name)
		fmt.Printf("  %s %d\n", faint.Sprint("ID:      "), w.ID)
		fmt.Printf("  %s %s\n", faint.Sprint("Type:    "), w.Type)
		fmt.Printf("  %s %s min\n", faint.Sprint("Duration:"), w.Duration)
		fmt.Printf("  %s %s\n", faint.Sprint("Status:  "), w.Status())
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a workout",
	Long: `Change the name, duration or type of a workout.

Fields not given keep their current value. Completion status is not
changed by edit; use 'fitlog done'.

EXAMPLES:

  fitlog edit 3 --duration 40
  fitlog edit 3 --name "Long run" --type Running`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if !flags.Changed("name") && !flags.Changed("duration") && !flags.Changed("type") {
			return fmt.Errorf("nothing to change (use --name, --duration or --type)")
		}

		current, err := repo.Get(id)
		if err != nil {
			return lookupError(id, err)
		}

		name, duration, workoutType := current.Name, current.Duration, current.Type
		if flags.Changed("name") {
			name = strings.TrimSpace(editName)
			if err := models.ValidateName(name); err != nil {
				return err
			}
		}
		if flags.Changed("duration") {
			duration = strings.TrimSpace(editDuration)
			if err := models.ValidateDuration(duration); err != nil {
				return err
			}
		}
		if flags.Changed("type") {
			workoutType = models.NormalizeType(editType)
			if err := models.ValidateType(workoutType); err != nil {
				return err
			}
		}

		ok, err := repo.Update(id, name, duration, workoutType)
		if err != nil {
			return fmt.Errorf("failed to update workout: %w", err)
		}
		if !ok {
			return fmt.Errorf("workout not found: %d", id)
		}

		color.Green("✓ Updated #%d", id)
		fmt.Printf("  %s %s %s min\n", name, workoutType, duration)
		return nil
	},
}

var doneCmd = &cobra.Command{
	Use:     "done <id>",
	Aliases: []string{"complete"},
	Short:   "Mark a workout completed",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ok, err := repo.MarkComplete(id)
		if err != nil {
			return fmt.Errorf("failed to complete workout: %w", err)
		}
		if !ok {
			return fmt.Errorf("workout not found: %d", id)
		}

		color.Green("✓ Completed #%d", id)
		return nil
	},
}

// parseID parses a workout ID, accepting the "#12" form printed by list.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(s), "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid workout ID: %s", s)
	}
	return id, nil
}

func lookupError(id int64, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("workout not found: %d", id)
	}
	return fmt.Errorf("failed to get workout: %w", err)
}

func init() {
	editCmd.Flags().StringVar(&editName, "name", "", "new name")
	editCmd.Flags().StringVarP(&editDuration, "duration", "d", "", "new duration in minutes")
	editCmd.Flags().StringVarP(&editType, "type", "t", "", "new workout type")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(doneCmd)
}
