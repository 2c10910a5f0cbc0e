// ABOUTME: CLI commands for aggregate views of the workout log.
// ABOUTME: summary prints count, total minutes and top type; types lists known types.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:     "summary",
	Aliases: []string{"stats"},
	Short:   "Show workout totals",
	Long: `Show the number of logged workouts, the total duration in minutes
and the most frequent workout type.

Durations that are not whole numbers count as 0 minutes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := repo.Summary()
		if err != nil {
			return fmt.Errorf("failed to summarize workouts: %w", err)
		}
		printSummary(s)
		return nil
	},
}

func printSummary(s *storage.Summary) {
	faint := color.New(color.Faint)
	mostFrequent := "None"
	if s.HasWorkouts {
		mostFrequent = s.MostFrequentType
	}

	color.New(color.Bold).Println("Workout summary")
	fmt.Printf("  %s %d\n", faint.Sprint("Workouts:    "), s.Count)
	fmt.Printf("  %s %d min\n", faint.Sprint("Total time:  "), s.TotalDuration)
	fmt.Printf("  %s %s\n", faint.Sprint("Most frequent:"), mostFrequent)
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List suggested workout types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, t := range models.KnownTypes {
			fmt.Println(t)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(typesCmd)
}
