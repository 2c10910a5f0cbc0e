// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/fitlog/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout. Logs go to stderr or the
configured log file.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "fitlog": {
        "command": "fitlog",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  add_workout          Log a workout
  list_workouts        List workouts, filtered by type or status
  get_workout          Get one workout by ID
  update_workout       Change name, duration or type
  complete_workout     Mark a workout completed
  delete_workout       Delete a workout
  delete_all_workouts  Delete every workout (requires confirm)
  workout_summary      Count, total minutes and most frequent type

AVAILABLE RESOURCES:

  fitlog://workouts/recent   Ten most recent workouts
  fitlog://summary           Totals and completion counts`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
