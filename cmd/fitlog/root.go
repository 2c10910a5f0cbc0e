// ABOUTME: Root Cobra command for fitlog CLI.
// ABOUTME: Handles config, logging and store lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"io"

	"github.com/harperreed/fitlog/internal/config"
	"github.com/harperreed/fitlog/internal/logging"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

var (
	dbPath  string
	verbose bool

	repo      storage.Repository
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "fitlog",
	Short: "Personal workout log",
	Long: `Fitlog is a CLI tool for logging exercise sessions.

Each workout has a name, a duration in minutes, a type and a completion
status. New workouts start out pending; mark them done once finished.

QUICK START:

  $ fitlog add "Morning run" 30 --type Running   # Log a workout
  $ fitlog list                                  # Newest first
  $ fitlog list --status pending                 # Only unfinished workouts
  $ fitlog done 3                                # Mark workout 3 completed
  $ fitlog summary                               # Count, minutes, top type

WORKOUT TYPES:

  Running, Cycling, Swimming, Walking are suggested (see 'fitlog types').
  Any non-empty type is accepted.

MCP INTEGRATION:

  Run 'fitlog mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "fitlog": { "command": "fitlog", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Workouts are stored in SQLite at ~/.local/share/fitlog/workouts.db
  (override with --db or data_dir in ~/.config/fitlog/config.json).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "help" || cmd.Name() == "types" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		params := cfg.LoggingParams()
		if verbose {
			params.Level = "debug"
		}
		logCloser = logging.Setup(params)

		repo, err = cfg.OpenStorage(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open workout store: %w", err)
		}
		logrus.WithField("command", cmd.Name()).Debug("workout store opened")
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeAll()
	},
}

// Execute runs the root command and releases the store even when the
// command itself failed (cobra skips PostRun hooks on error).
func Execute() error {
	err := rootCmd.Execute()
	return multierr.Append(err, closeAll())
}

func closeAll() error {
	var err error
	if repo != nil {
		err = multierr.Append(err, repo.Close())
		repo = nil
	}
	if logCloser != nil {
		err = multierr.Append(err, logCloser.Close())
		logCloser = nil
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (default: ~/.local/share/fitlog/workouts.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
