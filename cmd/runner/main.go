// runner is an endless runner for the terminal, a desktop window or SSH.
//
// Usage:
//
//	runner play              - Play in the terminal
//	runner window            - Play in a desktop window
//	runner serve             - Start SSH server for remote play
//	runner scores            - Show high scores
//	runner stages            - Print the stage table
//	runner sim               - Run the simulation headless
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.arcade/runner.db)
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	logger  = log.Default()
	logFile *os.File
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Tile Runner - an endless runner for your terminal",
	Long: `Tile Runner is an endless runner. The ground scrolls faster with every
stage; jump across the gaps between platforms and climb the steps.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  stages   - Print the stage table
  sim      - Run the simulation headless

Examples:
  runner play
  runner play --difficulty hard
  runner window --scale 0.75
  runner serve --ssh :2222
  runner sim --ticks 3600 --autopilot`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
	PersistentPostRun: closeLogger,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/runner.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(stagesCmd)
	rootCmd.AddCommand(simCmd)
}

func setupLogger(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	}

	logger = log.NewWithOptions(out, log.Options{
		Prefix:          "runner",
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	log.SetDefault(logger)
	return nil
}

func closeLogger(_ *cobra.Command, _ []string) {
	if logFile != nil {
		logFile.Close()
	}
}
