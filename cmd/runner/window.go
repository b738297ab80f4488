package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the runner in a desktop window at its native 1280x720 resolution.

Uses the same controls and flags as play. --scale resizes the window; the
game is drawn at the same resolution either way.

Examples:
  runner window
  runner window --scale 0.5 --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  exitOnError(runWindow),
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to 1280x720")
}

func runWindow() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	sound, closeSound := openSound()
	defer closeSound()

	return window.Run(window.Options{
		Config:   cfg,
		Seed:     flagSeed,
		TickRate: flagFPS,
		Scale:    flagScale,
		Store:    store,
		Sound:    sound,
		Logger:   logger,
		Label:    difficultyLabel(cfg),
	})
}
