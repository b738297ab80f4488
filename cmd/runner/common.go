package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/session"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Flags shared by the play and window commands
var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
)

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagSound, "sound", true, "Play sound effects")
}

// exitOnError runs fn and exits with status 1 if it fails.
func exitOnError(fn func() error) func(*cobra.Command, []string) {
	return func(_ *cobra.Command, _ []string) {
		if err := fn(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			closeLogger(nil, nil)
			os.Exit(1)
		}
	}
}

// loadConfig loads the runner config and applies --difficulty.
func loadConfig() (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if string(preset) != flagDifficulty {
			logger.Warn("unknown difficulty, using normal", "difficulty", flagDifficulty)
		}
		config.ApplyRunnerPreset(&cfg, preset)
	}
	logger.Debug("config loaded",
		"stages", len(cfg.Stages),
		"difficulty", cfg.Difficulty.Enabled,
		"start_stage", cfg.Difficulty.StartStage,
	)
	return cfg, nil
}

// difficultyLabel is shown under the title.
func difficultyLabel(cfg config.RunnerConfig) string {
	if flagDifficulty != "" {
		return "Difficulty: " + string(config.ParsePreset(flagDifficulty))
	}
	if !cfg.Difficulty.Enabled {
		return fmt.Sprintf("Fixed stage %d", cfg.Difficulty.StartStage+1)
	}
	return ""
}

// openStore opens the score database. The game still works without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// openSound starts the audio device. The returned sink is nil when sound is
// off or unavailable.
func openSound() (session.EventSink, func()) {
	if !flagSound {
		return nil, func() {}
	}
	sm := audio.NewSoundManager(audio.DefaultVolume)
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
		return nil, func() {}
	}
	return sm, sm.Close
}

// uiLogger keeps log lines off the screen while a full-screen UI runs.
func uiLogger() *log.Logger {
	if flagLogFile != "" {
		return logger
	}
	l := logger.With()
	l.SetOutput(io.Discard)
	return l
}
