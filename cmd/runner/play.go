package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the runner in the terminal.

Controls:
  Space/Up   - Jump
  P          - Pause
  Esc        - Pause, then back to the menu
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at the first stage
  normal - Start at stage 2
  hard   - Start at stage 4
  fixed  - No progression, stays at the config's start stage

Examples:
  runner play
  runner play --difficulty hard
  runner play --config ./my-runner.yaml --sound=false`,
	Args: cobra.NoArgs,
	Run:  exitOnError(runPlay),
}

func init() {
	addGameFlags(playCmd)
}

func runPlay() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	sound, closeSound := openSound()
	defer closeSound()

	return tui.Run(runner.New(cfg), tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:  store,
		Sound:  sound,
		Logger: uiLogger(),
		Label:  difficultyLabel(cfg),
	})
}
