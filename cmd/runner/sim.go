package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagTicks     int
	flagAutopilot bool
	flagSave      bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless",
	Long: `Step the simulation without a frontend and print a summary.

Without --autopilot the player never jumps. With it, a scripted policy jumps
over gaps and up steps. The same --seed always gives the same run.

Examples:
  runner sim --seed 42
  runner sim --ticks 36000 --autopilot --log-level debug
  runner sim --autopilot --save`,
	Args: cobra.NoArgs,
	Run:  exitOnError(runSim),
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum ticks to simulate")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Jump with the scripted policy")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Record the run in the scores database")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSim() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w := runner.NewWorld(cfg, seed)
	pilot := runner.DefaultAutopilot()
	jumps, landings := 0, 0

	start := time.Now()
	for i := 0; i < flagTicks && !w.Dead(); i++ {
		jump := flagAutopilot && pilot.Decide(w)
		res := w.Step(jump)

		if res.Events.Has(core.EventJump) {
			jumps++
		}
		if res.Events.Has(core.EventLand) {
			landings++
		}
		if res.Events.Has(core.EventStageUp) {
			logger.Debug("stage up", "tick", w.Ticks(), "stage", res.Stage.Index+1, "distance", int(w.Distance()))
		}
		if res.Events.Has(core.EventGameOver) {
			logger.Debug("fell", "tick", w.Ticks(), "distance", int(w.Distance()))
		}
	}
	elapsed := time.Since(start)

	outcome := "alive"
	if w.Dead() {
		outcome = "fell"
	}
	fmt.Printf("Seed:      %d\n", seed)
	fmt.Printf("Ticks:     %d (%s)\n", w.Ticks(), outcome)
	fmt.Printf("Distance:  %.0f\n", w.Distance())
	fmt.Printf("Score:     %d\n", w.Score().Value())
	fmt.Printf("Stage:     %d/%d\n", w.Stage().Index+1, w.Stages().Len())
	fmt.Printf("Jumps:     %d (%d landings)\n", jumps, landings)
	fmt.Printf("Recycled:  %d segments\n", w.Recycled())
	logger.Debug("simulation finished", "elapsed", elapsed)

	if !flagSave || w.Score().Value() <= 0 {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.SaveRun(storage.Run{
		GameID:   runner.GameID,
		Score:    w.Score().Value(),
		Distance: w.Distance(),
		Stage:    w.Stage().Index,
		Seed:     seed,
	})
	if err != nil {
		return err
	}
	logger.Info("run saved", "id", id)
	return nil
}
