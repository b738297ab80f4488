package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "Print the stage table",
	Long: `Print the stages of the effective config: the distance each one starts
at, its scroll and parallax speeds and its animation tier.

Examples:
  runner stages
  runner stages --difficulty hard
  runner stages --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  exitOnError(runStages),
}

func init() {
	stagesCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	stagesCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runStages() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	stages := runner.NewStageTable(cfg.Stages)
	rows := make([][]string, stages.Len())
	for i := range rows {
		s := stages.At(i)
		mark := ""
		if i == cfg.Difficulty.StartStage {
			mark = "start"
		}
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.0f", cfg.Stages[i].From),
			fmt.Sprintf("%g", s.Scroll),
			fmt.Sprintf("%g", s.Far),
			fmt.Sprintf("%g", s.Near),
			fmt.Sprintf("%d", s.Tier),
			mark,
		}
	}
	fmt.Println(newTable("Stage", "From", "Scroll", "Far", "Near", "Tier", "").Rows(rows...))

	if !cfg.Difficulty.Enabled {
		fmt.Printf("Progression is off; every run stays in stage %d.\n", cfg.Difficulty.StartStage+1)
	}
	return nil
}
