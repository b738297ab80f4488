package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/session"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 runs and overall statistics.

Examples:
  runner scores
  runner scores --db ./runner.db
  runner scores --clear`,
	Args: cobra.NoArgs,
	Run:  exitOnError(runScores),
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func runScores() error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(runner.GameID); err != nil {
			return err
		}
		fmt.Println("All runs deleted.")
		return nil
	}

	runs, err := store.TopScores(runner.GameID, session.ScoreLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Tile Runner")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return nil
	}

	rows := make([][]string, len(runs))
	for i, r := range runs {
		rows[i] = []string{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%.0f", r.Distance),
			fmt.Sprintf("%d", r.Stage+1),
			fmt.Sprintf("%d", r.Seed),
			r.CreatedAt.Format("2006-01-02 15:04"),
		}
	}
	fmt.Println(newTable("Rank", "Score", "Distance", "Stage", "Seed", "Date").Rows(rows...))

	stats, err := store.GetGameStats(runner.GameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Runs: %d   Best: %d   Average: %.0f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	fmt.Printf("Furthest: %.0f   Highest stage: %d   Last played: %s\n",
		stats.BestDistance, stats.BestStage+1, stats.LastPlayed.Format("2006-01-02 15:04"))
	return nil
}

// newTable returns a bordered lipgloss table with headers.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}
