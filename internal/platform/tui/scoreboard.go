package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/session"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// scoreboard is the high score panel of the title screen.
type scoreboard struct {
	runs     []storage.Run
	err      error
	hasStore bool
	table    table.Model
	width    int
	height   int
}

func newScoreboard(width, height int) scoreboard {
	b := scoreboard{
		width:  width,
		height: height,
	}
	b.table = b.createTable()
	return b
}

func (b *scoreboard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Distance", Width: 10},
		{Title: "Stage", Width: 6},
		{Title: "Date", Width: 14},
	}

	height := b.height - 10
	if height < 3 {
		height = 3
	}
	if height > session.ScoreLimit+1 {
		height = session.ScoreLimit + 1
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// SetRuns replaces the rows.
func (b *scoreboard) SetRuns(runs []storage.Run, err error, hasStore bool) {
	b.runs, b.err, b.hasStore = runs, err, hasStore
	b.fill()
}

func (b *scoreboard) fill() {
	rows := make([]table.Row, len(b.runs))
	for i, r := range b.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%.0f", r.Distance),
			fmt.Sprintf("%d", r.Stage+1),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	b.table.SetRows(rows)
	b.table.GotoTop()
}

// SetSize rebuilds the table for a new terminal size.
func (b *scoreboard) SetSize(width, height int) {
	b.width, b.height = width, height
	b.table = b.createTable()
	b.fill()
}

// Update scrolls the table.
func (b scoreboard) Update(msg tea.Msg) (scoreboard, tea.Cmd) {
	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return b, cmd
}

// Rows returns how many runs are shown.
func (b scoreboard) Rows() int {
	return len(b.runs)
}

func (b scoreboard) View() string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	mutedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 4)

	switch {
	case !b.hasStore:
		return boxStyle.Render(mutedStyle.Render("Score database unavailable."))
	case b.err != nil:
		return boxStyle.Render(mutedStyle.Render("Could not load scores."))
	case len(b.runs) == 0:
		return boxStyle.Render(mutedStyle.Render("No runs recorded yet.\nPlay a game to set a high score!"))
	}
	return boxStyle.Render(b.table.View())
}
