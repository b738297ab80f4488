package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/scene"
)

var (
	logoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 2)

	selectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57")).
				Padding(0, 2)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

const howToText = `Run as far as you can across the scrolling ground.

Jump over gaps and onto higher ledges. Running into
the side of a ledge pushes you back; falling below
the screen ends the run.

The ground speeds up as your distance grows, over
seven stages. Every 10 units of distance is a point.`

// titleView renders the title scene for the current panel.
func (m Model) titleView() string {
	var body string
	switch m.session.Machine().Panel() {
	case scene.PanelHowTo:
		body = m.howToView()
	case scene.PanelScores:
		body = m.scoresView()
	default:
		body = m.menuView()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) menuView() string {
	lines := []string{
		logoStyle.Render(strings.ToUpper(spaced(m.session.Game().Title()))),
	}
	if m.label != "" {
		lines = append(lines, subtitleStyle.Render(m.label))
	}
	if high := m.session.HighScore(); high > 0 {
		lines = append(lines, subtitleStyle.Render(fmt.Sprintf("Best: %d", high)))
	}
	lines = append(lines, "")

	for i, item := range scene.Items {
		if i == m.session.Machine().Cursor() {
			lines = append(lines, selectedItemStyle.Render("> "+item.Label()))
		} else {
			lines = append(lines, itemStyle.Render("  "+item.Label()))
		}
	}

	lines = append(lines, helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m Model) howToView() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		panelTitleStyle.Render("HOW TO PLAY"),
		howToText,
		helpStyle.Render(m.help.FullHelpView(m.keys.FullHelp())),
	)
}

func (m Model) scoresView() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		panelTitleStyle.Render("HIGH SCORES"),
		m.board.View(),
		helpStyle.Render(m.help.ShortHelpView([]key.Binding{m.keys.Up, m.keys.Down, m.keys.Back})),
	)
}

// spaced puts a space between letters: "Run" becomes "R u n".
func spaced(s string) string {
	runes := []rune(s)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
