package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keySpace = runes(" ")
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func TestKeyMapMenuAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"up arrow", keyUp, core.ActionUp},
		{"k", runes("k"), core.ActionUp},
		{"down arrow", keyDown, core.ActionDown},
		{"j", runes("j"), core.ActionDown},
		{"enter", keyEnter, core.ActionConfirm},
		{"space", keySpace, core.ActionConfirm},
		{"esc", keyEsc, core.ActionBack},
		{"q", runes("q"), core.ActionQuit},
		{"ctrl+c", keyCtrlC, core.ActionQuit},
		{"unbound", runes("x"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.MenuAction(tc.msg); got != tc.expected {
				t.Errorf("MenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapPlayAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"space", keySpace, core.ActionJump},
		{"up arrow", keyUp, core.ActionJump},
		{"w", runes("w"), core.ActionJump},
		{"p", runes("p"), core.ActionPause},
		{"r", runes("r"), core.ActionRestart},
		{"esc", keyEsc, core.ActionBack},
		{"q", runes("q"), core.ActionQuit},
		{"enter does nothing", keyEnter, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.PlayAction(tc.msg); got != tc.expected {
				t.Errorf("PlayAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp should list bindings")
	}
	for i, group := range keys.FullHelp() {
		if len(group) == 0 {
			t.Errorf("FullHelp group %d is empty", i)
		}
	}
}
