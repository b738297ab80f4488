package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/scene"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// fakeGame ends after endAt steps with a fixed score.
type fakeGame struct {
	resets  int
	steps   int
	endAt   int
	score   int
	paused  bool
	resized [2]int
}

func (g *fakeGame) ID() string                   { return "fake" }
func (g *fakeGame) Title() string                { return "Fake" }
func (g *fakeGame) Reset(cfg core.RuntimeConfig) { g.resets++; g.steps = 0; g.paused = false }
func (g *fakeGame) Resize(w, h int)              { g.resized = [2]int{w, h} }
func (g *fakeGame) over() bool                   { return g.endAt > 0 && g.steps >= g.endAt }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if !g.over() && !g.paused {
		g.steps++
	}
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.over(), Paused: g.paused}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "FAKE")
}

func newTestModel(g *fakeGame, store *storage.Store) Model {
	return NewModel(g, Options{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7},
		Store:   store,
		Logger:  log.New(io.Discard),
	})
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return send(t, m, TickMsg{Gen: m.session.Run()})
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelStartsOnTitle(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	if m.Init() != nil {
		t.Error("title screen should not start ticking")
	}
	view := m.View()
	for _, item := range scene.Items {
		if !strings.Contains(view, item.Label()) {
			t.Errorf("title view missing %q", item.Label())
		}
	}
	if !strings.Contains(view, "F A K E") {
		t.Error("title view should show the game title")
	}
	if g.resets != 0 {
		t.Error("game should not be reset before Start")
	}
}

func TestModelPanels(t *testing.T) {
	m := newTestModel(&fakeGame{}, nil)

	m, _ = send(t, m, keyDown)
	m, _ = send(t, m, keyEnter)
	if p := m.session.Machine().Panel(); p != scene.PanelHowTo {
		t.Fatalf("panel = %v, expected howto", p)
	}
	if !strings.Contains(m.View(), "HOW TO PLAY") {
		t.Error("how-to panel not rendered")
	}

	m, _ = send(t, m, keyEsc)
	m, _ = send(t, m, keyDown)
	m, _ = send(t, m, keyEnter)
	if p := m.session.Machine().Panel(); p != scene.PanelScores {
		t.Fatalf("panel = %v, expected scores", p)
	}
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("scores panel should report the missing database")
	}

	// Arrows scroll the table and leave the menu cursor alone
	m, _ = send(t, m, keyUp)
	if m.session.Machine().Cursor() != 2 {
		t.Error("arrow in scores panel moved the menu cursor")
	}

	m, _ = send(t, m, keyEsc)
	if m.session.Machine().Panel() != scene.PanelMenu {
		t.Error("esc should close the scores panel")
	}
}

func TestModelScoresTable(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveRun(storage.Run{GameID: "fake", Score: 4321, Distance: 43210, Stage: 4})

	m := newTestModel(&fakeGame{}, store)
	m, _ = send(t, m, keyDown)
	m, _ = send(t, m, keyDown)
	m, _ = send(t, m, keyEnter)

	view := m.View()
	if !strings.Contains(view, "4321") || !strings.Contains(view, "43210") {
		t.Error("scores table should list the stored run")
	}
	if !strings.Contains(view, "Distance") {
		t.Error("scores table header missing")
	}
}

func TestModelTickLoop(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m, cmd := send(t, m, keyEnter)
	if !m.session.Playing() || cmd == nil {
		t.Fatal("enter on Start should begin play and schedule a tick")
	}

	m, cmd = tick(t, m)
	if g.steps != 1 || cmd == nil {
		t.Errorf("tick: steps=%d rescheduled=%v", g.steps, cmd != nil)
	}
	if !strings.Contains(m.View(), "FAKE") {
		t.Error("play view should render the game")
	}

	stale := TickMsg{Gen: m.session.Run() - 1}
	if _, cmd = send(t, m, stale); cmd != nil || g.steps != 1 {
		t.Error("stale tick should be dropped")
	}
}

func TestModelTickLoopStopsAtGameOver(t *testing.T) {
	g := &fakeGame{endAt: 1}
	m := newTestModel(g, nil)
	m, _ = send(t, m, keyEnter)

	m, cmd := tick(t, m)
	if cmd != nil {
		t.Error("tick loop should stop at game over")
	}

	run := m.session.Run()
	m, cmd = send(t, m, runes("r"))
	if m.session.Run() != run+1 || cmd == nil {
		t.Error("restart should start a new tick loop")
	}
}

func TestModelLeavingPlayDropsTicks(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)
	m, _ = send(t, m, keyEnter)

	m, _ = send(t, m, keyEsc) // pause
	m, _ = tick(t, m)
	m, _ = send(t, m, keyEsc) // leave
	if m.session.Playing() {
		t.Fatal("second esc should return to the title")
	}

	steps := g.steps
	if _, cmd := tick(t, m); cmd != nil || g.steps != steps {
		t.Error("tick on the title should be dropped")
	}
}

func TestModelQuit(t *testing.T) {
	tests := []struct {
		name    string
		playing bool
		msg     tea.KeyMsg
	}{
		{"q on title", false, runes("q")},
		{"esc on title", false, keyEsc},
		{"ctrl+c in play", true, keyCtrlC},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(&fakeGame{}, nil)
			if tc.playing {
				m, _ = send(t, m, keyEnter)
			}
			m, cmd := send(t, m, tc.msg)
			if !isQuit(cmd) {
				t.Error("expected tea.Quit")
			}
			if m.View() != "" {
				t.Error("view should be empty after quit")
			}
		})
	}
}

func TestModelResize(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if g.resized != [2]int{120, 40} {
		t.Errorf("game resized to %v, expected [120 40]", g.resized)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", m.screen.Width(), m.screen.Height())
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.DrawText(0, 1, "xy")

	lines := strings.Split(RenderScreen(s), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("row 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "xy") {
		t.Errorf("row 1 = %q", lines[1])
	}
}
