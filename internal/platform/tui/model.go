package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/scene"
	"github.com/vovakirdan/tui-runner/internal/session"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Options configures a Model. Store, Sound and Logger may be nil.
type Options struct {
	Runtime core.RuntimeConfig // a zero Seed picks a fresh seed per run
	Store   *storage.Store
	Sound   session.EventSink
	Logger  *log.Logger
	Label   string // shown under the title, e.g. the difficulty preset
}

// Model is the Bubble Tea model for a whole terminal session: the title
// screen with its panels and the play screen.
type Model struct {
	session *session.Session
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	board   scoreboard
	label   string
	width   int
	height  int
}

// NewModel creates the session model for game.
func NewModel(game session.Game, opts Options) Model {
	rt := opts.Runtime
	m := Model{
		session: session.New(game, session.Options{
			Runtime: rt,
			Store:   opts.Store,
			Sound:   opts.Sound,
			Logger:  opts.Logger,
		}),
		screen: core.NewScreen(rt.ScreenW, rt.ScreenH),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		board:  newScoreboard(rt.ScreenW, rt.ScreenH),
		label:  opts.Label,
		width:  rt.ScreenW,
		height: rt.ScreenH,
	}
	m.help.Width = rt.ScreenW
	return m
}

// Init starts on the title screen; ticks only run during play.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session
	machine := s.Machine()

	var action core.Action
	if s.Playing() {
		action = m.keys.PlayAction(msg)
	} else {
		action = m.keys.MenuAction(msg)
	}

	// The scores panel scrolls its table instead of the menu cursor
	if machine.Panel() == scene.PanelScores && !s.Playing() &&
		(action == core.ActionUp || action == core.ActionDown) {
		var cmd tea.Cmd
		m.board, cmd = m.board.Update(msg)
		return m, cmd
	}

	run := s.Run()
	panel := machine.Panel()
	s.Press(action)

	switch {
	case s.QuitRequested():
		return m, tea.Quit
	case s.Run() != run:
		return m, tickCmd(s.TickRate(), s.Run())
	case !s.Playing() && machine.Panel() == scene.PanelScores && panel != scene.PanelScores:
		runs, err := s.Scores()
		m.board.SetRuns(runs, err, s.HasStore())
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.session.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	m.board.SetSize(msg.Width, msg.Height)
	return m, nil
}

// handleTick steps the game. Ticks from an earlier run are dropped so a
// restart never doubles the tick rate.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	s := m.session
	if msg.Gen != s.Run() {
		return m, nil
	}

	result, ok := s.Tick()
	if !ok || result.State.GameOver {
		// Nothing moves after game over; restart starts a new loop
		return m, nil
	}
	return m, tickCmd(s.TickRate(), s.Run())
}

// View renders the current scene.
func (m Model) View() string {
	s := m.session
	if s.QuitRequested() {
		return ""
	}

	if s.Playing() {
		s.Game().Render(m.screen)
		return RenderScreen(m.screen)
	}
	return m.titleView()
}

// Run starts the Bubble Tea program on the local terminal.
func Run(game session.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
