// Package scene holds the outer state machine that frontends drive: the
// title screen with its panels and the play scene. The simulation only runs
// while the machine is in Play.
package scene

// Scene is the top-level screen.
type Scene int

const (
	SceneTitle Scene = iota
	ScenePlay
)

func (s Scene) String() string {
	switch s {
	case SceneTitle:
		return "title"
	case ScenePlay:
		return "play"
	default:
		return "unknown"
	}
}

// Panel is the sub-view shown on the title screen.
type Panel int

const (
	PanelMenu Panel = iota
	PanelHowTo
	PanelScores
)

func (p Panel) String() string {
	switch p {
	case PanelMenu:
		return "menu"
	case PanelHowTo:
		return "howto"
	case PanelScores:
		return "scores"
	default:
		return "unknown"
	}
}

// Item is a title menu entry.
type Item int

const (
	ItemStart Item = iota
	ItemHowTo
	ItemScores
	ItemQuit
)

// Items lists the title menu in display order.
var Items = []Item{ItemStart, ItemHowTo, ItemScores, ItemQuit}

// Label returns the menu text for the item.
func (i Item) Label() string {
	switch i {
	case ItemStart:
		return "Start"
	case ItemHowTo:
		return "How to play"
	case ItemScores:
		return "High scores"
	case ItemQuit:
		return "Quit"
	default:
		return "?"
	}
}

// State is a position of the machine.
type State struct {
	Scene Scene
	Panel Panel
}

// Machine is the outer state machine. Every change goes through a named
// transition; a transition that is not valid from the current state
// returns false and leaves the machine untouched.
type Machine struct {
	state  State
	cursor int
	quit   bool
}

// New returns a machine on the title menu with the cursor on Start.
func New() *Machine {
	return &Machine{}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Scene returns the current scene.
func (m *Machine) Scene() Scene {
	return m.state.Scene
}

// Panel returns the title panel. It is only meaningful on the title scene.
func (m *Machine) Panel() Panel {
	return m.state.Panel
}

// Playing reports whether the simulation should run.
func (m *Machine) Playing() bool {
	return m.state.Scene == ScenePlay
}

// Cursor returns the index of the highlighted menu item.
func (m *Machine) Cursor() int {
	return m.cursor
}

// Selected returns the highlighted menu item.
func (m *Machine) Selected() Item {
	return Items[m.cursor]
}

// QuitRequested reports whether the user asked to exit.
func (m *Machine) QuitRequested() bool {
	return m.quit
}

func (m *Machine) inMenu() bool {
	return m.state == State{Scene: SceneTitle, Panel: PanelMenu}
}

// MoveUp moves the menu cursor up, stopping at the first item.
func (m *Machine) MoveUp() bool {
	if !m.inMenu() || m.cursor == 0 {
		return false
	}
	m.cursor--
	return true
}

// MoveDown moves the menu cursor down, stopping at the last item.
func (m *Machine) MoveDown() bool {
	if !m.inMenu() || m.cursor == len(Items)-1 {
		return false
	}
	m.cursor++
	return true
}

// Confirm activates the highlighted item, or closes an open panel.
func (m *Machine) Confirm() bool {
	if m.state.Scene != SceneTitle {
		return false
	}
	if m.state.Panel != PanelMenu {
		return m.ClosePanel()
	}

	switch m.Selected() {
	case ItemStart:
		return m.StartGame()
	case ItemHowTo:
		return m.ShowHowTo()
	case ItemScores:
		return m.ShowScores()
	case ItemQuit:
		return m.Quit()
	}
	return false
}

// StartGame enters the play scene from the title menu.
func (m *Machine) StartGame() bool {
	if !m.inMenu() {
		return false
	}
	m.state = State{Scene: ScenePlay}
	return true
}

// ShowHowTo opens the how-to panel from the title menu.
func (m *Machine) ShowHowTo() bool {
	if !m.inMenu() {
		return false
	}
	m.state.Panel = PanelHowTo
	return true
}

// ShowScores opens the scoreboard panel from the title menu.
func (m *Machine) ShowScores() bool {
	if !m.inMenu() {
		return false
	}
	m.state.Panel = PanelScores
	return true
}

// ClosePanel returns from a title panel to the menu.
func (m *Machine) ClosePanel() bool {
	if m.state.Scene != SceneTitle || m.state.Panel == PanelMenu {
		return false
	}
	m.state.Panel = PanelMenu
	return true
}

// EndGame leaves the play scene for the title menu.
func (m *Machine) EndGame() bool {
	if m.state.Scene != ScenePlay {
		return false
	}
	m.state = State{Scene: SceneTitle, Panel: PanelMenu}
	return true
}

// Back unwinds one level: play to title, panel to menu, menu to quit.
func (m *Machine) Back() bool {
	switch {
	case m.state.Scene == ScenePlay:
		return m.EndGame()
	case m.state.Panel != PanelMenu:
		return m.ClosePanel()
	default:
		return m.Quit()
	}
}

// Quit requests exit. It is valid from any state and only once.
func (m *Machine) Quit() bool {
	if m.quit {
		return false
	}
	m.quit = true
	return true
}
