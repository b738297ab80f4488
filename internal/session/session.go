// Package session runs one player's session independently of any frontend:
// it routes actions through the scene machine, starts and steps runs,
// forwards edge events to a sink and records finished runs once.
package session

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/scene"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// ScoreLimit is how many runs the scores panel shows.
const ScoreLimit = 10

// Game is the game a session drives.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(in core.InputFrame) core.StepResult
	State() core.GameState
	Render(dst *core.Screen)
}

// RunStats is implemented by games that track travelled distance.
// It is recorded alongside the score when a run ends.
type RunStats interface {
	Distance() float64
}

// EventSink receives the edge events raised by each tick.
type EventSink interface {
	Handle(ev core.Events)
}

// Options configures a Session. Store, Sound and Logger may be nil.
type Options struct {
	Runtime core.RuntimeConfig // a zero Seed picks a fresh seed per run
	Store   *storage.Store
	Sound   EventSink
	Logger  *log.Logger
}

// Session is not safe for concurrent use; each frontend loop owns one.
type Session struct {
	machine   *scene.Machine
	game      Game
	store     *storage.Store
	sound     EventSink
	logger    *log.Logger
	runtime   core.RuntimeConfig
	fixedSeed bool

	input     core.InputFrame
	state     core.GameState
	run       int
	saved     bool
	highScore int
	scores    []storage.Run
	scoresErr error
}

// New creates a session on the title menu.
func New(game Game, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}

	s := &Session{
		machine:   scene.New(),
		game:      game,
		store:     opts.Store,
		sound:     opts.Sound,
		logger:    logger,
		runtime:   rt,
		fixedSeed: rt.Seed != 0,
		input:     core.NewInputFrame(),
	}
	s.refreshHighScore()
	return s
}

// Press applies one input action. Title actions take effect at once; jump
// and pause are buffered for the next Tick.
func (s *Session) Press(a core.Action) {
	if a == core.ActionQuit {
		s.machine.Quit()
		return
	}
	if s.machine.Playing() {
		s.pressPlay(a)
		return
	}

	panel := s.machine.Panel()
	switch a {
	case core.ActionUp:
		s.machine.MoveUp()
	case core.ActionDown:
		s.machine.MoveDown()
	case core.ActionConfirm:
		s.machine.Confirm()
	case core.ActionBack:
		s.machine.Back()
	}

	switch {
	case s.machine.Playing():
		s.startRun()
	case s.machine.Panel() == scene.PanelScores && panel != scene.PanelScores:
		s.loadScores()
	}
}

func (s *Session) pressPlay(a core.Action) {
	switch a {
	case core.ActionBack:
		// Back leaves a finished or paused run and pauses a live one
		if s.state.GameOver || s.state.Paused {
			s.leaveRun()
			return
		}
		s.input.Set(core.ActionPause)
	case core.ActionRestart:
		if s.state.GameOver {
			s.startRun()
		}
	case core.ActionJump, core.ActionPause:
		s.input.Set(a)
	}
}

func (s *Session) startRun() {
	if !s.fixedSeed {
		s.runtime.Seed = time.Now().UnixNano()
	}
	s.game.Reset(s.runtime)
	s.state = s.game.State()
	s.saved = false
	s.input.Clear()
	s.run++

	s.logger.Debug("run started", "seed", s.runtime.Seed)
}

func (s *Session) leaveRun() {
	s.machine.EndGame()
	s.input.Clear()
	s.refreshHighScore()
}

// Tick steps the game once with the buffered input. It reports false and
// does nothing outside the play scene.
func (s *Session) Tick() (core.StepResult, bool) {
	if !s.machine.Playing() {
		return core.StepResult{}, false
	}

	result := s.game.Step(s.input)
	s.state = result.State
	s.input.Clear()

	if s.sound != nil && result.Events != 0 {
		s.sound.Handle(result.Events)
	}
	if s.state.GameOver && !s.saved {
		s.saveRun()
		s.saved = true
	}
	return result, true
}

// saveRun records the finished run. Failures are logged and ignored.
func (s *Session) saveRun() {
	run := storage.Run{
		GameID: s.game.ID(),
		Score:  s.state.Score,
		Stage:  s.state.Stage,
		Seed:   s.runtime.Seed,
	}
	if rs, ok := s.game.(RunStats); ok {
		run.Distance = rs.Distance()
	}

	s.logger.Info("run ended", "score", run.Score, "stage", run.Stage+1, "distance", int(run.Distance))
	if s.store == nil || run.Score <= 0 {
		return
	}
	if _, err := s.store.SaveRun(run); err != nil {
		s.logger.Warn("could not save run", "error", err)
	}
}

func (s *Session) refreshHighScore() {
	if s.store == nil {
		return
	}
	high, err := s.store.HighScore(s.game.ID())
	if err != nil {
		s.logger.Warn("could not read high score", "error", err)
		return
	}
	s.highScore = high
}

func (s *Session) loadScores() {
	s.scores, s.scoresErr = nil, nil
	if s.store == nil {
		return
	}
	s.scores, s.scoresErr = s.store.TopScores(s.game.ID(), ScoreLimit)
	if s.scoresErr != nil {
		s.logger.Warn("could not load scores", "error", s.scoresErr)
	}
}

// Resize forwards a new output size to the game.
func (s *Session) Resize(w, h int) {
	s.runtime.ScreenW, s.runtime.ScreenH = w, h
	s.game.Resize(w, h)
}

// Machine exposes the scene machine for rendering decisions.
func (s *Session) Machine() *scene.Machine { return s.machine }

// Game returns the driven game.
func (s *Session) Game() Game { return s.game }

// Playing reports whether the play scene is active.
func (s *Session) Playing() bool { return s.machine.Playing() }

// QuitRequested reports whether the user asked to exit.
func (s *Session) QuitRequested() bool { return s.machine.QuitRequested() }

// State returns the game state after the last tick.
func (s *Session) State() core.GameState { return s.state }

// Run counts started runs. Frontends use it to tell one run's tick loop
// from the next.
func (s *Session) Run() int { return s.run }

// Seed returns the seed of the current run.
func (s *Session) Seed() int64 { return s.runtime.Seed }

// TickRate returns the simulation rate.
func (s *Session) TickRate() int { return s.runtime.TickRate }

// HighScore returns the best stored score, refreshed when leaving a run.
func (s *Session) HighScore() int { return s.highScore }

// HasStore reports whether runs are persisted.
func (s *Session) HasStore() bool { return s.store != nil }

// Scores returns the runs loaded when the scores panel was opened.
func (s *Session) Scores() ([]storage.Run, error) { return s.scores, s.scoresErr }
