package session

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/scene"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// fakeGame ends after endAt steps with a fixed score.
type fakeGame struct {
	resets int
	steps  int
	jumps  int
	endAt  int
	score  int
	paused bool
	seeds  []int64
}

func (g *fakeGame) ID() string              { return "fake" }
func (g *fakeGame) Title() string           { return "Fake" }
func (g *fakeGame) Resize(w, h int)         {}
func (g *fakeGame) Render(dst *core.Screen) {}
func (g *fakeGame) Distance() float64       { return 1234 }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.paused = false
	g.seeds = append(g.seeds, cfg.Seed)
}

func (g *fakeGame) over() bool { return g.endAt > 0 && g.steps >= g.endAt }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	if g.over() {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	var ev core.Events
	if in.Has(core.ActionJump) {
		g.jumps++
		ev |= core.EventJump
	}
	g.steps++
	if g.over() {
		ev |= core.EventGameOver
	}
	return core.StepResult{State: g.State(), Events: ev}
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: g.score, Stage: 2, GameOver: g.over(), Paused: g.paused}
}

type recordingSink struct {
	events []core.Events
}

func (s *recordingSink) Handle(ev core.Events) { s.events = append(s.events, ev) }

func newTestSession(g Game, opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Runtime == (core.RuntimeConfig{}) {
		opts.Runtime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	}
	return New(g, opts)
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSessionStartsOnTitle(t *testing.T) {
	g := &fakeGame{}
	s := newTestSession(g, Options{})

	if s.Playing() || s.QuitRequested() {
		t.Error("new session should sit on the title")
	}
	if _, ok := s.Tick(); ok {
		t.Error("Tick on the title should report false")
	}
	if g.steps != 0 || g.resets != 0 {
		t.Error("game touched before Start")
	}
}

func TestSessionStartRun(t *testing.T) {
	g := &fakeGame{}
	s := newTestSession(g, Options{})

	s.Press(core.ActionConfirm)
	if !s.Playing() {
		t.Fatal("confirm on Start should begin play")
	}
	if s.Run() != 1 || g.resets != 1 {
		t.Errorf("run=%d resets=%d, expected 1 and 1", s.Run(), g.resets)
	}
	if g.seeds[0] != 7 || s.Seed() != 7 {
		t.Errorf("fixed seed not used: %v", g.seeds)
	}
}

func TestSessionFreshSeedWhenUnset(t *testing.T) {
	g := &fakeGame{}
	s := newTestSession(g, Options{Runtime: core.RuntimeConfig{TickRate: 30}})

	s.Press(core.ActionConfirm)
	if g.seeds[0] == 0 {
		t.Error("zero seed should be replaced by a fresh one")
	}
	if s.TickRate() != 30 {
		t.Errorf("TickRate() = %d, expected 30", s.TickRate())
	}
}

func TestSessionDefaultsTickRate(t *testing.T) {
	s := newTestSession(&fakeGame{}, Options{Runtime: core.RuntimeConfig{Seed: 1}})
	if s.TickRate() != 60 {
		t.Errorf("TickRate() = %d, expected 60", s.TickRate())
	}
}

func TestSessionJumpIsBufferedForOneTick(t *testing.T) {
	g := &fakeGame{}
	sink := &recordingSink{}
	s := newTestSession(g, Options{Sound: sink})
	s.Press(core.ActionConfirm)

	s.Press(core.ActionJump)
	s.Tick()
	s.Tick()

	if g.jumps != 1 {
		t.Errorf("jumps = %d, expected 1", g.jumps)
	}
	if len(sink.events) != 1 || !sink.events[0].Has(core.EventJump) {
		t.Errorf("sink got %v, expected one jump event", sink.events)
	}
}

func TestSessionBackPausesThenLeaves(t *testing.T) {
	g := &fakeGame{}
	s := newTestSession(g, Options{})
	s.Press(core.ActionConfirm)

	s.Press(core.ActionBack)
	s.Tick()
	if !s.State().Paused || !s.Playing() {
		t.Fatalf("first back should pause, state=%+v", s.State())
	}

	s.Press(core.ActionBack)
	if s.Playing() {
		t.Fatal("back while paused should return to the title")
	}
	if s.Machine().State() != (scene.State{Scene: scene.SceneTitle, Panel: scene.PanelMenu}) {
		t.Errorf("state after leaving = %+v", s.Machine().State())
	}
}

func TestSessionSavesRunOnce(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{endAt: 2, score: 42}
	s := newTestSession(g, Options{Store: store})
	s.Press(core.ActionConfirm)

	for i := 0; i < 5; i++ {
		s.Tick()
	}
	if !s.State().GameOver {
		t.Fatal("game should be over")
	}

	runs, err := store.AllScores("fake")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(runs))
	}
	r := runs[0]
	if r.Score != 42 || r.Stage != 2 || r.Distance != 1234 || r.Seed != 7 {
		t.Errorf("saved run = %+v", r)
	}

	if s.HighScore() != 0 {
		t.Error("high score should refresh only when leaving the run")
	}
	s.Press(core.ActionBack)
	if s.HighScore() != 42 {
		t.Errorf("HighScore() = %d, expected 42", s.HighScore())
	}
}

func TestSessionSkipsZeroScores(t *testing.T) {
	store := openStore(t)
	s := newTestSession(&fakeGame{endAt: 1}, Options{Store: store})
	s.Press(core.ActionConfirm)
	s.Tick()

	if runs, _ := store.AllScores("fake"); len(runs) != 0 {
		t.Errorf("zero-score run saved: %v", runs)
	}
}

func TestSessionRestart(t *testing.T) {
	g := &fakeGame{endAt: 1, score: 5}
	store := openStore(t)
	s := newTestSession(g, Options{Store: store})
	s.Press(core.ActionConfirm)

	s.Press(core.ActionRestart)
	if g.resets != 1 {
		t.Error("restart before game over should be ignored")
	}

	s.Tick()
	s.Press(core.ActionRestart)
	if g.resets != 2 || s.Run() != 2 {
		t.Errorf("restart: resets=%d run=%d", g.resets, s.Run())
	}
	if s.State().GameOver {
		t.Error("restart should clear the finished run")
	}

	s.Tick()
	if runs, _ := store.AllScores("fake"); len(runs) != 2 {
		t.Errorf("each run should be saved once, got %d", len(runs))
	}
}

func TestSessionScoresPanel(t *testing.T) {
	store := openStore(t)
	store.SaveRun(storage.Run{GameID: "fake", Score: 10})
	store.SaveRun(storage.Run{GameID: "fake", Score: 30})
	store.SaveRun(storage.Run{GameID: "other", Score: 99})

	s := newTestSession(&fakeGame{}, Options{Store: store})
	s.Press(core.ActionDown)
	s.Press(core.ActionDown)
	s.Press(core.ActionConfirm)

	if s.Machine().Panel() != scene.PanelScores {
		t.Fatalf("panel = %v, expected scores", s.Machine().Panel())
	}
	runs, err := s.Scores()
	if err != nil {
		t.Fatalf("Scores() error: %v", err)
	}
	if len(runs) != 2 || runs[0].Score != 30 {
		t.Errorf("Scores() = %v, expected 30 then 10", runs)
	}
	if !s.HasStore() {
		t.Error("HasStore() should be true")
	}
}

func TestSessionQuit(t *testing.T) {
	tests := []struct {
		name    string
		playing bool
		action  core.Action
	}{
		{"quit on title", false, core.ActionQuit},
		{"back on title", false, core.ActionBack},
		{"quit in play", true, core.ActionQuit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(&fakeGame{}, Options{})
			if tc.playing {
				s.Press(core.ActionConfirm)
			}
			s.Press(tc.action)
			if !s.QuitRequested() {
				t.Error("expected a quit request")
			}
		})
	}
}

func TestSessionDrivesRunner(t *testing.T) {
	store := openStore(t)
	g := runner.New(config.DefaultRunnerConfig())
	s := newTestSession(g, Options{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
		Store:   store,
	})
	s.Press(core.ActionConfirm)

	// Idle runs always end in a fall
	for i := 0; i < 20000 && !s.State().GameOver; i++ {
		s.Tick()
	}
	if !s.State().GameOver {
		t.Fatal("idle run never ended")
	}

	runs, err := store.AllScores(runner.GameID)
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(runs))
	}
	if runs[0].Distance != g.Distance() || runs[0].Score != g.State().Score {
		t.Errorf("saved %+v, game has distance %v score %d", runs[0], g.Distance(), g.State().Score)
	}
}
