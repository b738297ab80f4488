// Package window is the Ebitengine frontend. It draws the runner world at
// its native pixel resolution and feeds keyboard edges into a session.
package window

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/session"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Options configures the window. Store, Sound and Logger may be nil.
type Options struct {
	Config   config.RunnerConfig
	Seed     int64 // zero picks a fresh seed per run
	TickRate int
	Scale    float64 // window size relative to the viewport
	Store    *storage.Store
	Sound    session.EventSink
	Logger   *log.Logger
	Label    string
}

// Game implements ebiten.Game over a session.
type Game struct {
	session *session.Session
	runner  *runner.Game
	cfg     config.RunnerConfig
	face    text.Face
	label   string
	width   int
	height  int
}

// New creates the window game. It does not open a window.
func New(opts Options) *Game {
	cfg := opts.Config
	game := runner.New(cfg)
	w, h := int(cfg.Viewport.Width), int(cfg.Viewport.Height)

	return &Game{
		session: session.New(game, session.Options{
			Runtime: core.RuntimeConfig{
				ScreenW:  w,
				ScreenH:  h,
				TickRate: opts.TickRate,
				Seed:     opts.Seed,
			},
			Store:  opts.Store,
			Sound:  opts.Sound,
			Logger: opts.Logger,
		}),
		runner: game,
		cfg:    cfg,
		face:   text.NewGoXFace(bitmapfont.Face),
		label:  opts.Label,
		width:  w,
		height: h,
	}
}

// Update applies this frame's key edges and steps the run once.
func (g *Game) Update() error {
	s := g.session
	for _, a := range pressed(s.Playing()) {
		s.Press(a)
		if s.QuitRequested() {
			return ebiten.Termination
		}
	}
	s.Tick()
	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.session.Playing() {
		g.drawPlay(screen)
		return
	}
	g.drawTitle(screen)
}

// Layout keeps the logical screen at the viewport size; Ebitengine scales
// it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(opts Options) error {
	g := New(opts)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(g.width)*scale), int(float64(g.height)*scale))
	ebiten.SetWindowTitle(g.runner.Title())
	ebiten.SetTPS(g.session.TickRate())

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
