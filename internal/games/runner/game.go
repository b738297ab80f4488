package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// GameID identifies runs of this game in the score store.
const GameID = "runner"

// Visual characters for rendering
const (
	TileTopChar  = '█'
	TileFillChar = '▓'
	PlayerChar   = '█'
	LegLeftChar  = '╱'
	LegRightChar = '╲'
	TuckChar     = '▀'
	StarChar     = '.'
	HillChar     = '^'
	FloorChar    = '_'
)

// Game adapts a World to the arcade loop: pause, game over and drawing
// into a character screen.
type Game struct {
	cfg      config.RunnerConfig
	world    *World
	runtime  core.RuntimeConfig
	paused   bool
	gameOver bool
}

// New creates a game for cfg. Call Reset before stepping.
func New(cfg config.RunnerConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tile Runner"
}

// Reset initializes or restarts the run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.world == nil {
		g.world = NewWorld(g.cfg, runtime.Seed)
	} else {
		g.world.Reset(runtime.Seed)
	}
	g.paused = false
	g.gameOver = false
}

// Resize updates the output size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	res := g.world.Step(in.Has(core.ActionJump))
	g.gameOver = g.world.Dead()

	return core.StepResult{State: g.State(), Events: res.Events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.Score().Value(),
		Stage:    g.world.Stage().Index,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Distance returns how far the current run has travelled.
func (g *Game) Distance() float64 {
	if g.world == nil {
		return 0
	}
	return g.world.Distance()
}

// World exposes the simulation for frontends that draw it themselves.
func (g *Game) World() *World {
	return g.world
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}
	v := viewFor(dst, g.cfg.Viewport)

	g.drawBackground(dst, v)
	for _, s := range g.world.Segments() {
		g.drawSegment(dst, v, s)
	}
	g.drawPlayer(dst, v)
	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.world.Score().Value()))
	}
}

// view maps world pixels to screen cells.
type view struct {
	sx, sy float64
	w, h   int
}

func viewFor(dst *core.Screen, vp config.ViewportConfig) view {
	return view{
		sx: float64(dst.Width()) / vp.Width,
		sy: float64(dst.Height()) / vp.Height,
		w:  dst.Width(),
		h:  dst.Height(),
	}
}

func (v view) x(wx float64) int {
	return int(math.Floor(wx * v.sx))
}

func (v view) y(wy float64) int {
	return int(math.Floor(wy * v.sy))
}

func (g *Game) drawBackground(dst *core.Screen, v view) {
	p := g.world.Parallax()
	vw, vh := g.cfg.Viewport.Width, g.cfg.Viewport.Height

	for k := 0; float64(k)*160 < 2*vw; k++ {
		wx := p.Far + float64(k)*160
		wy := 40 + float64((k*37)%140)
		dst.SetColored(v.x(wx), v.y(wy), StarChar, core.ColorDarkGray)
	}
	for k := 0; float64(k)*96 < 2*vw; k++ {
		wx := p.Near + float64(k)*96
		wy := vh*0.5 + float64((k*53)%60)
		dst.SetColored(v.x(wx), v.y(wy), HillChar, core.ColorGray)
	}
	floorY := v.y(vh - 260)
	for k := 0; float64(k)*64 < 2*vw; k++ {
		dst.SetColored(v.x(p.Floor+float64(k)*64), floorY, FloorChar, core.ColorDarkGray)
	}
}

func (g *Game) drawSegment(dst *core.Screen, v view, s Segment) {
	if !s.Active {
		return
	}
	tw, th := g.cfg.Tiles.Width, g.cfg.Tiles.Height
	x0 := v.x(s.X)
	x1 := core.Max(v.x(s.X+float64(s.Tiles)*tw), x0+1)
	top := v.y(s.Y - th)

	dst.DrawRect(core.NewRect(x0, top, x1-x0, 1), TileTopChar, core.ColorGreen)
	dst.DrawRect(core.NewRect(x0, top+1, x1-x0, v.h-top-1), TileFillChar, core.ColorBrown)
}

func (g *Game) drawPlayer(dst *core.Screen, v view) {
	p := g.world.Player()
	b := p.Box()
	x0, y0 := v.x(b.Min.X), v.y(b.Min.Y)
	w := core.Max(v.x(b.Max.X)-x0, 1)
	h := core.Max(v.y(b.Max.Y)-y0, 1)

	dst.DrawRect(core.NewRect(x0, y0, w, h), PlayerChar, core.ColorBrightYellow)
	if h < 2 {
		return
	}

	// Legs on the bottom row
	legs := y0 + h - 1
	anim := g.world.Animator()
	for i := 0; i < w; i++ {
		r := TuckChar
		if !anim.Jumping() {
			r = LegLeftChar
			if (i+anim.Frame())%2 == 1 {
				r = LegRightChar
			}
		}
		dst.SetColored(x0+i, legs, r, core.ColorBrightYellow)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	score := g.world.Score()
	scoreText := fmt.Sprintf(" Score: %d ", score.Shown())
	color := core.ColorBrightWhite
	if score.Pop() > 0.5 {
		color = core.ColorBrightYellow
	}
	dst.DrawTextColored(2, 0, scoreText, color)

	stageText := fmt.Sprintf(" Stage %d/%d ", g.world.Stage().Index+1, g.world.Stages().Len())
	if !g.cfg.Difficulty.Enabled {
		stageText = fmt.Sprintf(" Stage %d (fixed) ", g.world.Stage().Index+1)
	}
	dst.DrawTextColored(dst.Width()-len(stageText)-2, 0, stageText, core.ColorCyan)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
