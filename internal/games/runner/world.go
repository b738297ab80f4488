// Package runner implements the endless runner simulation: a stage table,
// a recycled ground segment store, tile collision resolution and player
// kinematics, plus the arcade adapter that draws it into a core.Screen.
package runner

import (
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// TickResult describes what happened during one World.Step.
type TickResult struct {
	Events    core.Events
	Stage     Stage
	Recycled  int
	Collision Resolution
}

// World owns the simulation state and advances it one tick at a time.
// It is not safe for concurrent use.
type World struct {
	cfg        config.RunnerConfig
	stages     StageTable
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	ground     *Ground
	player     Player
	anim       Animator
	parallax   Parallax
	score      Score

	distance float64
	stage    Stage
	ticks    int
	dead     bool
}

// NewWorld creates a world from cfg and resets it with seed.
// It panics if cfg is invalid.
func NewWorld(cfg config.RunnerConfig, seed int64) *World {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	rng := rand.New(rand.NewSource(seed))
	w := &World{
		cfg:        cfg,
		stages:     NewStageTable(cfg.Stages),
		difficulty: config.NewDifficultyManager(cfg.Difficulty, cfg.Stages),
		rng:        rng,
		ground:     NewGround(cfg.Ground, cfg.Tiles.Width, rng),
		anim:       NewAnimator(NewTierTable(cfg.Animation)),
		parallax:   NewParallax(cfg.Viewport.Width),
		player: Player{
			Width:  cfg.Player.Width,
			Height: cfg.Player.Height,
		},
	}
	w.Reset(seed)
	return w
}

// Reset starts a new run with seed.
func (w *World) Reset(seed int64) {
	w.rng.Seed(seed)
	w.ground.Initialize()
	w.anim.Reset()
	w.parallax.Reset()
	w.score.Reset()
	w.distance = 0
	w.ticks = 0
	w.dead = false
	w.stage = w.stages.Lookup(w.difficulty.Distance(0))

	x := w.cfg.Player.X
	w.player.Reset(core.Vec2{X: x, Y: w.spawnSurface(x) - w.player.Height/2})
}

// spawnSurface returns the tile top under x, or under the first segment if
// x is over a gap.
func (w *World) spawnSurface(x float64) float64 {
	top := w.ground.TopAt(x)
	if top == NoFloor {
		top = w.ground.Segments()[0].Y
	}
	return top - w.cfg.Tiles.Height
}

// Step advances the simulation by one tick. jump is the rising edge of the
// jump input. Steps after death are no-ops.
func (w *World) Step(jump bool) TickResult {
	if w.dead {
		return TickResult{Stage: w.stage}
	}

	var res TickResult
	w.ticks++

	stage := w.stages.Lookup(w.difficulty.Distance(w.distance))
	if stage.Index > w.stage.Index {
		res.Events |= core.EventStageUp
	}
	w.stage = stage
	res.Stage = stage

	wasAirborne := w.player.Airborne
	if w.player.Update(jump, w.cfg.Physics.Gravity, w.cfg.Physics.JumpImpulse, NoFloor) {
		res.Events |= core.EventJump
	}

	res.Collision = Resolve(&w.player, w.ground.segs, w.cfg.Tiles.Width, w.cfg.Tiles.Height, w.cfg.Viewport.Height)
	if wasAirborne && !w.player.Airborne {
		res.Events |= core.EventLand
	}

	res.Recycled = w.ground.Advance(stage.Scroll)
	w.distance += stage.Scroll

	w.parallax.Advance(stage)
	w.anim.Update(w.player.Airborne, stage.Tier)
	w.score.Update(w.distance)

	if w.player.Center.Y > w.cfg.Viewport.Height+w.cfg.Viewport.DeathMargin {
		w.dead = true
		res.Events |= core.EventGameOver
	}
	return res
}

// Player returns a copy of the player state.
func (w *World) Player() Player {
	return w.player
}

// Segments returns a copy of the ground segments.
func (w *World) Segments() []Segment {
	return w.ground.Segments()
}

// TopAt queries the ground store.
func (w *World) TopAt(x float64) float64 {
	return w.ground.TopAt(x)
}

// SurfaceAt returns the y a player's feet rest on at x, or NoFloor.
func (w *World) SurfaceAt(x float64) float64 {
	top := w.ground.TopAt(x)
	if top == NoFloor {
		return NoFloor
	}
	return top - w.cfg.Tiles.Height
}

// Stage returns the stage used by the latest tick.
func (w *World) Stage() Stage {
	return w.stage
}

// Stages returns the stage table.
func (w *World) Stages() StageTable {
	return w.stages
}

// Distance returns the distance travelled this run.
func (w *World) Distance() float64 {
	return w.distance
}

// Ticks returns the number of ticks simulated this run.
func (w *World) Ticks() int {
	return w.ticks
}

// Dead reports whether the run has ended.
func (w *World) Dead() bool {
	return w.dead
}

// Score returns the score tracker.
func (w *World) Score() Score {
	return w.score
}

// Animator returns the animation state.
func (w *World) Animator() Animator {
	return w.anim
}

// Parallax returns the background layer offsets.
func (w *World) Parallax() Parallax {
	return w.parallax
}

// Recycled returns the number of segment recycles this run.
func (w *World) Recycled() int {
	return w.ground.Recycled()
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.RunnerConfig {
	return w.cfg
}
