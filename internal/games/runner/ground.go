package runner

import (
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// NoFloor is returned by TopAt when no segment spans the queried x.
const NoFloor = 1e9

// Segment is a horizontal run of tiles at one height.
type Segment struct {
	X      float64 // leading edge
	Y      float64 // surface height, larger is lower
	Tiles  int
	Active bool
}

// Ground owns a fixed-size set of segments recycled as they scroll off the left edge.
type Ground struct {
	cfg      config.GroundConfig
	tileW    float64
	segs     []Segment
	rng      *rand.Rand
	recycled int // total recycles since Initialize
}

// NewGround creates an uninitialized ground store drawing from rng.
func NewGround(cfg config.GroundConfig, tileW float64, rng *rand.Rand) *Ground {
	return &Ground{
		cfg:   cfg,
		tileW: tileW,
		segs:  make([]Segment, cfg.Segments),
		rng:   rng,
	}
}

// Initialize lays the segments out left to right from StartX.
func (g *Ground) Initialize() {
	g.recycled = 0
	for i := range g.segs {
		s := Segment{
			Tiles:  core.RandInt(g.rng, g.cfg.MinTiles, g.cfg.MaxTiles),
			Active: true,
		}
		if i == 0 {
			s.X = g.cfg.StartX
			s.Y = core.RandFloat(g.rng, g.cfg.MinY, g.cfg.MaxY)
		} else {
			step := core.RandFloat(g.rng, -g.cfg.MaxHeightStep, g.cfg.MaxHeightStep)
			s.Y = core.ClampF(g.segs[i-1].Y+step, g.cfg.MinY, g.cfg.MaxY)
			s.X = g.rightmost(i) + g.gap()
		}
		g.segs[i] = s
	}
}

// Advance scrolls every segment left by speed, then recycles the ones whose
// trailing edge crossed x = 0. It returns how many were recycled.
//
// All segments move before any recycle. Recycles run in index order and each
// one searches the rightmost edge over the live set, so a segment recycled
// earlier in the same tick is a valid reference for a later one.
func (g *Ground) Advance(speed float64) int {
	for i := range g.segs {
		g.segs[i].X -= speed
	}

	n := 0
	for i := range g.segs {
		if !g.segs[i].Active || g.right(g.segs[i]) >= 0 {
			continue
		}
		g.recycle(i)
		n++
	}
	g.recycled += n
	return n
}

func (g *Ground) recycle(i int) {
	ref := g.rightmostIndex(len(g.segs))
	edge := g.right(g.segs[ref])
	refY := g.segs[ref].Y

	g.segs[i] = Segment{
		X:      edge + g.gap(),
		Y:      g.recycleHeight(refY),
		Tiles:  core.RandInt(g.rng, g.cfg.MinTiles, g.cfg.MaxTiles),
		Active: true,
	}
}

// recycleHeight draws a height between MinHeightDelta and MaxHeightStep away
// from ref. Out-of-range draws are retried up to ResampleLimit times; after
// that the height steps MinHeightDelta toward the roomier side and is clamped.
func (g *Ground) recycleHeight(ref float64) float64 {
	lo, hi := g.cfg.MinHeightDelta, g.cfg.MaxHeightStep
	for try := 0; try < g.cfg.ResampleLimit; try++ {
		y := ref + core.RandSign(g.rng)*core.RandFloat(g.rng, lo, hi)
		if y >= g.cfg.MinY && y <= g.cfg.MaxY {
			return y
		}
	}

	y := ref + lo
	if ref-g.cfg.MinY > g.cfg.MaxY-ref {
		y = ref - lo
	}
	return core.ClampF(y, g.cfg.MinY, g.cfg.MaxY)
}

// TopAt returns the Y of the segment whose span [X, X+width) contains x,
// or NoFloor.
func (g *Ground) TopAt(x float64) float64 {
	for _, s := range g.segs {
		if !s.Active {
			continue
		}
		if x >= s.X && x < g.right(s) {
			return s.Y
		}
	}
	return NoFloor
}

// Segments returns a copy of the segment set.
func (g *Ground) Segments() []Segment {
	out := make([]Segment, len(g.segs))
	copy(out, g.segs)
	return out
}

// Recycled returns the number of recycles since Initialize.
func (g *Ground) Recycled() int {
	return g.recycled
}

// TileWidth returns the width of one tile.
func (g *Ground) TileWidth() float64 {
	return g.tileW
}

// Width returns the horizontal extent of a segment.
func (g *Ground) Width(s Segment) float64 {
	return float64(s.Tiles) * g.tileW
}

func (g *Ground) right(s Segment) float64 {
	return s.X + g.Width(s)
}

func (g *Ground) gap() float64 {
	return float64(g.cfg.GapTiles) * g.tileW
}

// rightmostIndex returns the index of the segment with the largest trailing
// edge among the first n segments.
func (g *Ground) rightmostIndex(n int) int {
	best := 0
	for i := 1; i < n; i++ {
		if g.right(g.segs[i]) > g.right(g.segs[best]) {
			best = i
		}
	}
	return best
}

// rightmost returns the largest trailing edge among the first n segments.
func (g *Ground) rightmost(n int) float64 {
	return g.right(g.segs[g.rightmostIndex(n)])
}
