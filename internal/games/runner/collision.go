package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Axis names the side a correction pushed the player out of.
type Axis int

const (
	AxisNone   Axis = iota
	AxisLeft        // pushed left out of a tile's left face
	AxisRight       // pushed right out of a tile's right face
	AxisTop         // pushed up onto a tile (landing)
	AxisBottom      // pushed down out of a tile's underside
)

// String returns a short name for the axis.
func (a Axis) String() string {
	switch a {
	case AxisLeft:
		return "left"
	case AxisRight:
		return "right"
	case AxisTop:
		return "top"
	case AxisBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Resolution summarizes one collision pass.
type Resolution struct {
	Corrections int
	Landed      bool     // a top correction grounded the player
	LastAxis    Axis     // axis of the most recent correction
	LastTile    core.Box // tile that triggered the most recent correction
}

// TileBox returns the collision pillar of tile t of segment s: its column
// from the tile top Y - tileH down to the world floor.
func TileBox(s Segment, t int, tileW, tileH, floor float64) core.Box {
	x := s.X + float64(t)*tileW
	return core.Box{
		Min: core.Vec2{X: x, Y: s.Y - tileH},
		Max: core.Vec2{X: x + tileW, Y: floor},
	}
}

// Resolve pushes the player out of every overlapping tile along the axis of
// least penetration. Tiles are visited in segment order then tile order and
// the player's box is re-derived after each correction. Ties go to the first
// candidate in the order left, right, top, bottom.
func Resolve(p *Player, segs []Segment, tileW, tileH, floor float64) Resolution {
	var res Resolution
	for _, s := range segs {
		if !s.Active {
			continue
		}
		for t := 0; t < s.Tiles; t++ {
			tile := TileBox(s, t, tileW, tileH, floor)
			box := p.Box()
			if !box.Overlaps(tile) {
				continue
			}

			axis, depth := leastPenetration(box, tile)
			switch axis {
			case AxisLeft:
				p.Center.X -= depth
			case AxisRight:
				p.Center.X += depth
			case AxisTop:
				p.Center.Y -= depth
				p.VY = 0
				p.Airborne = false
				res.Landed = true
			case AxisBottom:
				p.Center.Y += depth
			}
			res.Corrections++
			res.LastAxis = axis
			res.LastTile = tile
		}
	}
	return res
}

// leastPenetration returns the axis with the smallest push-out distance.
func leastPenetration(box, tile core.Box) (Axis, float64) {
	candidates := [...]struct {
		axis  Axis
		depth float64
	}{
		{AxisLeft, box.Max.X - tile.Min.X},
		{AxisRight, tile.Max.X - box.Min.X},
		{AxisTop, box.Max.Y - tile.Min.Y},
		{AxisBottom, tile.Max.Y - box.Min.Y},
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.depth < best.depth {
			best = c
		}
	}
	return best.axis, best.depth
}
