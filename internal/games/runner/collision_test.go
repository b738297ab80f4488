package runner

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

const (
	testTileW = 128
	testTileH = 64
	testFloor = 720
)

func newTestPlayer(x, y float64) *Player {
	return &Player{
		Center:   core.Vec2{X: x, Y: y},
		Width:    50,
		Height:   50,
		Airborne: true,
	}
}

// segmentWithTop returns a segment whose tile tops sit at top.
func segmentWithTop(x, top float64, tiles int) Segment {
	return Segment{X: x, Y: top + testTileH, Tiles: tiles, Active: true}
}

func TestResolveLandingFromAbove(t *testing.T) {
	tests := []struct {
		name     string
		centerY  float64
		expected float64
	}{
		{"five pixel penetration", 400, 395},
		{"ten pixel penetration", 405, 395},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPlayer(300, tc.centerY)
			p.VY = 6
			segs := []Segment{segmentWithTop(256, 420, 1)}

			res := Resolve(p, segs, testTileW, testTileH, testFloor)

			if p.Center.Y != tc.expected {
				t.Errorf("center y = %v, expected %v", p.Center.Y, tc.expected)
			}
			if p.Center.X != 300 {
				t.Errorf("center x moved to %v", p.Center.X)
			}
			if p.VY != 0 {
				t.Errorf("VY = %v, expected 0", p.VY)
			}
			if p.Airborne {
				t.Error("landing should clear Airborne")
			}
			if !res.Landed || res.LastAxis != AxisTop || res.Corrections != 1 {
				t.Errorf("resolution = %+v, expected one top correction", res)
			}
		})
	}
}

func TestResolvePushLeft(t *testing.T) {
	// Player's right side 5px into the left face of a raised segment
	p := newTestPlayer(225, 500)
	p.VY = 3
	segs := []Segment{segmentWithTop(245, 420, 3)}

	res := Resolve(p, segs, testTileW, testTileH, testFloor)

	if res.LastAxis != AxisLeft {
		t.Fatalf("axis = %v, expected left", res.LastAxis)
	}
	if p.Center.X != 220 {
		t.Errorf("center x = %v, expected 220", p.Center.X)
	}
	if p.VY != 3 || !p.Airborne {
		t.Error("horizontal push should not touch vertical state")
	}
}

func TestResolvePushRight(t *testing.T) {
	p := newTestPlayer(145, 500)
	segs := []Segment{segmentWithTop(0, 420, 1)} // tile spans [0, 128)

	res := Resolve(p, segs, testTileW, testTileH, testFloor)

	if res.LastAxis != AxisRight {
		t.Fatalf("axis = %v, expected right", res.LastAxis)
	}
	if p.Center.X != 153 {
		t.Errorf("center x = %v, expected 153", p.Center.X)
	}
}

func TestResolveHeadBump(t *testing.T) {
	// A short floor exposes the pillar's underside at y=500
	p := newTestPlayer(300, 520)
	p.VY = -4
	segs := []Segment{segmentWithTop(256, 420, 1)}

	res := Resolve(p, segs, testTileW, testTileH, 500)

	if res.LastAxis != AxisBottom {
		t.Fatalf("axis = %v, expected bottom", res.LastAxis)
	}
	if p.Center.Y != 525 {
		t.Errorf("center y = %v, expected 525", p.Center.Y)
	}
	if p.VY != -4 {
		t.Errorf("head bump should keep velocity, got %v", p.VY)
	}
	if !p.Airborne || res.Landed {
		t.Error("head bump should not ground the player")
	}
}

func TestResolveTieBreakOrder(t *testing.T) {
	// Left and top penetration are both 5: left is evaluated first
	p := newTestPlayer(230, 400)
	segs := []Segment{segmentWithTop(250, 420, 1)}

	res := Resolve(p, segs, testTileW, testTileH, testFloor)

	if res.LastAxis != AxisLeft {
		t.Fatalf("tie resolved along %v, expected left", res.LastAxis)
	}
	if p.Center.X != 225 || p.Center.Y != 400 {
		t.Errorf("center = %+v, expected (225, 400)", p.Center)
	}
	if !p.Airborne {
		t.Error("a left push should not ground the player")
	}

	// Right and top both 8: right beats top
	p = newTestPlayer(145, 403)
	segs = []Segment{segmentWithTop(0, 420, 1)}
	res = Resolve(p, segs, testTileW, testTileH, testFloor)
	if res.LastAxis != AxisRight {
		t.Errorf("tie resolved along %v, expected right", res.LastAxis)
	}
}

func TestResolveSequentialFold(t *testing.T) {
	// The player straddles tiles 0 and 1; landing on tile 0 clears tile 1
	p := newTestPlayer(128, 400)
	segs := []Segment{segmentWithTop(0, 420, 3)}

	res := Resolve(p, segs, testTileW, testTileH, testFloor)

	if res.Corrections != 1 {
		t.Errorf("corrections = %d, expected 1", res.Corrections)
	}
	if p.Center.Y != 395 {
		t.Errorf("center y = %v, expected 395", p.Center.Y)
	}
	if res.LastTile.Min.X != 0 {
		t.Errorf("last tile starts at %v, expected tile 0", res.LastTile.Min.X)
	}
}

func TestResolveSkipsInactiveAndDistant(t *testing.T) {
	p := newTestPlayer(300, 400)
	segs := []Segment{
		{X: 256, Y: 484, Tiles: 1, Active: false},
		segmentWithTop(900, 420, 4),
	}

	res := Resolve(p, segs, testTileW, testTileH, testFloor)

	if res.Corrections != 0 || res.LastAxis != AxisNone {
		t.Errorf("resolution = %+v, expected none", res)
	}
	if p.Center != (core.Vec2{X: 300, Y: 400}) || !p.Airborne {
		t.Error("player should be untouched")
	}
}

func TestResolveTouchingIsNotOverlap(t *testing.T) {
	p := newTestPlayer(300, 395) // feet exactly on the tile top
	segs := []Segment{segmentWithTop(256, 420, 1)}

	if res := Resolve(p, segs, testTileW, testTileH, testFloor); res.Corrections != 0 {
		t.Errorf("touching box was corrected: %+v", res)
	}
}

func TestResolveClearsTriggeringTile(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	segs := []Segment{segmentWithTop(256, 420, 1)}

	for i := 0; i < 5000; i++ {
		// Integer positions keep the push-out arithmetic exact
		p := newTestPlayer(float64(200+rng.Intn(240)), float64(360+rng.Intn(380)))
		res := Resolve(p, segs, testTileW, testTileH, testFloor)
		if res.Corrections == 0 {
			continue
		}
		if p.Box().Overlaps(res.LastTile) {
			t.Fatalf("player %+v still overlaps tile %+v after %v push", p.Box(), res.LastTile, res.LastAxis)
		}
		if res.LastAxis == AxisTop && (p.Airborne || p.VY != 0) {
			t.Fatalf("top correction left Airborne=%v VY=%v", p.Airborne, p.VY)
		}
	}
}

func TestTileBox(t *testing.T) {
	s := Segment{X: 100, Y: 500, Tiles: 3, Active: true}
	b := TileBox(s, 2, testTileW, testTileH, testFloor)

	expected := core.Box{Min: core.Vec2{X: 356, Y: 436}, Max: core.Vec2{X: 484, Y: 720}}
	if b != expected {
		t.Errorf("TileBox = %+v, expected %+v", b, expected)
	}
}

func TestAxisString(t *testing.T) {
	names := map[Axis]string{
		AxisNone:   "none",
		AxisLeft:   "left",
		AxisRight:  "right",
		AxisTop:    "top",
		AxisBottom: "bottom",
	}
	for a, want := range names {
		if a.String() != want {
			t.Errorf("Axis(%d).String() = %q, expected %q", a, a.String(), want)
		}
	}
}
