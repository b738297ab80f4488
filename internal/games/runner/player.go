package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Player is the vertical-only kinematic body. Horizontal motion is the
// world scrolling under a fixed x.
type Player struct {
	Center   core.Vec2
	Width    float64
	Height   float64
	VY       float64 // vertical velocity, negative is up
	Airborne bool
}

// Box returns the player's bounding box.
func (p Player) Box() core.Box {
	return core.BoxFromCenter(p.Center, p.Width, p.Height)
}

// Reset places the player at center, at rest and grounded.
func (p *Player) Reset(center core.Vec2) {
	p.Center = center
	p.VY = 0
	p.Airborne = false
}

// Update applies jump input and gravity for one tick. It reports whether a
// jump started. If the feet end up below groundY the player snaps onto it;
// the world passes NoFloor so only collision resolution grounds the player.
func (p *Player) Update(jump bool, gravity, impulse, groundY float64) bool {
	jumped := false
	if jump && !p.Airborne {
		p.VY = impulse
		p.Airborne = true
		jumped = true
	}

	p.VY += gravity
	p.Center.Y += p.VY

	if foot := p.Center.Y + p.Height/2; foot > groundY {
		p.Center.Y = groundY - p.Height/2
		p.VY = 0
		p.Airborne = false
	}
	return jumped
}
