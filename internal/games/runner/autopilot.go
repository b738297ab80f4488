package runner

// Autopilot is a scripted jump policy. It looks ahead of the player by
// Lead ticks of travel and jumps when it sees a gap or a higher segment.
type Autopilot struct {
	Lead float64 // look-ahead in ticks at the current scroll speed
}

// DefaultAutopilot returns a policy tuned for the default physics.
func DefaultAutopilot() Autopilot {
	return Autopilot{Lead: 10}
}

// Decide reports whether to press jump this tick.
func (a Autopilot) Decide(w *World) bool {
	p := w.Player()
	if p.Airborne || w.Dead() {
		return false
	}

	here := w.SurfaceAt(p.Center.X)
	if here == NoFloor {
		// Walked off an edge without jumping
		return true
	}

	front := p.Box().Max.X
	ahead := w.SurfaceAt(front + w.Stage().Scroll*a.Lead)
	return ahead == NoFloor || ahead < here
}
