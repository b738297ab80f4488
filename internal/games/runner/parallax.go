package runner

// Parallax tracks the offsets of the three scrolling background layers.
// Offsets lie in (-width, 0]; a layer is drawn at offset and offset+width.
type Parallax struct {
	Far   float64
	Near  float64
	Floor float64
	width float64
}

// NewParallax creates layers that wrap every width pixels.
func NewParallax(width float64) Parallax {
	return Parallax{width: width}
}

// Reset zeroes every layer.
func (p *Parallax) Reset() {
	p.Far, p.Near, p.Floor = 0, 0, 0
}

// Advance scrolls the layers by the stage speeds. The floor layer moves with
// the ground.
func (p *Parallax) Advance(s Stage) {
	p.Far = p.wrap(p.Far - s.Far)
	p.Near = p.wrap(p.Near - s.Near)
	p.Floor = p.wrap(p.Floor - s.Scroll)
}

func (p *Parallax) wrap(x float64) float64 {
	if p.width <= 0 {
		return 0
	}
	for x <= -p.width {
		x += p.width
	}
	return x
}
