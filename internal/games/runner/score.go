package runner

import "math"

const (
	DistancePerPoint = 10.0 // pixels of travel per point
	scoreEase        = 0.3
	popDecay         = 0.1
)

// Score converts distance to points and eases a displayed value toward them.
type Score struct {
	value int
	shown float64
	pop   float64
}

// Reset clears the score.
func (s *Score) Reset() {
	*s = Score{}
}

// Update recomputes the score from distance. It reports whether the score rose.
func (s *Score) Update(distance float64) bool {
	rose := false
	if n := int(distance / DistancePerPoint); n > s.value {
		s.value = n
		s.pop = 1
		rose = true
	}

	s.shown += (float64(s.value) - s.shown) * scoreEase

	if s.pop > 0 {
		s.pop = math.Max(s.pop-popDecay, 0)
	}
	return rose
}

// Value returns the real score.
func (s Score) Value() int {
	return s.value
}

// Shown returns the eased score, rounded for display.
func (s Score) Shown() int {
	return int(math.Round(s.shown))
}

// Pop returns the pop timer in [0, 1]; it jumps to 1 when the score rises.
func (s Score) Pop() float64 {
	return s.pop
}

// Scale returns the display scale for the pop effect, 1.0 to 1.2.
func (s Score) Scale() float64 {
	return 1 + s.pop*0.2
}
