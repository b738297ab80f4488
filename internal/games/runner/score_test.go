package runner

import (
	"math"
	"testing"
)

func TestScoreFromDistance(t *testing.T) {
	var s Score

	if !s.Update(95) {
		t.Error("score rise not reported")
	}
	if s.Value() != 9 {
		t.Errorf("Value() = %d, expected 9", s.Value())
	}
	if math.Abs(s.Pop()-0.9) > 1e-9 {
		t.Errorf("Pop() = %v, expected 0.9", s.Pop())
	}
	// shown eases 30% of the way: 2.7
	if s.Shown() != 3 {
		t.Errorf("Shown() = %d, expected 3", s.Shown())
	}

	if s.Update(99) {
		t.Error("no rise expected below the next point")
	}
	// 2.7 + 6.3*0.3 = 4.59
	if s.Shown() != 5 {
		t.Errorf("Shown() = %d, expected 5", s.Shown())
	}
}

func TestScoreShownConverges(t *testing.T) {
	var s Score
	for i := 0; i < 100; i++ {
		s.Update(1234)
	}
	if s.Shown() != 123 || s.Value() != 123 {
		t.Errorf("Shown() = %d Value() = %d, expected 123", s.Shown(), s.Value())
	}
	if s.Pop() != 0 {
		t.Errorf("Pop() = %v, expected 0 after decay", s.Pop())
	}
	if s.Scale() != 1 {
		t.Errorf("Scale() = %v, expected 1", s.Scale())
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	var s Score
	s.Update(500)
	s.Update(100)
	if s.Value() != 50 {
		t.Errorf("Value() = %d, expected 50", s.Value())
	}
}

func TestScoreReset(t *testing.T) {
	var s Score
	s.Update(5000)
	s.Reset()
	if s.Value() != 0 || s.Shown() != 0 || s.Pop() != 0 {
		t.Errorf("Reset left %+v", s)
	}
}

func TestParallaxWrap(t *testing.T) {
	p := NewParallax(1280)
	s := Stage{Scroll: 10, Far: 5, Near: 8}

	p.Advance(s)
	if p.Far != -5 || p.Near != -8 || p.Floor != -10 {
		t.Fatalf("after one tick: far %v near %v floor %v", p.Far, p.Near, p.Floor)
	}

	for i := 1; i < 128; i++ {
		p.Advance(s)
	}
	// 128 * 10 = 1280 wraps the floor layer back to 0
	if p.Floor != 0 {
		t.Errorf("floor = %v, expected 0 after a full wrap", p.Floor)
	}
	if p.Near != -1024 {
		t.Errorf("near = %v, expected -1024", p.Near)
	}

	for i := 0; i < 1000; i++ {
		p.Advance(Stage{Scroll: 18, Far: 9, Near: 14.4})
		for _, x := range []float64{p.Far, p.Near, p.Floor} {
			if x > 0 || x <= -1280 {
				t.Fatalf("offset %v outside (-1280, 0]", x)
			}
		}
	}

	p.Reset()
	if p.Far != 0 || p.Near != 0 || p.Floor != 0 {
		t.Error("Reset should zero every layer")
	}
}
