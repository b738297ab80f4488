package runner

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func defaultAnimator() Animator {
	return NewAnimator(NewTierTable(config.DefaultRunnerConfig().Animation))
}

func TestTierTableLookup(t *testing.T) {
	table := NewTierTable(config.DefaultRunnerConfig().Animation)

	tests := []struct {
		tier     Tier
		expected FrameTimes
	}{
		{0, FrameTimes{Run: 80 * time.Millisecond, Jump: 160 * time.Millisecond}},
		{1, FrameTimes{Run: 60 * time.Millisecond, Jump: 130 * time.Millisecond}},
		{2, FrameTimes{Run: 40 * time.Millisecond, Jump: 100 * time.Millisecond}},
		{-1, FrameTimes{Run: 80 * time.Millisecond, Jump: 160 * time.Millisecond}},
		{9, FrameTimes{Run: 40 * time.Millisecond, Jump: 100 * time.Millisecond}},
	}
	for _, tc := range tests {
		if got := table.Lookup(tc.tier); got != tc.expected {
			t.Errorf("Lookup(%d) = %+v, expected %+v", tc.tier, got, tc.expected)
		}
	}
}

func TestAnimatorRunLoop(t *testing.T) {
	a := defaultAnimator()

	// 80ms frames at 60 ticks/s advance every 5 ticks
	for tick := 1; tick <= 4; tick++ {
		a.Update(false, 0)
	}
	if a.Frame() != 0 {
		t.Fatalf("frame = %d after 4 ticks, expected 0", a.Frame())
	}
	a.Update(false, 0)
	if a.Frame() != 1 {
		t.Fatalf("frame = %d after 5 ticks, expected 1", a.Frame())
	}

	for i := 0; i < 5*(RunFrames-1); i++ {
		a.Update(false, 0)
	}
	if a.Frame() != 0 {
		t.Errorf("run loop should wrap to 0, got %d", a.Frame())
	}
}

func TestAnimatorFasterTier(t *testing.T) {
	slow, fast := defaultAnimator(), defaultAnimator()
	for i := 0; i < 60; i++ {
		slow.Update(false, 0)
		fast.Update(false, 2)
	}
	// 60 ticks: 12 advances at tier 0, 20 at tier 2
	if slow.Frame() != 12%RunFrames {
		t.Errorf("tier 0 frame = %d, expected %d", slow.Frame(), 12%RunFrames)
	}
	if fast.Frame() != 20%RunFrames {
		t.Errorf("tier 2 frame = %d, expected %d", fast.Frame(), 20%RunFrames)
	}
}

func TestAnimatorJumpHoldsLastFrame(t *testing.T) {
	a := defaultAnimator()
	a.Update(false, 0)
	a.Update(false, 0)

	a.Update(true, 0)
	if !a.Jumping() || a.Frame() != 0 {
		t.Fatalf("switching to jump should restart at frame 0, got jumping=%v frame=%d", a.Jumping(), a.Frame())
	}

	for i := 0; i < 200; i++ {
		a.Update(true, 0)
	}
	if a.Frame() != JumpFrames-1 {
		t.Errorf("jump frame = %d, expected to hold at %d", a.Frame(), JumpFrames-1)
	}

	a.Update(false, 0)
	if a.Jumping() || a.Frame() != 0 {
		t.Errorf("landing should restart the run loop, got jumping=%v frame=%d", a.Jumping(), a.Frame())
	}
}

func TestAnimatorReset(t *testing.T) {
	a := defaultAnimator()
	for i := 0; i < 30; i++ {
		a.Update(true, 1)
	}
	a.Reset()
	if a.Frame() != 0 || a.Jumping() {
		t.Errorf("Reset left frame=%d jumping=%v", a.Frame(), a.Jumping())
	}
}
