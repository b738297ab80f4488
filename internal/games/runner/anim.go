package runner

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
)

const (
	RunFrames  = 6 // looping
	JumpFrames = 4 // holds on the last frame

	// TickDelta is the simulated time per tick.
	TickDelta = time.Second / 60
)

// FrameTimes holds the frame durations of one tempo tier.
type FrameTimes struct {
	Run  time.Duration
	Jump time.Duration
}

// TierTable maps an animation tier to its frame durations.
type TierTable [config.AnimTierCount]FrameTimes

// NewTierTable builds the lookup from validated animation config.
func NewTierTable(cfgs []config.AnimTierConfig) TierTable {
	var t TierTable
	for i := range t {
		if i < len(cfgs) {
			t[i] = FrameTimes{Run: cfgs[i].RunFrame, Jump: cfgs[i].JumpFrame}
		}
	}
	return t
}

// Lookup returns the frame durations for tier, clamped to the table.
func (t TierTable) Lookup(tier Tier) FrameTimes {
	i := int(tier)
	if i < 0 {
		i = 0
	}
	if i >= len(t) {
		i = len(t) - 1
	}
	return t[i]
}

// Animator advances the run or jump frame once per tick.
type Animator struct {
	table   TierTable
	frame   int
	timer   time.Duration
	jumping bool
}

// NewAnimator creates an animator on the first run frame.
func NewAnimator(table TierTable) Animator {
	return Animator{table: table}
}

// Reset returns to the first run frame.
func (a *Animator) Reset() {
	a.frame = 0
	a.timer = 0
	a.jumping = false
}

// Update advances one tick. Switching between run and jump restarts the
// sequence.
func (a *Animator) Update(airborne bool, tier Tier) {
	if airborne != a.jumping {
		a.jumping = airborne
		a.frame = 0
		a.timer = 0
	}

	times := a.table.Lookup(tier)
	a.timer += TickDelta

	if a.jumping {
		if a.timer >= times.Jump {
			a.timer = 0
			if a.frame < JumpFrames-1 {
				a.frame++
			}
		}
		return
	}

	if a.timer >= times.Run {
		a.timer = 0
		a.frame = (a.frame + 1) % RunFrames
	}
}

// Frame returns the current frame index within the active sequence.
func (a Animator) Frame() int {
	return a.frame
}

// Jumping reports whether the jump sequence is active.
func (a Animator) Jumping() bool {
	return a.jumping
}
