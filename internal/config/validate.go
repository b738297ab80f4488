package config

import (
	"errors"
	"fmt"
)

const (
	// StageCount is the number of difficulty stages; six thresholds separate them.
	StageCount = 7
	// AnimTierCount is the number of animation tempo tiers.
	AnimTierCount = 3
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate reports the first inconsistency in the configuration.
func (c RunnerConfig) Validate() error {
	v, t, g := c.Viewport, c.Tiles, c.Ground

	if v.Width <= 0 || v.Height <= 0 {
		return invalid("viewport %vx%v must be positive", v.Width, v.Height)
	}
	if v.DeathMargin < 0 {
		return invalid("death_margin %v must not be negative", v.DeathMargin)
	}
	if t.Width <= 0 || t.Height <= 0 {
		return invalid("tile size %vx%v must be positive", t.Width, t.Height)
	}

	if g.Segments < 1 {
		return invalid("segments %d must be at least 1", g.Segments)
	}
	if g.MinTiles < 1 || g.MinTiles > g.MaxTiles {
		return invalid("tile range [%d, %d] is empty", g.MinTiles, g.MaxTiles)
	}
	if g.GapTiles < 0 {
		return invalid("gap_tiles %d must not be negative", g.GapTiles)
	}
	if g.MinY > g.MaxY {
		return invalid("height range [%v, %v] is empty", g.MinY, g.MaxY)
	}
	if g.MaxHeightStep <= 0 {
		return invalid("max_height_step %v must be positive", g.MaxHeightStep)
	}
	if g.MinHeightDelta < 0 || g.MinHeightDelta > g.MaxHeightStep {
		return invalid("min_height_delta %v must be within [0, max_height_step]", g.MinHeightDelta)
	}
	if g.ResampleLimit < 1 {
		return invalid("resample_limit %d must be at least 1", g.ResampleLimit)
	}

	if c.Physics.Gravity <= 0 {
		return invalid("gravity %v must be positive", c.Physics.Gravity)
	}
	if c.Physics.JumpImpulse >= 0 {
		return invalid("jump_impulse %v must be negative", c.Physics.JumpImpulse)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return invalid("player size %vx%v must be positive", c.Player.Width, c.Player.Height)
	}

	if len(c.Animation) != AnimTierCount {
		return invalid("animation has %d tiers, expected %d", len(c.Animation), AnimTierCount)
	}
	for i, a := range c.Animation {
		if a.RunFrame <= 0 || a.JumpFrame <= 0 {
			return invalid("animation tier %d has a non-positive frame duration", i)
		}
	}

	if err := c.validateStages(); err != nil {
		return err
	}

	if c.Difficulty.StartStage < 0 || c.Difficulty.StartStage >= len(c.Stages) {
		return invalid("start_stage %d out of range", c.Difficulty.StartStage)
	}
	return nil
}

func (c RunnerConfig) validateStages() error {
	if len(c.Stages) != StageCount {
		return invalid("%d stages configured, expected %d", len(c.Stages), StageCount)
	}
	if c.Stages[0].From != 0 {
		return invalid("stage 0 must start at distance 0, got %v", c.Stages[0].From)
	}
	for i, s := range c.Stages {
		if s.Far >= s.Near {
			return invalid("stage %d far speed %v must be slower than near speed %v", i, s.Far, s.Near)
		}
		if s.Tier < 0 || s.Tier >= AnimTierCount {
			return invalid("stage %d tier %d out of range", i, s.Tier)
		}
		if i == 0 {
			continue
		}
		prev := c.Stages[i-1]
		if s.From <= prev.From {
			return invalid("stage %d threshold %v is not above %v", i, s.From, prev.From)
		}
		if s.Scroll < prev.Scroll || s.Far < prev.Far || s.Near < prev.Near {
			return invalid("stage %d speeds decrease", i)
		}
		if s.Tier < prev.Tier {
			return invalid("stage %d tier decreases", i)
		}
	}
	return nil
}
