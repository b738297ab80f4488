// Package config provides YAML-based runner configuration loading,
// validation and difficulty presets.
package config

import "time"

// RunnerConfig contains all configuration for the endless runner.
type RunnerConfig struct {
	Viewport   ViewportConfig   `yaml:"viewport"`
	Tiles      TilesConfig      `yaml:"tiles"`
	Ground     GroundConfig     `yaml:"ground"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Stages     []StageConfig    `yaml:"stages"`
	Animation  []AnimTierConfig `yaml:"animation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ViewportConfig defines the world viewport in pixels.
type ViewportConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`       // Also the world floor for tile pillars
	DeathMargin float64 `yaml:"death_margin"` // Fall distance below the viewport that ends a run
}

// TilesConfig defines the size of one ground tile.
type TilesConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GroundConfig defines segment generation and recycling parameters.
type GroundConfig struct {
	Segments       int     `yaml:"segments"`
	MinTiles       int     `yaml:"min_tiles"`
	MaxTiles       int     `yaml:"max_tiles"`
	GapTiles       int     `yaml:"gap_tiles"`
	StartX         float64 `yaml:"start_x"`
	MinY           float64 `yaml:"min_y"`
	MaxY           float64 `yaml:"max_y"`
	MaxHeightStep  float64 `yaml:"max_height_step"`
	MinHeightDelta float64 `yaml:"min_height_delta"` // Recycled heights differ from the reference by at least this
	ResampleLimit  int     `yaml:"resample_limit"`   // Draws before falling back to a forced step
}

// PhysicsConfig defines vertical kinematics.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"` // Negative: y grows downward
}

// PlayerConfig defines the player's fixed x and box size.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// StageConfig defines one difficulty stage.
type StageConfig struct {
	From   float64 `yaml:"from"`   // Distance at which the stage starts
	Scroll float64 `yaml:"scroll"` // Ground scroll speed per tick
	Far    float64 `yaml:"far"`    // Far parallax layer speed
	Near   float64 `yaml:"near"`   // Near parallax layer speed
	Tier   int     `yaml:"tier"`   // Animation tempo tier
}

// AnimTierConfig defines frame durations for one animation tier.
type AnimTierConfig struct {
	RunFrame  time.Duration `yaml:"run_frame"`
	JumpFrame time.Duration `yaml:"jump_frame"`
}

// DifficultyConfig defines the stage progression.
type DifficultyConfig struct {
	Enabled    bool `yaml:"enabled"`     // false pins the run to StartStage
	StartStage int  `yaml:"start_stage"` // Stage the run begins in
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset.
// Unknown names fall back to normal.
func ParsePreset(name string) DifficultyPreset {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name)
	default:
		return DifficultyNormal
	}
}

// StartStageForPreset returns the stage a preset starts in.
func StartStageForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 1
	case DifficultyHard:
		return 3
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// StageThresholds returns the start distances of stages 1 and up.
func (c RunnerConfig) StageThresholds() []float64 {
	if len(c.Stages) < 2 {
		return nil
	}
	out := make([]float64, 0, len(c.Stages)-1)
	for _, s := range c.Stages[1:] {
		out = append(out, s.From)
	}
	return out
}
