package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Viewport: ViewportConfig{
			Width:       1280,
			Height:      720,
			DeathMargin: 100,
		},
		Tiles: TilesConfig{
			Width:  128,
			Height: 64,
		},
		Ground: GroundConfig{
			Segments:       4,
			MinTiles:       3,
			MaxTiles:       6,
			GapTiles:       1,
			StartX:         0,
			MinY:           420,
			MaxY:           620,
			MaxHeightStep:  96,
			MinHeightDelta: 32,
			ResampleLimit:  8,
		},
		Physics: PhysicsConfig{
			Gravity:     0.8,
			JumpImpulse: -16,
		},
		Player: PlayerConfig{
			X:      225,
			Width:  50,
			Height: 50,
		},
		Stages: []StageConfig{
			{From: 0, Scroll: 10, Far: 5, Near: 8, Tier: 0},
			{From: 3000, Scroll: 11, Far: 5.5, Near: 8.8, Tier: 0},
			{From: 6000, Scroll: 12, Far: 6, Near: 9.6, Tier: 1},
			{From: 10000, Scroll: 13.5, Far: 6.75, Near: 10.8, Tier: 1},
			{From: 20000, Scroll: 15, Far: 7.5, Near: 12, Tier: 1},
			{From: 30000, Scroll: 16.5, Far: 8.25, Near: 13.2, Tier: 2},
			{From: 40000, Scroll: 18, Far: 9, Near: 14.4, Tier: 2},
		},
		Animation: []AnimTierConfig{
			{RunFrame: 80 * time.Millisecond, JumpFrame: 160 * time.Millisecond},
			{RunFrame: 60 * time.Millisecond, JumpFrame: 130 * time.Millisecond},
			{RunFrame: 40 * time.Millisecond, JumpFrame: 100 * time.Millisecond},
		},
		Difficulty: DifficultyConfig{
			Enabled:    true,
			StartStage: 0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
