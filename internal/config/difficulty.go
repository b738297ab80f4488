package config

import "math"

// DifficultyManager maps travelled distance to the distance used for
// stage lookup, applying the start stage and the progression switch.
type DifficultyManager struct {
	cfg    DifficultyConfig
	starts []float64 // start distance of every stage
}

// NewDifficultyManager creates a new difficulty manager for the given stages.
func NewDifficultyManager(cfg DifficultyConfig, stages []StageConfig) *DifficultyManager {
	starts := make([]float64, len(stages))
	for i, s := range stages {
		starts[i] = s.From
	}
	d := &DifficultyManager{cfg: cfg, starts: starts}
	d.SetStartStage(cfg.StartStage)
	return d
}

// SetStartStage overrides the stage a run begins in.
func (d *DifficultyManager) SetStartStage(stage int) {
	if len(d.starts) == 0 {
		d.cfg.StartStage = 0
		return
	}
	d.cfg.StartStage = int(clampF(float64(stage), 0, float64(len(d.starts)-1)))
}

// StartStage returns the stage a run begins in.
func (d *DifficultyManager) StartStage() int {
	return d.cfg.StartStage
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Distance returns the distance to feed into the stage table.
// With progression disabled the run stays at the start stage.
func (d *DifficultyManager) Distance(travelled float64) float64 {
	var offset float64
	if len(d.starts) > 0 {
		offset = d.starts[d.cfg.StartStage]
	}
	if !d.cfg.Enabled {
		return offset
	}
	return offset + math.Max(travelled, 0)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
