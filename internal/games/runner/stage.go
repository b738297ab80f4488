package runner

import (
	"math"
	"sort"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// Tier is an animation tempo band.
type Tier int

// Stage holds the speeds of one difficulty band.
type Stage struct {
	Index  int
	Scroll float64 // ground scroll per tick
	Far    float64 // far parallax layer per tick
	Near   float64 // near parallax layer per tick
	Tier   Tier
}

// StageTable maps accumulated distance to a stage.
// The table is immutable after construction.
type StageTable struct {
	thresholds []float64
	stages     []Stage
}

// NewStageTable builds a table from validated stage configs.
// The From of stages 1..n-1 become the ascending thresholds.
func NewStageTable(cfgs []config.StageConfig) StageTable {
	t := StageTable{
		thresholds: make([]float64, 0, len(cfgs)),
		stages:     make([]Stage, len(cfgs)),
	}
	for i, c := range cfgs {
		if i > 0 {
			t.thresholds = append(t.thresholds, c.From)
		}
		t.stages[i] = Stage{
			Index:  i,
			Scroll: c.Scroll,
			Far:    c.Far,
			Near:   c.Near,
			Tier:   Tier(c.Tier),
		}
	}
	return t
}

// Index returns the number of thresholds the distance has met or exceeded.
// NaN and negative distances map to stage 0.
func (t StageTable) Index(distance float64) int {
	if math.IsNaN(distance) {
		return 0
	}
	// First threshold strictly above distance
	n := sort.Search(len(t.thresholds), func(i int) bool {
		return t.thresholds[i] > distance
	})
	if n > len(t.stages)-1 {
		n = len(t.stages) - 1
	}
	return n
}

// Lookup returns the stage for a distance.
func (t StageTable) Lookup(distance float64) Stage {
	return t.stages[t.Index(distance)]
}

// At returns stage i, clamped to the table.
func (t StageTable) At(i int) Stage {
	if i < 0 {
		i = 0
	}
	if i >= len(t.stages) {
		i = len(t.stages) - 1
	}
	return t.stages[i]
}

// Len returns the number of stages.
func (t StageTable) Len() int {
	return len(t.stages)
}

// Thresholds returns a copy of the stage boundaries.
func (t StageTable) Thresholds() []float64 {
	out := make([]float64, len(t.thresholds))
	copy(out, t.thresholds)
	return out
}
