package config

import "math"

// DifficultyManager turns elapsed session time into the spawn multiplier.
// It satisfies sim.Difficulty.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Progress returns the session time that time-scaled stats are computed
// from: the elapsed time plus the head start, or zero when progression is
// off.
func (d *DifficultyManager) Progress(gameTime float64) float64 {
	if !d.IsEnabled() {
		return 0
	}
	return math.Max(0, gameTime+d.cfg.HeadStart)
}

// Multiplier returns 1 + progress/ramp, or 1 when progression is off or
// the game has no ramp.
func (d *DifficultyManager) Multiplier(gameTime float64) float64 {
	if !d.IsEnabled() || d.cfg.Ramp <= 0 {
		return 1
	}
	return 1 + d.Progress(gameTime)/d.cfg.Ramp
}

// Scale multiplies a base value by the current multiplier.
func (d *DifficultyManager) Scale(base, gameTime float64) float64 {
	return base * d.Multiplier(gameTime)
}
