package config

import "github.com/vovakirdan/tui-runner/internal/core"

// SpeedRamp calculates the scroll speed from elapsed run time.
type SpeedRamp struct {
	base float64
	ramp float64
	max  float64
}

// NewSpeedRamp creates a speed ramp from the speed section.
func NewSpeedRamp(cfg SpeedConfig) *SpeedRamp {
	return &SpeedRamp{
		base: cfg.Base,
		ramp: cfg.Ramp,
		max:  cfg.Max,
	}
}

// IsEnabled returns whether the speed actually increases over time.
func (s *SpeedRamp) IsEnabled() bool {
	return s.ramp > 0 && s.max > s.base
}

// Speed returns base + elapsed*ramp clamped to [base, max].
// Non-decreasing in elapsed as long as ramp >= 0.
func (s *SpeedRamp) Speed(elapsed float64) float64 {
	return core.ClampF(s.base+elapsed*s.ramp, s.base, s.max)
}
