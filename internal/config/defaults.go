package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded runner configuration.
// It mirrors defaults/runner.yaml and is used if the embedded file fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:        960,
			Height:       540,
			GroundOffset: 90,
		},
		Physics: PhysicsConfig{
			Gravity:      2400,
			JumpVelocity: -980,
			CoyoteTime:   0.12,
			JumpBuffer:   0.12,
		},
		Player: PlayerConfig{
			X:             140,
			Width:         80,
			Height:        120,
			FrameDuration: 0.09,
			LandBandMin:   0.4,
			LandBandMax:   0.6,
		},
		Speed: SpeedConfig{
			Base: 420,
			Ramp: 6,
			Max:  760,
		},
		Score: ScoreConfig{
			Rate: 10,
		},
		Enemies: EnemyConfig{
			Height:      100,
			Sink:        8,
			SpawnOffset: 40,
			FirstDelay:  1.2,
			IntervalMin: 1.1,
			IntervalMax: 1.8,
		},
		Platforms: PlatformConfig{
			Widths:      []float64{120, 160, 200},
			Height:      26,
			RiseMin:     120,
			RiseMax:     220,
			SpawnOffset: 40,
			FirstDelay:  2.4,
			IntervalMin: 2.4,
			IntervalMax: 3.4,
		},
		CullMargin: 50,
		Hitboxes: HitboxConfig{
			Player: Hitbox{X: 0.2, Y: 0.1, W: 0.6, H: 0.85},
			Enemy:  Hitbox{X: 0.15, Y: 0.15, W: 0.7, H: 0.7},
		},
		Effects: EffectsConfig{
			ShakeImpulse: 12,
			ShakeDecay:   0.9,
		},
		Clock: ClockConfig{
			MaxDt: 0.05,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRunnerYAML
}
