// Package config provides YAML-based game configuration loading and
// difficulty management for the runner.
package config

// RunnerConfig contains all tunables of the runner simulation.
// Distances are world units (pixels of the reference 960x540 scene),
// times are seconds and speeds are units per second.
type RunnerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Speed      SpeedConfig      `yaml:"speed"`
	Score      ScoreConfig      `yaml:"score"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Platforms  PlatformConfig   `yaml:"platforms"`
	CullMargin float64          `yaml:"cull_margin"`
	Hitboxes   HitboxConfig     `yaml:"hitboxes"`
	Effects    EffectsConfig    `yaml:"effects"`
	Clock      ClockConfig      `yaml:"clock"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the scene dimensions.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // Ground line distance from the bottom edge
}

// GroundY returns the y-coordinate of the ground line.
func (w WorldConfig) GroundY() float64 {
	return w.Height - w.GroundOffset
}

// PhysicsConfig defines vertical motion and the jump input windows.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity"` // Negative = up
	CoyoteTime   float64 `yaml:"coyote_time"`
	JumpBuffer   float64 `yaml:"jump_buffer"`
}

// PlayerConfig defines the player sprite box and run animation.
type PlayerConfig struct {
	X             float64 `yaml:"x"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	FrameDuration float64 `yaml:"frame_duration"`
	LandBandMin   float64 `yaml:"land_band_min"` // Fraction of width; feet band used for platform landing
	LandBandMax   float64 `yaml:"land_band_max"`
}

// SpeedConfig defines the scroll speed ramp.
type SpeedConfig struct {
	Base float64 `yaml:"base"`
	Ramp float64 `yaml:"ramp"` // Added per elapsed second
	Max  float64 `yaml:"max"`
}

// ScoreConfig defines how score accrues.
type ScoreConfig struct {
	Rate float64 `yaml:"rate"` // Points per second
}

// EnemyConfig defines ground enemy spawning.
type EnemyConfig struct {
	Height      float64 `yaml:"height"`
	Sink        float64 `yaml:"sink"` // How far enemies sit below the ground line
	SpawnOffset float64 `yaml:"spawn_offset"`
	FirstDelay  float64 `yaml:"first_delay"`
	IntervalMin float64 `yaml:"interval_min"`
	IntervalMax float64 `yaml:"interval_max"`
}

// PlatformConfig defines floating platform spawning.
type PlatformConfig struct {
	Widths      []float64 `yaml:"widths"`
	Height      float64   `yaml:"height"`
	RiseMin     float64   `yaml:"rise_min"` // Top surface height above ground, lower bound
	RiseMax     float64   `yaml:"rise_max"`
	SpawnOffset float64   `yaml:"spawn_offset"`
	FirstDelay  float64   `yaml:"first_delay"`
	IntervalMin float64   `yaml:"interval_min"`
	IntervalMax float64   `yaml:"interval_max"`
}

// Hitbox is a shrunk collision box expressed as fractions of the sprite box.
type Hitbox struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// HitboxConfig holds the forgiving hitboxes of player and enemies.
type HitboxConfig struct {
	Player Hitbox `yaml:"player"`
	Enemy  Hitbox `yaml:"enemy"`
}

// EffectsConfig defines the screen shake impulse.
type EffectsConfig struct {
	ShakeImpulse float64 `yaml:"shake_impulse"`
	ShakeDecay   float64 `yaml:"shake_decay"` // Multiplier applied every tick
}

// ClockConfig bounds the frame delta fed by the platform clock.
type ClockConfig struct {
	MaxDt float64 `yaml:"max_dt"`
}

// DifficultyConfig selects how fast the scroll speed ramps.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// RampForPreset returns the speed ramp (units/s per elapsed second) of a preset.
func RampForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 4
	case DifficultyHard:
		return 9
	case DifficultyFixed:
		return 0
	default:
		return 6
	}
}
