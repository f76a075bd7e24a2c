package config

import "fmt"

// ValidationError describes a config value that cannot drive the simulation.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks that every value is usable by the simulation.
func (c RunnerConfig) Validate() error {
	checks := []struct {
		ok      bool
		field   string
		message string
	}{
		{c.World.Width > 0 && c.World.Height > 0, "world", "width and height must be positive"},
		{c.World.GroundOffset >= 0 && c.World.GroundOffset < c.World.Height, "world.ground_offset", "must be inside the world"},
		{c.Physics.Gravity > 0, "physics.gravity", "must be positive"},
		{c.Physics.JumpVelocity < 0, "physics.jump_velocity", "must be negative (up)"},
		{c.Physics.CoyoteTime >= 0 && c.Physics.JumpBuffer >= 0, "physics", "input windows must not be negative"},
		{c.Player.Width > 0 && c.Player.Height > 0, "player", "width and height must be positive"},
		{c.Player.FrameDuration > 0, "player.frame_duration", "must be positive"},
		{c.Player.LandBandMin < c.Player.LandBandMax, "player.land_band", "min must be below max"},
		{c.Speed.Base > 0 && c.Speed.Max >= c.Speed.Base, "speed", "need 0 < base <= max"},
		{c.Speed.Ramp >= 0, "speed.ramp", "must not be negative"},
		{c.Score.Rate >= 0, "score.rate", "must not be negative"},
		{c.Enemies.Height > 0, "enemies.height", "must be positive"},
		{c.Enemies.IntervalMin > 0 && c.Enemies.IntervalMax >= c.Enemies.IntervalMin, "enemies.interval", "need 0 < min <= max"},
		{len(c.Platforms.Widths) > 0, "platforms.widths", "must not be empty"},
		{c.Platforms.Height > 0, "platforms.height", "must be positive"},
		{c.Platforms.RiseMin >= 0, "platforms.rise_min", "must not be negative"},
		{c.Platforms.RiseMax >= c.Platforms.RiseMin, "platforms.rise", "min must not exceed max"},
		{c.Platforms.IntervalMin > 0 && c.Platforms.IntervalMax >= c.Platforms.IntervalMin, "platforms.interval", "need 0 < min <= max"},
		{validHitbox(c.Hitboxes.Player), "hitboxes.player", "fractions must be in (0, 1]"},
		{validHitbox(c.Hitboxes.Enemy), "hitboxes.enemy", "fractions must be in (0, 1]"},
		{c.Effects.ShakeDecay >= 0 && c.Effects.ShakeDecay < 1, "effects.shake_decay", "must be in [0, 1)"},
		{c.Clock.MaxDt > 0, "clock.max_dt", "must be positive"},
		{c.Difficulty.Preset == "" || ParsePreset(string(c.Difficulty.Preset)) != "", "difficulty.preset", "must be easy, normal, hard or fixed"},
	}

	for _, chk := range checks {
		if !chk.ok {
			return ValidationError{Field: chk.field, Message: chk.message}
		}
	}

	for _, w := range c.Platforms.Widths {
		if w <= 0 {
			return ValidationError{Field: "platforms.widths", Message: fmt.Sprintf("width %g must be positive", w)}
		}
	}
	return nil
}

func validHitbox(h Hitbox) bool {
	return h.X >= 0 && h.Y >= 0 && h.W > 0 && h.H > 0 && h.X+h.W <= 1 && h.Y+h.H <= 1
}
