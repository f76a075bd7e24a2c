package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// shrink applies a fractional hitbox to a sprite box.
func shrink(b core.Box, h config.Hitbox) core.Box {
	return b.Shrink(h.X, h.Y, h.W, h.H)
}

// PlayerHitbox returns the forgiving collision box of the player.
func PlayerHitbox(p Player, hb config.HitboxConfig) core.Box {
	return shrink(p.Box(), hb.Player)
}

// EnemyHitbox returns the forgiving collision box of an enemy.
func EnemyHitbox(e Enemy, hb config.HitboxConfig) core.Box {
	return shrink(e.Box(), hb.Enemy)
}

// CheckCollision tests the player hitbox against every enemy hitbox.
func CheckCollision(p Player, enemies []Enemy, hb config.HitboxConfig) bool {
	ph := PlayerHitbox(p, hb)
	for _, e := range enemies {
		if ph.Intersects(EnemyHitbox(e, hb)) {
			return true
		}
	}
	return false
}
