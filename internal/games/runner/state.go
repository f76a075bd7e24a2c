package runner

import (
	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Anim is the player animation variant.
type Anim int

const (
	AnimIdle Anim = iota
	AnimRun
	AnimJump
	AnimFall
)

func (a Anim) String() string {
	switch a {
	case AnimRun:
		return "run"
	case AnimJump:
		return "jump"
	case AnimFall:
		return "fall"
	default:
		return "idle"
	}
}

// State is the per-session aggregate the tick mutates.
type State struct {
	Running     bool
	Over        bool
	Score       float64 // Non-decreasing while running
	Elapsed     float64 // Seconds of gameplay
	ScrollSpeed float64 // World units per second
	Shake       float64 // Screen shake magnitude, decays toward 0
}

// Player is the only physics body in the world.
type Player struct {
	X, Y       float64
	VY         float64
	W, H       float64
	Anim       Anim
	Frame      int     // Run cycle frame index
	FrameTimer float64 // Time spent on the current run frame
	OnGround   bool
	Coyote     float64 // Grace window after leaving solid ground
	JumpBuffer float64 // Grace window after a jump request
}

// Box returns the full sprite box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// SpriteID returns the asset identifier for the current pose.
func (p Player) SpriteID() string {
	switch p.Anim {
	case AnimRun:
		return assets.RunID(p.Frame)
	case AnimJump:
		return assets.IDJump
	case AnimFall:
		return assets.IDFall
	default:
		return assets.IDIdle
	}
}

// Enemy is a ground obstacle. Touching it ends the session.
type Enemy struct {
	X, Y    float64
	W, H    float64
	Variant int // Enemy asset variant (0-based)
}

// Box returns the full sprite box.
func (e Enemy) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.W, e.H)
}

// SpriteID returns the asset identifier of the enemy look.
func (e Enemy) SpriteID() string {
	return assets.EnemyID(e.Variant)
}

// Platform is a floating one-way surface the player can land on.
type Platform struct {
	X, Y float64
	W, H float64
}

// Box returns the platform box.
func (p Platform) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Stats are per-run counters kept for the run history.
type Stats struct {
	Ticks    int
	Jumps    int
	MaxSpeed float64
}

// Snapshot is a read-only copy of everything a renderer needs.
// Slices are copies; mutating them does not affect the game.
type Snapshot struct {
	State     State
	Player    Player
	Enemies   []Enemy
	Platforms []Platform
	Stats     Stats
	GroundY   float64
}
