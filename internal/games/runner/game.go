// Package runner implements the side-scrolling runner simulation.
// The player auto-runs, jumps over ground enemies and lands on floating
// platforms; the first enemy contact ends the session.
//
// The package is deterministic for a given config, sprite set, seed and
// sequence of (dt, input) pairs. It never blocks and never logs.
package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Sprites is the asset lookup the simulation and renderer need.
// *assets.Catalog implements it.
type Sprites interface {
	RunFrames() int
	EnemyVariants() int
	EnemySize(variant int) (w, h float64)
	Glyph(id string) []string
}

// Game owns one runner session.
type Game struct {
	cfg     config.RunnerConfig
	sprites Sprites
	seed    int64
	runs    int // Number of resets; mixed into the spawn seed

	state   State
	player  Player
	spawner *Spawner
	ramp    *config.SpeedRamp
	stats   Stats
	paused  bool

	fx *rand.Rand // Render-only randomness (shake jitter)
}

// New creates a game in the pre-start state. Call Reset to begin the first
// run once assets are available.
func New(cfg config.RunnerConfig, sprites Sprites, seed int64) *Game {
	g := &Game{
		cfg:     cfg,
		sprites: sprites,
		seed:    seed,
		fx:      rand.New(rand.NewSource(seed ^ 0x5eed)),
	}
	g.ramp = config.NewSpeedRamp(g.cfg.Speed)
	g.spawner = NewSpawner(seed, &g.cfg, sprites)

	resetPlayer(&g.player, &g.cfg)
	g.player.Anim = AnimIdle
	g.state.ScrollSpeed = g.cfg.Speed.Base
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Reset reinitializes every mutable field and starts a new run.
func (g *Game) Reset() {
	g.state = State{
		Running:     true,
		ScrollSpeed: g.cfg.Speed.Base,
	}
	resetPlayer(&g.player, &g.cfg)
	g.spawner.Reset(g.seed + int64(g.runs))
	g.runs++
	g.stats = Stats{MaxSpeed: g.cfg.Speed.Base}
	g.paused = false
}

// Step consumes the queued actions in order, then advances one tick.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	var events []core.GameEvent

	for _, a := range in.Actions {
		switch a {
		case core.ActionJump:
			if g.state.Running && !g.paused {
				g.player.requestJump(g.cfg.Physics.JumpBuffer)
			}
		case core.ActionRestart:
			if g.state.Over {
				g.Reset()
				events = append(events, core.EventRestarted)
			}
		case core.ActionPause:
			if g.state.Running && !g.state.Over {
				g.paused = !g.paused
			}
		}
	}

	if !g.paused {
		events = append(events, g.Tick(dt)...)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// Tick advances the simulation by dt seconds without reading input.
// Gameplay only moves while running and not over; shake always decays.
func (g *Game) Tick(dt float64) []core.GameEvent {
	var events []core.GameEvent

	if g.state.Running && !g.state.Over {
		g.state.Elapsed += dt
		g.state.Score += dt * g.cfg.Score.Rate
		g.state.ScrollSpeed = g.ramp.Speed(g.state.Elapsed)

		g.stats.Ticks++
		g.stats.MaxSpeed = math.Max(g.stats.MaxSpeed, g.state.ScrollSpeed)

		if g.player.update(dt, &g.cfg, g.spawner.Platforms(), g.sprites.RunFrames()) {
			g.stats.Jumps++
			events = append(events, core.EventJumped)
		}

		g.spawner.Update(dt, g.state.ScrollSpeed)

		if CheckCollision(g.player, g.spawner.Enemies(), g.cfg.Hitboxes) {
			g.state.Over = true
			g.state.Shake = g.cfg.Effects.ShakeImpulse
			events = append(events, core.EventCrashed)
		}
	}

	g.state.Shake *= g.cfg.Effects.ShakeDecay
	return events
}

// State returns the platform-facing summary with the score floored.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(math.Floor(g.state.Score)),
		GameOver: g.state.Over,
		Paused:   g.paused,
	}
}

// Snapshot returns a copy of the world for rendering and inspection.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:     g.state,
		Player:    g.player,
		Enemies:   append([]Enemy(nil), g.spawner.Enemies()...),
		Platforms: append([]Platform(nil), g.spawner.Platforms()...),
		Stats:     g.stats,
		GroundY:   g.cfg.World.GroundY(),
	}
}

// Stats returns the counters of the current run.
func (g *Game) Stats() Stats {
	return g.stats
}

// Config returns the config the game was built with.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// Seed returns the base seed of the session.
func (g *Game) Seed() int64 {
	return g.seed
}
