package runner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

const frame = 1.0 / 60.0

// stubSprites mirrors the builtin set sizes without any art.
type stubSprites struct{}

func (stubSprites) RunFrames() int     { return 7 }
func (stubSprites) EnemyVariants() int { return 3 }
func (stubSprites) EnemySize(v int) (float64, float64) {
	sizes := [][2]float64{{120, 100}, {70, 100}, {132, 96}}
	return sizes[v][0], sizes[v][1]
}
func (stubSprites) Glyph(string) []string { return nil }

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(config.DefaultRunnerConfig(), stubSprites{}, seed)
	g.Reset()
	return g
}

func jump() core.InputFrame {
	in := core.NewInputFrame()
	in.Push(core.ActionJump)
	return in
}

func action(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Push(a)
	return in
}

func countEvents(results []core.StepResult, e core.GameEvent) int {
	n := 0
	for _, r := range results {
		for _, x := range r.Events {
			if x == e {
				n++
			}
		}
	}
	return n
}

func TestNewIsNotRunning(t *testing.T) {
	g := New(config.DefaultRunnerConfig(), stubSprites{}, 1)

	res := g.Step(frame, jump())
	snap := g.Snapshot()

	assert.False(t, snap.State.Running)
	assert.Zero(t, snap.State.Elapsed, "no gameplay before Reset")
	assert.Zero(t, snap.Player.JumpBuffer, "jump input is ignored while not running")
	assert.Equal(t, AnimIdle, snap.Player.Anim)
	assert.Empty(t, res.Events)
}

func TestResetRestoresDefaults(t *testing.T) {
	g := newTestGame(t, 7)

	for i := 0; i < 600 && !g.Snapshot().State.Over; i++ {
		g.Step(frame, core.NewInputFrame())
	}
	require.True(t, g.Snapshot().State.Over, "an idle player should eventually crash")

	g.Reset()
	snap := g.Snapshot()

	assert.Zero(t, snap.State.Score)
	assert.Zero(t, snap.State.Elapsed)
	assert.Zero(t, snap.State.Shake)
	assert.False(t, snap.State.Over)
	assert.True(t, snap.State.Running)
	assert.Equal(t, 420.0, snap.State.ScrollSpeed)
	assert.Empty(t, snap.Enemies)
	assert.Empty(t, snap.Platforms)
	assert.True(t, snap.Player.OnGround)
	assert.Equal(t, snap.GroundY-snap.Player.H, snap.Player.Y)
	assert.Equal(t, Stats{MaxSpeed: 420}, snap.Stats)
}

func TestGroundedStaysGrounded(t *testing.T) {
	for _, dt := range []float64{0, 1.0 / 120, frame, 1.0 / 30, 0.05} {
		g := newTestGame(t, 3)
		for i := 0; i < 120; i++ {
			g.Step(dt, core.NewInputFrame())
			p := g.Snapshot().Player
			require.Truef(t, p.OnGround, "dt=%v tick %d: left the ground", dt, i)
			require.Zerof(t, p.VY, "dt=%v tick %d: vy should be zero", dt, i)
		}
	}
}

func TestJumpFromRest(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(frame, core.NewInputFrame())
	require.True(t, g.player.OnGround)
	require.Equal(t, 0.12, g.player.Coyote)

	res := g.Step(frame, jump())
	assert.True(t, res.Has(core.EventJumped))
	assert.Equal(t, -980.0, g.player.VY)
	assert.Zero(t, g.player.JumpBuffer)
	assert.Zero(t, g.player.Coyote)

	g.Step(frame, core.NewInputFrame())
	assert.False(t, g.player.OnGround)
	assert.Equal(t, AnimJump, g.player.Anim)
	assert.Less(t, g.player.VY, 0.0)
}

func TestJumpTriggersOncePerInput(t *testing.T) {
	g := newTestGame(t, 1)

	results := []core.StepResult{g.Step(frame, jump())}
	for i := 0; i < 60; i++ {
		results = append(results, g.Step(frame, core.NewInputFrame()))
	}

	assert.Equal(t, 1, countEvents(results, core.EventJumped))
	assert.Equal(t, 1, g.Stats().Jumps)
}

func TestCoyoteJump(t *testing.T) {
	g := newTestGame(t, 1)

	// Just walked off a ledge: airborne but inside the grace window.
	g.player.Y = 200
	g.player.OnGround = false
	g.player.Coyote = 0.05

	res := g.Step(frame, jump())
	assert.True(t, res.Has(core.EventJumped))
	assert.Equal(t, -980.0, g.player.VY)
}

func TestNoJumpAfterCoyoteExpired(t *testing.T) {
	g := newTestGame(t, 1)

	g.player.Y = 200
	g.player.OnGround = false
	g.player.Coyote = -0.01

	res := g.Step(frame, jump())
	assert.False(t, res.Has(core.EventJumped))
	assert.Greater(t, g.player.VY, 0.0)
}

func TestJumpBufferedBeforeLanding(t *testing.T) {
	g := newTestGame(t, 1)
	rest := g.cfg.World.GroundY() - g.player.H

	// Falling, a few units above the ground.
	g.player.Y = rest - 5
	g.player.VY = 300
	g.player.OnGround = false
	g.player.Coyote = -1

	res := g.Step(frame, jump())
	assert.True(t, res.Has(core.EventJumped), "buffered jump fires on landing")
	assert.Equal(t, -980.0, g.player.VY)
}

func TestJumpBufferExpires(t *testing.T) {
	g := newTestGame(t, 1)
	rest := g.cfg.World.GroundY() - g.player.H

	// Far above the ground; landing is well past the buffer window.
	g.player.Y = rest - 400
	g.player.VY = 0
	g.player.OnGround = false
	g.player.Coyote = -1

	results := []core.StepResult{g.Step(frame, jump())}
	for i := 0; i < 60; i++ {
		results = append(results, g.Step(frame, core.NewInputFrame()))
	}

	assert.Zero(t, countEvents(results, core.EventJumped))
	assert.True(t, g.player.OnGround)
}

func TestFreeFallIntegration(t *testing.T) {
	g := newTestGame(t, 1)
	g.player.Y = 0
	g.player.VY = 0
	g.player.OnGround = false

	for i := 0; i < 30; i++ {
		g.Tick(frame)
	}

	// Velocity first, then position.
	expected, vy := 0.0, 0.0
	for i := 0; i < 30; i++ {
		vy += 2400 * frame
		expected += vy * frame
	}

	assert.InDelta(t, 0.5*2400*0.5*0.5, g.player.Y, 12)
	assert.InDelta(t, expected, g.player.Y, 1e-9)
	assert.InDelta(t, 2400*0.5, g.player.VY, 1e-9)
	assert.Equal(t, AnimFall, g.player.Anim)
}

func TestScrollSpeedRamp(t *testing.T) {
	g := newTestGame(t, 11)
	g.player.Y = -1e6 // Out of reach of every enemy
	g.cfg.Physics.Gravity = 0

	prev := g.Snapshot().State.ScrollSpeed
	for i := 0; i < 4000; i++ {
		g.Tick(0.05)
		s := g.Snapshot().State.ScrollSpeed
		require.GreaterOrEqual(t, s, prev)
		require.GreaterOrEqual(t, s, 420.0)
		require.LessOrEqual(t, s, 760.0)
		prev = s
	}
	assert.Equal(t, 760.0, prev, "speed caps after long runs")
	assert.Equal(t, 760.0, g.Stats().MaxSpeed)
}

func TestScoreAccrues(t *testing.T) {
	g := newTestGame(t, 1)
	for i := 0; i < 30; i++ {
		g.Step(frame, core.NewInputFrame())
	}

	snap := g.Snapshot()
	assert.InDelta(t, 5.0, snap.State.Score, 1e-9)
	assert.InDelta(t, 0.5, snap.State.Elapsed, 1e-9)

	for i := 0; i < 3; i++ {
		g.Step(frame, core.NewInputFrame())
	}
	assert.Equal(t, 5, g.State().Score, "score is floored")
}

func placeEnemyOnPlayer(g *Game) {
	g.spawner.enemies = append(g.spawner.enemies, Enemy{
		X: g.player.X + 10, Y: g.cfg.World.GroundY() - 100 + 8, W: 100, H: 100,
	})
}

func TestCollisionEndsRun(t *testing.T) {
	g := newTestGame(t, 1)
	placeEnemyOnPlayer(g)

	res := g.Step(frame, core.NewInputFrame())

	assert.True(t, res.State.GameOver)
	assert.True(t, res.Has(core.EventCrashed))
	assert.InDelta(t, 12*0.9, g.Snapshot().State.Shake, 1e-9)
}

func TestCollisionIsIdempotent(t *testing.T) {
	g := newTestGame(t, 1)
	placeEnemyOnPlayer(g)
	g.Step(frame, core.NewInputFrame())

	frozen := g.Snapshot()
	var results []core.StepResult
	for i := 0; i < 30; i++ {
		results = append(results, g.Step(frame, jump()))
	}
	after := g.Snapshot()

	assert.True(t, after.State.Over)
	assert.Zero(t, countEvents(results, core.EventCrashed), "crash fires once")
	assert.Equal(t, frozen.State.Score, after.State.Score)
	assert.Equal(t, frozen.State.Elapsed, after.State.Elapsed)
	assert.Equal(t, frozen.Enemies, after.Enemies)
	assert.Equal(t, frozen.Player.Y, after.Player.Y)
	assert.Less(t, after.State.Shake, frozen.State.Shake, "shake keeps decaying")
}

func TestRestartOnlyWhenOver(t *testing.T) {
	g := newTestGame(t, 1)
	for i := 0; i < 10; i++ {
		g.Step(frame, core.NewInputFrame())
	}

	res := g.Step(frame, action(core.ActionRestart))
	assert.False(t, res.Has(core.EventRestarted))
	assert.InDelta(t, 11*frame, g.Snapshot().State.Elapsed, 1e-9)

	placeEnemyOnPlayer(g)
	g.Step(frame, core.NewInputFrame())
	require.True(t, g.Snapshot().State.Over)

	res = g.Step(frame, action(core.ActionRestart))
	assert.True(t, res.Has(core.EventRestarted))
	assert.False(t, res.State.GameOver)
	assert.InDelta(t, frame, g.Snapshot().State.Elapsed, 1e-9, "restart tick already advances the new run")
}

func TestPauseFreezesRun(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(frame, core.NewInputFrame())

	res := g.Step(frame, action(core.ActionPause))
	assert.True(t, res.State.Paused)
	before := g.Snapshot().State.Elapsed

	g.Step(frame, jump())
	assert.Equal(t, before, g.Snapshot().State.Elapsed)
	assert.Zero(t, g.player.JumpBuffer)

	g.Step(frame, action(core.ActionPause))
	assert.Greater(t, g.Snapshot().State.Elapsed, before)
}

func TestDeterministicReplay(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, 99)
		for i := 0; i < 900; i++ {
			in := core.NewInputFrame()
			if i%40 == 0 {
				in.Push(core.ActionJump)
			}
			if g.Snapshot().State.Over {
				in.Push(core.ActionRestart)
			}
			g.Step(frame, in)
		}
		return g.Snapshot()
	}

	assert.Equal(t, run(), run())
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(t, 1)
	placeEnemyOnPlayer(g)

	snap := g.Snapshot()
	snap.Enemies[0].X = -999

	assert.NotEqual(t, -999.0, g.Snapshot().Enemies[0].X)
}

func TestRenderHUDAndOverlay(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)

	for i := 0; i < 63; i++ {
		g.Step(frame, core.NewInputFrame())
	}
	g.Render(screen)
	assert.Contains(t, screen.Row(0), "Score: 10")
	assert.NotContains(t, screen.String(), "GAME OVER")

	placeEnemyOnPlayer(g)
	g.Step(frame, core.NewInputFrame())
	g.Render(screen)
	assert.Contains(t, screen.String(), "GAME OVER")
}

func TestRenderDrawsGroundAndPlayer(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(96, 27)
	g.Render(screen)

	// Ground at 450/540 of the height.
	groundRow := int(g.cfg.World.GroundY() * float64(screen.Height()) / g.cfg.World.Height)
	assert.True(t, strings.HasPrefix(screen.Row(groundRow), strings.Repeat(string(GroundChar), 14)))
	assert.Equal(t, SoilChar, screen.Get(50, groundRow+1))

	// Player box spans x 140..220 => cells 14..22, rows 16..22.
	cell := screen.GetCell(16, groundRow-2)
	assert.Equal(t, PlayerFill, cell.Rune)
	assert.Equal(t, core.ColorBrightCyan, cell.Color)
}
