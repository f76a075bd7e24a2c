package runner

import "github.com/vovakirdan/tui-runner/internal/config"

// resetPlayer puts the player on the ground in the run pose.
func resetPlayer(p *Player, cfg *config.RunnerConfig) {
	*p = Player{
		X:        cfg.Player.X,
		Y:        cfg.World.GroundY() - cfg.Player.Height,
		W:        cfg.Player.Width,
		H:        cfg.Player.Height,
		Anim:     AnimRun,
		OnGround: true,
	}
}

// requestJump opens the jump buffer window. It never touches velocity.
func (p *Player) requestJump(window float64) {
	p.JumpBuffer = window
}

// update integrates gravity, resolves platforms and the ground, consumes
// the jump buffer and advances the animation. runFrames is the length of
// the run cycle. Returns true if a jump was triggered this tick.
func (p *Player) update(dt float64, cfg *config.RunnerConfig, platforms []Platform, runFrames int) bool {
	phys := cfg.Physics

	p.VY += phys.Gravity * dt
	p.Y += p.VY * dt

	landed := false
	prevY := p.Y - p.VY*dt

	// Swept test: the feet crossed the platform top during this tick.
	// Every matching platform writes the same fields; the last one wins.
	bandL := p.X + p.W*cfg.Player.LandBandMin
	bandR := p.X + p.W*cfg.Player.LandBandMax
	for _, pl := range platforms {
		crossing := prevY+p.H <= pl.Y && p.Y+p.H >= pl.Y
		within := bandR > pl.X && bandL < pl.X+pl.W
		if crossing && within {
			p.Y = pl.Y - p.H
			p.VY = 0
			p.OnGround = true
			p.Coyote = phys.CoyoteTime
			landed = true
		}
	}

	rest := cfg.World.GroundY() - p.H
	if !landed {
		if p.Y >= rest {
			p.Y = rest
			p.VY = 0
			p.OnGround = true
			p.Coyote = phys.CoyoteTime
		} else {
			p.OnGround = false
			p.Coyote -= dt
		}
	}

	jumped := false
	if p.JumpBuffer > 0 {
		p.JumpBuffer -= dt
		if p.Coyote > 0 {
			p.VY = phys.JumpVelocity
			p.JumpBuffer = 0
			p.Coyote = 0
			jumped = true
		}
	}

	p.animate(dt, cfg.Player.FrameDuration, runFrames)
	return jumped
}

// animate derives the pose from OnGround and the sign of VY.
func (p *Player) animate(dt, frameDuration float64, runFrames int) {
	switch {
	case !p.OnGround && p.VY < 0:
		p.Anim = AnimJump
	case !p.OnGround:
		p.Anim = AnimFall
	default:
		p.Anim = AnimRun
	}

	if p.Anim != AnimRun || runFrames <= 0 {
		return
	}
	p.FrameTimer += dt
	if p.FrameTimer > frameDuration {
		p.FrameTimer = 0
		p.Frame = (p.Frame + 1) % runFrames
	}
}
