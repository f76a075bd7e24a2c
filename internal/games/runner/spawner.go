package runner

import (
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// Spawner handles spawning, scrolling and removal of enemies and platforms.
// The two timers are independent of each other and of collisions.
type Spawner struct {
	enemies   []Enemy
	platforms []Platform
	enemyT    float64 // Seconds until the next enemy
	platformT float64 // Seconds until the next platform
	rng       *rand.Rand
	cfg       *config.RunnerConfig
	sprites   Sprites
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, cfg *config.RunnerConfig, sprites Sprites) *Spawner {
	s := &Spawner{
		enemies:   make([]Enemy, 0, 8),
		platforms: make([]Platform, 0, 4),
		cfg:       cfg,
		sprites:   sprites,
	}
	s.Reset(seed)
	return s
}

// Reset empties both collections, rearms the first-spawn delays and reseeds.
func (s *Spawner) Reset(seed int64) {
	s.enemies = s.enemies[:0]
	s.platforms = s.platforms[:0]
	s.enemyT = s.cfg.Enemies.FirstDelay
	s.platformT = s.cfg.Platforms.FirstDelay
	s.rng = rand.New(rand.NewSource(seed))
}

// Update ticks the timers down, spawns on expiry, scrolls everything left
// by speed*dt and culls what went past the left margin.
func (s *Spawner) Update(dt, speed float64) {
	s.enemyT -= dt
	if s.enemyT <= 0 {
		s.spawnEnemy()
	}

	s.platformT -= dt
	if s.platformT <= 0 {
		s.spawnPlatform()
	}

	dx := speed * dt
	for i := range s.enemies {
		s.enemies[i].X -= dx
	}
	for i := range s.platforms {
		s.platforms[i].X -= dx
	}

	limit := -s.cfg.CullMargin
	validEnemies := s.enemies[:0]
	for _, e := range s.enemies {
		if e.X+e.W > limit {
			validEnemies = append(validEnemies, e)
		}
	}
	s.enemies = validEnemies

	validPlatforms := s.platforms[:0]
	for _, p := range s.platforms {
		if p.X+p.W > limit {
			validPlatforms = append(validPlatforms, p)
		}
	}
	s.platforms = validPlatforms
}

// spawnEnemy adds an enemy just past the right edge with a random look.
// Height is fixed; width keeps the image aspect ratio.
func (s *Spawner) spawnEnemy() {
	ec := s.cfg.Enemies
	variant := s.rng.Intn(s.sprites.EnemyVariants())
	iw, ih := s.sprites.EnemySize(variant)

	h := ec.Height
	s.enemies = append(s.enemies, Enemy{
		X:       s.cfg.World.Width + ec.SpawnOffset,
		Y:       s.cfg.World.GroundY() - h + ec.Sink,
		W:       iw * h / ih,
		H:       h,
		Variant: variant,
	})
	s.enemyT = s.uniform(ec.IntervalMin, ec.IntervalMax)
}

// spawnPlatform adds a platform just past the right edge at a random height.
func (s *Spawner) spawnPlatform() {
	pc := s.cfg.Platforms
	w := pc.Widths[s.rng.Intn(len(pc.Widths))]
	ground := s.cfg.World.GroundY()

	s.platforms = append(s.platforms, Platform{
		X: s.cfg.World.Width + pc.SpawnOffset,
		Y: s.uniform(ground-pc.RiseMax, ground-pc.RiseMin),
		W: w,
		H: pc.Height,
	})
	s.platformT = s.uniform(pc.IntervalMin, pc.IntervalMax)
}

// uniform returns a value in [lo, hi).
func (s *Spawner) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Enemies returns the live enemies in insertion order.
func (s *Spawner) Enemies() []Enemy {
	return s.enemies
}

// Platforms returns the live platforms in insertion order.
func (s *Spawner) Platforms() []Platform {
	return s.platforms
}
