package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for rendering
const (
	MountainChar  = '░'
	GroundChar    = '═'
	SoilChar      = '▒'
	PlatformChar  = '█'
	PlatformShade = '▓'
	PlayerFill    = '█'
	EnemyFill     = '▓'
)

// Scenery constants (world units).
const (
	mountainSpan   = 260.0
	mountainHeight = 160.0
	mountainSpeed  = 20.0 // Parallax scroll, units per elapsed second
	mountainCount  = 6
	platformShade  = 6.0 // Depth of the shaded underside
)

// view maps world coordinates onto the screen grid.
type view struct {
	sx, sy float64 // Cells per world unit
	dx, dy int     // Shake offset in cells
}

// span returns the half-open cell range covered by [a, a+n) scaled by k.
// Always at least one cell wide.
func span(a, n, k float64, off int) (int, int) {
	c0 := int(math.Floor(a*k)) + off
	c1 := int(math.Ceil((a+n)*k)) + off
	if c1 <= c0 {
		c1 = c0 + 1
	}
	return c0, c1
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	v := view{
		sx: float64(dst.Width()) / g.cfg.World.Width,
		sy: float64(dst.Height()) / g.cfg.World.Height,
	}
	if s := g.state.Shake; s > 0 {
		v.dx = int(math.Round((g.fx.Float64()*2 - 1) * s * v.sx))
		v.dy = int(math.Round((g.fx.Float64()*2 - 1) * s * v.sy))
	}

	g.drawMountains(dst, v)
	g.drawGround(dst, v)
	for _, p := range g.spawner.Platforms() {
		g.drawPlatform(dst, v, p)
	}
	g.drawSprite(dst, v, g.player.Box(), g.player.SpriteID(), PlayerFill, core.ColorBrightCyan)
	for _, e := range g.spawner.Enemies() {
		g.drawSprite(dst, v, e.Box(), e.SpriteID(), EnemyFill, core.ColorBrightRed)
	}

	// HUD
	scoreText := fmt.Sprintf(" Score: %d ", g.State().Score)
	dst.DrawTextColored(2, 0, scoreText, core.ColorBrightWhite)

	if g.ramp.IsEnabled() {
		speedText := fmt.Sprintf(" Spd: %.0f ", g.state.ScrollSpeed)
		dst.DrawTextColored(dst.Width()-len(speedText)-2, 0, speedText, core.ColorGray)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.state.Over {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.State().Score))
	}
}

// drawMountains draws the parallax background ridge.
func (g *Game) drawMountains(dst *core.Screen, v view) {
	ground := g.cfg.World.GroundY()
	off := math.Mod(g.state.Elapsed*mountainSpeed, mountainSpan)

	for cx := 0; cx < dst.Width(); cx++ {
		x := (float64(cx-v.dx) + 0.5) / v.sx

		h := 0.0
		for i := 0; i < mountainCount; i++ {
			mid := float64(i)*mountainSpan - off + mountainSpan/2
			d := math.Abs(x-mid) / (mountainSpan / 2)
			if d < 1 {
				h = math.Max(h, mountainHeight*(1-d))
			}
		}
		if h <= 0 {
			continue
		}

		top, bottom := span(ground-h, h, v.sy, v.dy)
		for cy := top; cy < bottom; cy++ {
			dst.SetColored(cx, cy, MountainChar, core.ColorBlue)
		}
	}
}

// drawGround draws the ground line and the soil below it.
func (g *Game) drawGround(dst *core.Screen, v view) {
	row, _ := span(g.cfg.World.GroundY(), 0, v.sy, v.dy)
	dst.DrawHLine(0, row, dst.Width(), GroundChar, core.ColorGreen)
	for y := row + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), SoilChar, core.ColorGray)
	}
}

// drawPlatform draws a platform with a shaded underside.
func (g *Game) drawPlatform(dst *core.Screen, v view, p Platform) {
	x0, x1 := span(p.X, p.W, v.sx, v.dx)
	y0, y1 := span(p.Y, p.H, v.sy, v.dy)
	shadeRow, _ := span(p.Y+p.H-platformShade, 0, v.sy, v.dy)

	for cy := y0; cy < y1; cy++ {
		ch, col := PlatformChar, core.ColorBrightWhite
		if cy >= shadeRow && cy > y0 {
			ch, col = PlatformShade, core.ColorGray
		}
		dst.DrawHLine(x0, cy, x1-x0, ch, col)
	}
}

// drawSprite samples glyph art nearest-neighbor into the box. Sprites
// without art are drawn as a solid block.
func (g *Game) drawSprite(dst *core.Screen, v view, b core.Box, id string, fill rune, c core.Color) {
	x0, x1 := span(b.X, b.W, v.sx, v.dx)
	y0, y1 := span(b.Y, b.H, v.sy, v.dy)

	art := g.sprites.Glyph(id)
	if len(art) == 0 {
		dst.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), fill, c)
		return
	}

	rows := make([][]rune, len(art))
	cols := 0
	for i, line := range art {
		rows[i] = []rune(line)
		cols = core.Max(cols, len(rows[i]))
	}
	if cols == 0 {
		return
	}

	for cy := y0; cy < y1; cy++ {
		r := rows[(cy-y0)*len(rows)/(y1-y0)]
		for cx := x0; cx < x1; cx++ {
			col := (cx - x0) * cols / (x1 - x0)
			if col >= len(r) || r[col] == ' ' {
				continue
			}
			dst.SetColored(cx, cy, r[col], c)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBrightWhite)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawTextColored(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}
