package farm

import (
	"fmt"
	"strings"

	"termcraft/internal/core"
	"termcraft/internal/world"
)

// tileGlyph returns the rune and daytime color for a tile.
func tileGlyph(b world.BlockType) (rune, core.Color) {
	switch b {
	case world.Grass:
		return '▓', core.ColorGreen
	case world.Dirt:
		return '▒', core.ColorBrown
	case world.Stone:
		return '▓', core.ColorGray
	case world.Wood:
		return '▦', core.ColorBrown
	case world.Leaves:
		return '░', core.ColorBrightGreen
	case world.Tilled:
		return '≡', core.ColorBrown
	default:
		return ' ', core.ColorDefault
	}
}

// cropGlyph returns the marker for a crop at the given growth stage.
func cropGlyph(c Crop, day int) (rune, core.Color) {
	if c.IsMature(day) {
		return '¥', core.ColorBrightYellow
	}
	switch c.Stage(day) {
	case 0:
		return '.', core.ColorBrightGreen
	case 1:
		return ',', core.ColorBrightGreen
	default:
		return '↑', core.ColorGreen
	}
}

// nightColor dims a daytime color for the night overlay hours.
func nightColor(c core.Color) core.Color {
	switch c {
	case core.ColorGreen, core.ColorBrightGreen:
		return core.ColorDarkGreen
	case core.ColorBrown, core.ColorGray, core.ColorBrightYellow:
		return core.ColorDarkGray
	default:
		return core.ColorDarkGray
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	night := g.IsNight()
	g.renderMap(dst, night)
	g.renderPlants(dst, night)

	// Player
	sx := g.px - g.camX
	sy := g.py - g.camY + g.hudHeight
	if sx >= 0 && sx < dst.Width() && sy >= 0 && sy < dst.Height() {
		c := core.ColorBrightYellow
		if night {
			c = core.ColorYellow
		}
		dst.SetCell(sx, sy, '@', c)
	}

	if g.showHotbar {
		g.renderHotbar(dst)
	}

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderMap(dst *core.Screen, night bool) {
	viewW := dst.Width()
	viewH := dst.Height() - g.hudHeight
	for vy := 0; vy < viewH; vy++ {
		for vx := 0; vx < viewW; vx++ {
			wx, wy := g.camX+vx, g.camY+vy
			if !g.w.InBounds(wx, wy) {
				continue
			}
			b := g.w.At(wx, wy)
			if b == world.Air {
				continue
			}
			r, c := tileGlyph(b)
			if night {
				c = nightColor(c)
			}
			dst.SetCell(vx, vy+g.hudHeight, r, c)
		}
	}
}

func (g *Game) renderPlants(dst *core.Screen, night bool) {
	for coord, crop := range g.plants {
		vx := coord.X - g.camX
		vy := coord.Y - g.camY + g.hudHeight
		if vx < 0 || vx >= dst.Width() || vy < g.hudHeight || vy >= dst.Height() {
			continue
		}
		r, c := cropGlyph(crop, g.day)
		if night {
			c = nightColor(c)
		}
		dst.SetCell(vx, vy, r, c)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	line := fmt.Sprintf(" Farm │ %s │ Harvested: %d", g.clockLabel(), g.harvested)
	if g.IsNight() {
		line += " │ Night"
	}
	if g.statusMsg != "" {
		line += " │ " + g.statusMsg
	}
	dst.DrawText(0, 0, line)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderHotbar draws the item strip with counts on the bottom row.
func (g *Game) renderHotbar(dst *core.Screen) {
	y := dst.Height() - 1
	x := 1
	for i, item := range hotbarItems {
		label := fmt.Sprintf("[%d %s:%d]", i+1, item, g.inventory[item])
		color := core.ColorGray
		if i == g.selected {
			color = core.ColorBrightYellow
		}
		dst.DrawTextColor(x, y, label, color)
		x += len([]rune(label)) + 1
	}
}

func (g *Game) renderOverlay(dst *core.Screen, title, subtitle string) {
	midY := dst.Height() / 2
	width := core.Max(len(title), len(subtitle)) + 6
	startX := (dst.Width() - width) / 2
	if startX < 0 {
		startX = 0
	}

	dst.DrawText(startX, midY-1, strings.Repeat(" ", width))
	dst.DrawTextCentered(midY-1, title)
	dst.DrawText(startX, midY, strings.Repeat(" ", width))
	dst.DrawTextCentered(midY, subtitle)
}
