package craft

import (
	"fmt"
	"strings"

	"termcraft/internal/core"
	"termcraft/internal/world"
)

// blockGlyph returns the rune and color used to draw a block.
func blockGlyph(b world.BlockType) (rune, core.Color) {
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

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderMap(dst)

	// Player
	sx := g.px - g.camX
	sy := g.py - g.camY + g.hudHeight
	if sx >= 0 && sx < dst.Width() && sy >= 0 && sy < dst.Height() {
		dst.SetCell(sx, sy, '@', core.ColorBrightYellow)
	}

	if g.showHotbar {
		g.renderHotbar(dst)
	}

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderMap draws the visible window of the block map below the HUD.
func (g *Game) renderMap(dst *core.Screen) {
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
			r, c := blockGlyph(b)
			dst.SetCell(vx, vy+g.hudHeight, r, c)
		}
	}
}

// renderHUD draws the top status lines.
func (g *Game) renderHUD(dst *core.Screen) {
	line := fmt.Sprintf(" Craft │ Placed: %d  Mined: %d  Blocks: %d │ %s",
		g.blocksPlaced, g.blocksBroken, g.w.Count(), g.palette[g.selected])
	if g.statusMsg != "" {
		line += " │ " + g.statusMsg
	}
	dst.DrawText(0, 0, line)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderHotbar draws the slot strip on the bottom row.
func (g *Game) renderHotbar(dst *core.Screen) {
	y := dst.Height() - 1
	x := 1
	for i, b := range g.palette {
		label := fmt.Sprintf("[%d %s]", i+1, b)
		color := core.ColorGray
		if i == g.selected {
			color = core.ColorBrightYellow
		}
		dst.DrawTextColor(x, y, label, color)
		x += len([]rune(label)) + 1
	}
}

// renderOverlay draws a centered two-line message box.
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
