package game

import (
	"fmt"

	"github.com/colordash/colordash/internal/core"
)

// cellColor maps a palette color to a screen color.
func cellColor(c ShapeColor) core.Color {
	switch c {
	case ColorRed:
		return core.ColorBrightRed
	case ColorGreen:
		return core.ColorBrightGreen
	case ColorBlue:
		return core.ColorBrightBlue
	default:
		return core.ColorDefault
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

	if g.phase == PhaseTitle {
		g.renderOverlay(dst, "COLOR DASH", "Press any key to start")
		return
	}

	g.renderZones(dst)
	g.renderShapes(dst)

	switch {
	case g.phase == PhaseGameOver:
		g.renderOverlay(dst,
			"GAME OVER",
			fmt.Sprintf("Final Score: %d  Best: %d  |  SPACE for title", g.score, g.highScore))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s | Score: %d  Best: %d", g.Title(), g.score, g.highScore)
	dst.DrawText(0, 0, hud)

	lx := dst.Width() - 7 - g.lives - 1 // "Lives: " plus one heart per life
	dst.DrawText(lx, 0, "Lives: ")
	for i := 0; i < g.lives; i++ {
		dst.SetCell(lx+7+i, 0, '♥', core.ColorBrightRed)
	}

	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// renderZones draws the three collector zones. The middle zone is the only
// one a shape can match; it is drawn solid, the flanks dimmed.
func (g *Game) renderZones(dst *core.Screen) {
	zoneW := g.cfg.Zones.Width
	startX := g.zoneStartX
	y := hudHeight + g.zoneRowY

	for slot := 0; slot < 3; slot++ {
		color := cellColor(g.zones.SlotColor(slot))
		glyph := '▒'
		if slot == 1 {
			glyph = '█'
		}
		for x := 0; x < zoneW; x++ {
			dst.SetCell(startX+slot*zoneW+x, y, glyph, color)
		}
	}

	// Arrow marking the active slot
	dst.SetCell(startX+zoneW+zoneW/2, y-1, '▼', core.ColorWhite)
}

// renderShapes draws all live shapes.
func (g *Game) renderShapes(dst *core.Screen) {
	for _, s := range g.shapes {
		y := hudHeight + int(s.Y)
		if y < hudHeight {
			continue // Still above the visible playfield
		}
		dst.SetCell(s.X, y, s.Kind.Glyph(), cellColor(s.Color))
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(line1))/2, boxY+1, line1)
	dst.DrawText(boxX+(boxW-len(line2))/2, boxY+3, line2)
}
