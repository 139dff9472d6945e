package xonix

import (
	"fmt"

	"github.com/arcadegrid/xonix-tui/internal/core"
)

// Render draws the session into the screen buffer: HUD, grid, trail,
// enemies, player, and any overlay for paused/terminal states.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderGrid(dst)
	g.renderEnemies(dst)
	dst.SetCell(g.offsetX+g.playerX, g.offsetY+g.playerY, '@', core.ColorBrightGreen)

	switch {
	case g.phase == PhaseWon:
		g.renderOverlay(dst, g.reason, fmt.Sprintf("Territory claimed: %.1f%%", g.ClaimedPercent()))
	case g.phase == PhaseLost:
		g.renderOverlay(dst, g.reason, "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Xonix — Territory: %.1f%%  Target: %.0f%%  Enemies: %d",
		g.ClaimedPercent(), g.cfg.Gameplay.WinThreshold, len(g.enemies))
	dst.DrawText(0, 0, hud, core.ColorWhite)
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

func (g *Game) renderGrid(dst *core.Screen) {
	w, h := g.grid.Width(), g.grid.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch g.grid.At(x, y) {
			case CellBorder:
				dst.SetCell(g.offsetX+x, g.offsetY+y, '█', core.ColorBrightBlue)
			case CellClaimed:
				dst.SetCell(g.offsetX+x, g.offsetY+y, '▒', core.ColorBlue)
			case CellTrail:
				dst.SetCell(g.offsetX+x, g.offsetY+y, '+', core.ColorBrightYellow)
			}
		}
	}
}

func (g *Game) renderEnemies(dst *core.Screen) {
	for i := range g.enemies {
		cell := g.enemies[i].Cell(g.cellSize)
		if g.grid.InBounds(cell.X, cell.Y) {
			dst.SetCell(g.offsetX+cell.X, g.offsetY+cell.Y, 'O', core.ColorBrightRed)
		}
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}
