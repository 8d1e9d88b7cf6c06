package neruppu

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/neruppu-daa/internal/core"
)

// Screen layout: three HUD rows, the bordered field, one help row.
const (
	ScreenWidth  = FieldWidth
	ScreenHeight = FieldHeight + 6

	fieldTop   = 3            // Row of the top border
	fieldOrig  = fieldTop + 1 // Screen row of field row 0
	PlayerChar = '@'
)

// Render draws the current phase into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.phase {
	case core.PhaseMenu:
		g.renderMenu(dst)
	case core.PhasePlaying:
		g.renderField(dst)
	case core.PhaseGameOver:
		g.renderGameOver(dst)
	}
}

// renderField draws the HUD, the border and every entity.
func (g *Game) renderField(dst *core.Screen) {
	dst.DrawText(0, 0, "NERUPPU DAA - HARDCORE MODE", core.ColorRed)

	stats := fmt.Sprintf("Score: %s | High: %s | Life: %s | Level: %d",
		humanize.Comma(int64(g.score)),
		humanize.Comma(int64(g.highScore)),
		strings.Repeat("♥", g.lives),
		Level(TimeFactor(g.frame)),
	)
	dst.DrawText(0, 1, stats, core.ColorYellow)

	if effects := g.effectLabels(); len(effects) > 0 {
		dst.DrawText(0, 2, "Effects: "+strings.Join(effects, " | "), core.ColorBlue)
	}

	dst.DrawBox(core.NewRect(0, fieldTop, FieldWidth, FieldHeight+2), core.ColorCyan)

	for _, h := range g.hazards {
		g.drawEntity(dst, h.Pos, h.Glyph, core.ColorRed)
	}
	for _, p := range g.powerUps {
		g.drawEntity(dst, p.Pos, p.Glyph, core.ColorBlue)
	}

	playerColor := core.ColorGreen
	if g.effects.Shield {
		playerColor = core.ColorBlue
	}
	g.drawEntity(dst, Position{X: g.player.X, Y: float64(g.player.Y)}, PlayerChar, playerColor)

	dst.DrawText(0, ScreenHeight-1, "A/D or ←/→ to Move | Q=Quit", core.ColorYellow)
}

// playfield is the field area inside the side borders, in field coordinates.
var playfield = core.NewRect(MinPlayerX, 0, MaxPlayerX-MinPlayerX+1, FieldHeight)

// drawEntity maps a field position inside the border to the screen.
func (g *Game) drawEntity(dst *core.Screen, pos Position, glyph rune, c core.Color) {
	row := pos.Row()
	if !playfield.Contains(pos.X, row) {
		return
	}
	dst.SetColored(pos.X, fieldOrig+row, glyph, c)
}

// effectLabels lists the active effects for the HUD.
func (g *Game) effectLabels() []string {
	var labels []string
	if g.effects.DoublePoints {
		labels = append(labels, "2X PTS")
	}
	if g.effects.Shield {
		labels = append(labels, "SHIELD")
	}
	if g.effects.SlowMotion {
		labels = append(labels, "SLOW")
	}
	return labels
}

// renderMenu draws the title screen with instructions.
func (g *Game) renderMenu(dst *core.Screen) {
	dst.DrawTextCentered(1, "N E R U P P U   D A A", core.ColorCyan)
	dst.DrawTextCentered(2, "Survive the Fire Stones", core.ColorWhite)
	dst.DrawTextCentered(4, "High Score: "+humanize.Comma(int64(g.highScore)), core.ColorWhite)

	dst.DrawTextCentered(6, "=== HOW TO PLAY ===", core.ColorGreen)
	dst.DrawText(6, 7, "- Use A/D or ←/→ keys to move your player (@)", core.ColorWhite)
	dst.DrawText(6, 8, "- HARDCORE MODE: One hit = Game Over!", core.ColorRed)
	dst.DrawText(6, 9, "- Fire stones get faster as you survive", core.ColorYellow)

	dst.DrawTextCentered(11, "=== POWER-UPS ===", core.ColorBlue)
	legend := []struct {
		kind PowerKind
		text string
	}{
		{PowerDoublePoints, "Double Points - 2x score for limited time"},
		{PowerExtraLife, "Shield Boost  - Temporary protection from hits"},
		{PowerSlowMotion, "Slow Motion   - Fire stones fall slower"},
		{PowerShield, "Shield        - Blocks one hit from fire stones"},
	}
	for i, l := range legend {
		dst.SetColored(6, 12+i, l.kind.Glyph(), core.ColorBlue)
		dst.DrawText(8, 12+i, l.text, core.ColorWhite)
	}

	dst.DrawTextCentered(18, "PRESS SPACE TO START!", core.ColorYellow)
	dst.DrawTextCentered(19, "Press Q to Quit", core.ColorYellow)
}

// renderGameOver draws the final score screen.
func (g *Game) renderGameOver(dst *core.Screen) {
	dst.DrawTextCentered(2, "G A M E   O V E R", core.ColorRed)
	dst.DrawTextCentered(5, "Final Score: "+humanize.Comma(int64(g.score)), core.ColorYellow)

	if g.newHigh {
		dst.DrawTextCentered(7, "NEW HIGH SCORE!", core.ColorYellow)
	} else {
		dst.DrawTextCentered(7, "High Score: "+humanize.Comma(int64(g.highScore)), core.ColorWhite)
	}

	dst.DrawTextCentered(9, "You survived for", core.ColorWhite)
	dst.DrawTextCentered(10, fmt.Sprintf("%d seconds!", SurvivalSeconds(g.frame)), core.ColorCyan)

	dst.DrawTextCentered(13, "R - Play Again", core.ColorGreen)
	dst.DrawTextCentered(14, "Q - Quit Game", core.ColorYellow)
}

// SurvivalSeconds converts run ticks to whole seconds, at least one.
func SurvivalSeconds(frames int) int {
	return max(1, frames/core.TickRate)
}
