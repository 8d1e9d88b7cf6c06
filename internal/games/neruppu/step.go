package neruppu

import (
	"slices"

	"github.com/vovakirdan/neruppu-daa/internal/core"
)

// simulate runs one PLAYING tick.
func (g *Game) simulate() {
	g.frame++

	g.spawn()
	g.advance()
	g.expire()

	fatal := g.resolveHazards()
	if !fatal {
		g.resolvePowerUps()
	}

	g.effects.Tick()
	g.score += g.effects.SurvivalPoints()

	// The final survival points count toward the high score
	if fatal {
		g.enterGameOver()
	}
}

// spawn runs this tick's hazard and power-up trials.
func (g *Game) spawn() {
	tf := TimeFactor(g.frame)

	if h, ok := g.spawner.TrySpawnHazard(tf); ok {
		g.hazards = append(g.hazards, h)
	}
	if p, ok := g.spawner.TrySpawnPowerUp(); ok {
		g.powerUps = append(g.powerUps, p)
	}
}

// advance moves every falling entity down.
func (g *Game) advance() {
	m := g.effects.FallMultiplier()

	for i := range g.hazards {
		g.hazards[i].Pos.Y += g.hazards[i].Speed * m
	}
	for i := range g.powerUps {
		g.powerUps[i].Pos.Y += PowerUpFallSpeed * m
	}
}

// expire removes entities that fell past the bottom edge.
func (g *Game) expire() {
	hazards := g.hazards[:0]
	for _, h := range g.hazards {
		if h.Pos.Y < FieldHeight {
			hazards = append(hazards, h)
		}
	}
	g.hazards = hazards

	powerUps := g.powerUps[:0]
	for _, p := range g.powerUps {
		if p.Pos.Y < FieldHeight {
			powerUps = append(powerUps, p)
		}
	}
	g.powerUps = powerUps
}

// touches reports whether a position is within one cell of the player.
func (g *Game) touches(pos Position) bool {
	return core.Chebyshev(pos.X, pos.Row(), g.player.X, g.player.Y) <= 1
}

// resolveHazards handles at most one hazard collision per tick.
// Returns true if the hit ended the run.
func (g *Game) resolveHazards() bool {
	for i, h := range g.hazards {
		if !g.touches(h.Pos) {
			continue
		}

		g.hazards = slices.Delete(g.hazards, i, i+1)

		fatal := false
		if g.effects.Shield {
			g.effects.Shield = false
		} else {
			g.lives--
			fatal = g.lives <= 0
		}

		if fatal {
			g.emit(core.EventGameOver)
		}
		g.emit(core.EventHit)
		return fatal
	}
	return false
}

// resolvePowerUps collects every power-up touching the player.
func (g *Game) resolvePowerUps() {
	remaining := g.powerUps[:0]
	for _, p := range g.powerUps {
		if !g.touches(p.Pos) {
			remaining = append(remaining, p)
			continue
		}

		g.effects.Apply(p.Kind)
		g.score += PowerUpPoints
		g.collected++
		g.emit(core.EventPowerUp)
	}
	g.powerUps = remaining
}
