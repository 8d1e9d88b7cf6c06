package neruppu

import (
	"slices"
	"testing"

	"github.com/vovakirdan/neruppu-daa/internal/core"
)

// scriptedSpawner returns queued entities, one per trial.
type scriptedSpawner struct {
	hazards  []Hazard
	powerUps []PowerUp
}

func (s *scriptedSpawner) Reset(int64) {}

func (s *scriptedSpawner) TrySpawnHazard(float64) (Hazard, bool) {
	if len(s.hazards) == 0 {
		return Hazard{}, false
	}
	h := s.hazards[0]
	s.hazards = s.hazards[1:]
	return h, true
}

func (s *scriptedSpawner) TrySpawnPowerUp() (PowerUp, bool) {
	if len(s.powerUps) == 0 {
		return PowerUp{}, false
	}
	p := s.powerUps[0]
	s.powerUps = s.powerUps[1:]
	return p, true
}

func powerUpAt(x int, y float64, kind PowerKind) PowerUp {
	return PowerUp{Pos: Position{X: x, Y: y}, Kind: kind, Glyph: kind.Glyph()}
}

func TestSpawnedEntitiesFall(t *testing.T) {
	g := newPlayingGame(t)
	g.spawner = &scriptedSpawner{
		hazards:  []Hazard{{Pos: Position{X: 5}, Speed: 1.25, Glyph: 'x'}},
		powerUps: []PowerUp{powerUpAt(10, 0, PowerShield)},
	}

	g.Step(noInput, core.OpenGate{})

	if len(g.Hazards()) != 1 || g.Hazards()[0].Pos.Y != 1.25 {
		t.Errorf("hazard should fall by its speed on the spawn tick, got %+v", g.Hazards())
	}
	if len(g.PowerUps()) != 1 || g.PowerUps()[0].Pos.Y != PowerUpFallSpeed {
		t.Errorf("power-up should fall %f on the spawn tick, got %+v", PowerUpFallSpeed, g.PowerUps())
	}
}

func TestEntitiesExpireAtBottom(t *testing.T) {
	g := newPlayingGame(t)
	g.hazards = []Hazard{
		{Pos: Position{X: 5, Y: 19.5}, Speed: 1.0, Glyph: 'o'},
		{Pos: Position{X: 7, Y: 10}, Speed: 1.0, Glyph: 'O'},
	}
	g.powerUps = []PowerUp{powerUpAt(9, 19.5, PowerShield)}

	g.Step(noInput, core.OpenGate{})

	if len(g.Hazards()) != 1 || g.Hazards()[0].Glyph != 'O' {
		t.Errorf("only the hazard past the bottom should expire, got %+v", g.Hazards())
	}
	if len(g.PowerUps()) != 0 {
		t.Errorf("power-up past the bottom should expire, got %+v", g.PowerUps())
	}
}

func TestSlowMotionHalvesFall(t *testing.T) {
	g := newPlayingGame(t)
	g.effects.Apply(PowerSlowMotion)
	g.hazards = []Hazard{{Pos: Position{X: 5, Y: 0}, Speed: 2.0, Glyph: 'o'}}
	g.powerUps = []PowerUp{powerUpAt(9, 0, PowerShield)}

	g.Step(noInput, core.OpenGate{})

	if got := g.Hazards()[0].Pos.Y; got != 1.0 {
		t.Errorf("expected hazard at 1.0 under slow motion, got %f", got)
	}
	if got := g.PowerUps()[0].Pos.Y; got != 0.3 {
		t.Errorf("expected power-up at 0.3 under slow motion, got %f", got)
	}
}

func TestShieldAbsorbsHit(t *testing.T) {
	g := newPlayingGame(t)
	g.effects.Shield = true
	scoreBefore := g.State().Score
	dropOnPlayer(g)

	res := g.Step(noInput, core.OpenGate{})

	if res.State.Phase != core.PhasePlaying {
		t.Fatalf("a shielded hit should not end the run, got %v", res.State.Phase)
	}
	if g.Effects().Shield {
		t.Error("the shield should be consumed")
	}
	if g.Lives() != StartLives {
		t.Errorf("a shielded hit should not cost a life, lives=%d", g.Lives())
	}
	if len(g.Hazards()) != 0 {
		t.Error("the absorbed hazard should be removed")
	}
	if !slices.Equal(res.Events, []core.Event{core.EventHit}) {
		t.Errorf("expected a single hit event, got %v", res.Events)
	}
	if res.State.Score != scoreBefore+2 {
		t.Errorf("survival points should still accrue, got %d", res.State.Score)
	}
}

func TestOnlyFirstHitPerTick(t *testing.T) {
	g := newPlayingGame(t)
	g.effects.Shield = true
	x := g.player.X
	g.hazards = []Hazard{
		{Pos: Position{X: x - 1, Y: PlayerRow}, Glyph: 'o'},
		{Pos: Position{X: x + 1, Y: PlayerRow}, Glyph: 'O'},
	}

	res := g.Step(noInput, core.OpenGate{})

	if res.State.Phase != core.PhasePlaying {
		t.Fatalf("the second hazard should wait for the next tick, got %v", res.State.Phase)
	}
	if len(g.Hazards()) != 1 || g.Hazards()[0].Glyph != 'O' {
		t.Errorf("only the first colliding hazard should be removed, got %+v", g.Hazards())
	}

	res = g.Step(noInput, core.OpenGate{})
	if res.State.Phase != core.PhaseGameOver {
		t.Errorf("the remaining hazard should end the run, got %v", res.State.Phase)
	}
}

func TestCollisionUsesTruncatedRow(t *testing.T) {
	tests := []struct {
		name string
		dx   int
		y    float64
		hit  bool
	}{
		{"same cell", 0, 18, true},
		{"row above", 0, 17.9, true},
		{"diagonal", 1, 17.0, true},
		{"two rows above", 0, 16.99, false},
		{"two columns away", 2, 18, false},
		{"row below", -1, 19.5, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newPlayingGame(t)
			g.hazards = []Hazard{{Pos: Position{X: g.player.X + tc.dx, Y: tc.y}, Glyph: 'o'}}

			res := g.Step(noInput, core.OpenGate{})

			if got := res.State.Phase == core.PhaseGameOver; got != tc.hit {
				t.Errorf("hit = %v, expected %v", got, tc.hit)
			}
		})
	}
}

func TestPowerUpsCollectedTogether(t *testing.T) {
	g := newPlayingGame(t)
	x := g.player.X
	g.powerUps = []PowerUp{
		powerUpAt(x-1, PlayerRow, PowerDoublePoints),
		powerUpAt(x+1, PlayerRow-1, PowerShield),
		powerUpAt(x+5, PlayerRow, PowerSlowMotion),
	}
	scoreBefore := g.State().Score

	res := g.Step(noInput, core.OpenGate{})

	// 2 x 50 for the pickups, then 3 for surviving with double points
	if want := scoreBefore + 2*PowerUpPoints + 3; res.State.Score != want {
		t.Errorf("expected score %d, got %d", want, res.State.Score)
	}
	want := []core.Event{core.EventPowerUp, core.EventPowerUp}
	if !slices.Equal(res.Events, want) {
		t.Errorf("expected events %v, got %v", want, res.Events)
	}
	if len(g.PowerUps()) != 1 || g.PowerUps()[0].Kind != PowerSlowMotion {
		t.Errorf("only the distant power-up should remain, got %+v", g.PowerUps())
	}
	if !g.Effects().DoublePoints || !g.Effects().Shield {
		t.Errorf("expected double points and shield, got %+v", g.Effects())
	}
	if g.Effects().DoubleTimer != DoublePointsTicks-1 {
		t.Errorf("expected timer %d after one tick, got %d", DoublePointsTicks-1, g.Effects().DoubleTimer)
	}
}

func TestPowerUpAfterShieldedHit(t *testing.T) {
	g := newPlayingGame(t)
	g.effects.Shield = true
	x := g.player.X
	g.hazards = []Hazard{{Pos: Position{X: x, Y: PlayerRow}, Glyph: 'o'}}
	g.powerUps = []PowerUp{powerUpAt(x, PlayerRow, PowerShield)}

	res := g.Step(noInput, core.OpenGate{})

	want := []core.Event{core.EventHit, core.EventPowerUp}
	if !slices.Equal(res.Events, want) {
		t.Errorf("expected events %v, got %v", want, res.Events)
	}
	if !g.Effects().Shield {
		t.Error("the collected shield should replace the consumed one")
	}
}

func TestFatalHitSkipsPowerUps(t *testing.T) {
	g := newPlayingGame(t)
	x := g.player.X
	g.hazards = []Hazard{{Pos: Position{X: x, Y: PlayerRow}, Glyph: 'o'}}
	g.powerUps = []PowerUp{powerUpAt(x, PlayerRow, PowerShield)}
	scoreBefore := g.State().Score

	res := g.Step(noInput, core.OpenGate{})

	if res.State.Score != scoreBefore+2 {
		t.Errorf("a fatal tick earns only survival points, score %d -> %d", scoreBefore, res.State.Score)
	}
	if slices.Contains(res.Events, core.EventPowerUp) {
		t.Error("no power-up should be collected on a fatal tick")
	}
	if len(g.powerUps) != 1 {
		t.Errorf("the power-up should stay on the field, got %d", len(g.powerUps))
	}
}

func TestFatalTickFinishesTimers(t *testing.T) {
	g := newPlayingGame(t)
	g.effects.Apply(PowerDoublePoints)
	g.effects.Tick()
	timer := g.effects.DoubleTimer
	scoreBefore := g.State().Score
	dropOnPlayer(g)

	res := g.Step(noInput, core.OpenGate{})

	if res.State.Phase != core.PhaseGameOver {
		t.Fatalf("expected GAME_OVER, got %v", res.State.Phase)
	}
	if g.effects.DoubleTimer != timer-1 {
		t.Errorf("expected double points timer %d, got %d", timer-1, g.effects.DoubleTimer)
	}
	want := scoreBefore + 3
	if res.State.Score != want || res.State.HighScore != want || res.Run.Score != want {
		t.Errorf("expected score, high score and run score %d, got %d/%d/%d",
			want, res.State.Score, res.State.HighScore, res.Run.Score)
	}
}

func TestEffectTimers(t *testing.T) {
	var e Effects

	e.Apply(PowerDoublePoints)
	for i := 0; i < 50; i++ {
		e.Tick()
	}
	e.Apply(PowerDoublePoints)
	if e.DoubleTimer != DoublePointsTicks {
		t.Errorf("re-collecting should restart the timer at %d, got %d", DoublePointsTicks, e.DoubleTimer)
	}

	e.Apply(PowerSlowMotion)
	for i := 0; i < SlowMotionTicks-1; i++ {
		e.Tick()
		if !e.SlowMotion {
			t.Fatalf("slow motion ended early at tick %d", i+1)
		}
	}
	e.Tick()
	if e.SlowMotion || e.SlowTimer != 0 {
		t.Errorf("slow motion should end with its timer, got %+v", e)
	}
	if e.FallMultiplier() != 1.0 {
		t.Errorf("expected normal fall speed, got %f", e.FallMultiplier())
	}

	e.Tick()
	if e.SlowTimer != 0 {
		t.Errorf("timers should not go negative, got %d", e.SlowTimer)
	}
}

func TestExtraLifeGrantsShield(t *testing.T) {
	var e Effects
	e.Apply(PowerExtraLife)

	if !e.Shield {
		t.Error("extra life should grant a shield")
	}
	if e.DoublePoints || e.SlowMotion {
		t.Errorf("extra life should not start timed effects, got %+v", e)
	}
}

func TestSurvivalScore(t *testing.T) {
	g := newPlayingGame(t)

	for i := 0; i < 9; i++ {
		g.Step(noInput, core.OpenGate{})
	}
	if got := g.State().Score; got != 20 {
		t.Errorf("expected 20 points after 10 ticks, got %d", got)
	}

	g.effects.Apply(PowerDoublePoints)
	g.Step(noInput, core.OpenGate{})
	if got := g.State().Score; got != 23 {
		t.Errorf("expected 23 points with double points, got %d", got)
	}
}
