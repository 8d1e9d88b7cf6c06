package neruppu

import "math/rand"

// entitySource produces the falling entities that enter the field each tick.
type entitySource interface {
	Reset(seed int64)
	TrySpawnHazard(tf float64) (Hazard, bool)
	TrySpawnPowerUp() (PowerUp, bool)
}

// Spawner creates hazards and power-ups at the top of the field.
// All randomness comes from one seeded source so runs are reproducible.
type Spawner struct {
	rng   *rand.Rand
	width int
}

// NewSpawner creates a spawner for a field of the given width.
func NewSpawner(seed int64, width int) *Spawner {
	return &Spawner{
		rng:   rand.New(rand.NewSource(seed)),
		width: width,
	}
}

// Reset reseeds the random source.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// column picks a uniform column in [1, width-2].
func (s *Spawner) column() int {
	return 1 + s.rng.Intn(s.width-2)
}

// TrySpawnHazard runs the hazard trial for one tick.
// A chance of 1 or more spawns on every tick.
func (s *Spawner) TrySpawnHazard(tf float64) (Hazard, bool) {
	if s.rng.Float64() >= HazardChance(tf) {
		return Hazard{}, false
	}

	lo, hi := HazardSpeedRange(tf)
	return Hazard{
		Pos:   Position{X: s.column(), Y: 0},
		Speed: lo + s.rng.Float64()*(hi-lo),
		Glyph: HazardGlyphs[s.rng.Intn(len(HazardGlyphs))],
	}, true
}

// TrySpawnPowerUp runs the power-up trial for one tick.
func (s *Spawner) TrySpawnPowerUp() (PowerUp, bool) {
	if s.rng.Float64() >= PowerUpChance {
		return PowerUp{}, false
	}

	kind := PowerKind(s.rng.Intn(int(powerKindCount)))
	return PowerUp{
		Pos:   Position{X: s.column(), Y: 0},
		Kind:  kind,
		Glyph: kind.Glyph(),
	}, true
}
