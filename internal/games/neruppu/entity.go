package neruppu

import "github.com/vovakirdan/neruppu-daa/internal/core"

// Field geometry. The border occupies columns 0 and FieldWidth-1.
const (
	FieldWidth  = 60
	FieldHeight = 20
	PlayerRow   = FieldHeight - 2
	MinPlayerX  = 1
	MaxPlayerX  = FieldWidth - 2
	MoveStep    = 2 // Columns moved per tick while a move key is held
	StartLives  = 1 // Hardcore: one hit ends the run
)

// Position is a location in the field. Columns are whole cells; falling
// entities keep a fractional row so slow speeds still accumulate.
type Position struct {
	X int
	Y float64
}

// Row returns the integer row the position occupies.
func (p Position) Row() int {
	return int(p.Y)
}

// HazardGlyphs is the fixed fire & brimstone alphabet.
var HazardGlyphs = []rune{'o', 'O', '^', 'v', 'x', '%', '&', '~'}

// Hazard is a falling obstacle that costs the life or the shield on contact.
type Hazard struct {
	Pos   Position
	Speed float64 // Rows per tick before slow motion
	Glyph rune
}

// PowerKind identifies the effect a power-up grants.
type PowerKind int

const (
	PowerDoublePoints PowerKind = iota
	PowerExtraLife
	PowerSlowMotion
	PowerShield
	powerKindCount // Sentinel for counting kinds
)

// Glyph returns the display character for a power-up kind.
func (k PowerKind) Glyph() rune {
	switch k {
	case PowerDoublePoints:
		return '*'
	case PowerExtraLife:
		return '+'
	case PowerSlowMotion:
		return '!'
	case PowerShield:
		return '#'
	default:
		return '?'
	}
}

// String returns the name of the power-up kind.
func (k PowerKind) String() string {
	switch k {
	case PowerDoublePoints:
		return "double_points"
	case PowerExtraLife:
		return "extra_life"
	case PowerSlowMotion:
		return "slow_motion"
	case PowerShield:
		return "shield"
	default:
		return "unknown"
	}
}

// PowerUp is a falling pickup.
type PowerUp struct {
	Pos   Position
	Kind  PowerKind
	Glyph rune
}

// Player is the avatar on the bottom row.
type Player struct {
	X int
	Y int
}

// newPlayer places the player at the centre of its row.
func newPlayer() Player {
	return Player{X: FieldWidth / 2, Y: PlayerRow}
}

// Move shifts the player horizontally, clamped to the playable columns.
// Returns true if the column changed.
func (p *Player) Move(dx int) bool {
	old := p.X
	p.X = core.Clamp(p.X+dx, MinPlayerX, MaxPlayerX)
	return p.X != old
}

// Effect durations in ticks.
const (
	DoublePointsTicks = 180
	SlowMotionTicks   = 120
)

// Effects holds the active power-up effects. A timed flag is true exactly
// while its timer is positive; the shield has no timer.
type Effects struct {
	DoublePoints bool
	DoubleTimer  int
	SlowMotion   bool
	SlowTimer    int
	Shield       bool
}

// Apply activates the effect of a collected power-up.
// Re-collecting a timed effect restarts its timer instead of extending it.
func (e *Effects) Apply(kind PowerKind) {
	switch kind {
	case PowerDoublePoints:
		e.DoublePoints = true
		e.DoubleTimer = DoublePointsTicks
	case PowerExtraLife:
		// Max life is one, so the extra life becomes a shield
		e.Shield = true
	case PowerSlowMotion:
		e.SlowMotion = true
		e.SlowTimer = SlowMotionTicks
	case PowerShield:
		e.Shield = true
	}
}

// Tick counts down the timed effects.
func (e *Effects) Tick() {
	if e.DoubleTimer > 0 {
		e.DoubleTimer--
	}
	e.DoublePoints = e.DoubleTimer > 0

	if e.SlowTimer > 0 {
		e.SlowTimer--
	}
	e.SlowMotion = e.SlowTimer > 0
}

// FallMultiplier scales every fall speed.
func (e Effects) FallMultiplier() float64 {
	if e.SlowMotion {
		return 0.5
	}
	return 1.0
}

// SurvivalPoints is the score earned for surviving one tick.
func (e Effects) SurvivalPoints() int {
	if e.DoublePoints {
		return 3
	}
	return 2
}
