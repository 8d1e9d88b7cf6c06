package neruppu

import (
	"math"

	"github.com/vovakirdan/neruppu-daa/internal/core"
)

// Difficulty is driven by a single ramp over elapsed playing ticks.
// Every knob is a closed-form function of the time factor.
const (
	RampTicks     = 300 // Ticks for the time factor to grow by 1.0
	MaxTimeFactor = 3.0

	BaseHazardChance = 0.70
	HazardChanceGain = 0.27

	BaseMinSpeed = 0.8
	MinSpeedGain = 0.2
	BaseMaxSpeed = 1.5
	MaxSpeedGain = 0.5

	PowerUpChance    = 0.04
	PowerUpFallSpeed = 0.6
	PowerUpPoints    = 50
)

// TimeFactor returns the difficulty ramp for a frame count, in [0, 3].
func TimeFactor(frame int) float64 {
	return core.ClampF(float64(frame)/RampTicks, 0, MaxTimeFactor)
}

// HazardChance returns the per-tick hazard spawn probability.
func HazardChance(tf float64) float64 {
	return BaseHazardChance + HazardChanceGain*tf
}

// HazardSpeedRange returns the bounds hazard speeds are sampled from.
func HazardSpeedRange(tf float64) (lo, hi float64) {
	return BaseMinSpeed + MinSpeedGain*tf, BaseMaxSpeed + MaxSpeedGain*tf
}

// Level returns the displayed difficulty level, 1 through 16.
func Level(tf float64) int {
	return int(math.Floor(tf*5)) + 1
}
