package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// partial is one decaying sine voice inside a tone. It sounds from start
// until end (zero end means the whole tone) and decays as exp(-decay*(t-start)).
type partial struct {
	freq  float64
	amp   float64
	decay float64
	start float64
	end   float64
}

// toneGenerator sums its partials for a fixed number of samples.
type toneGenerator struct {
	sr       beep.SampleRate
	partials []partial
	pos      int
	length   int
}

func newTone(sr beep.SampleRate, d time.Duration, partials ...partial) *toneGenerator {
	return &toneGenerator{
		sr:       sr,
		partials: partials,
		length:   sr.N(d),
	}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.length {
			return i, i > 0
		}

		t := float64(g.pos) / float64(g.sr)
		sample := 0.0
		for _, p := range g.partials {
			if t < p.start || (p.end > 0 && t >= p.end) {
				continue
			}
			sample += p.amp * math.Exp(-p.decay*(t-p.start)) * math.Sin(2*math.Pi*p.freq*t)
		}
		sample = clip(sample)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}

func clip(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// PowerUpTone is a bright ascending C-major arpeggio (C5 E5 G5 C6).
func PowerUpTone(sr beep.SampleRate) beep.Streamer {
	return newTone(sr, 400*time.Millisecond,
		partial{freq: 523, amp: 0.3, decay: 8},
		partial{freq: 659, amp: 0.3, decay: 6, start: 0.1},
		partial{freq: 784, amp: 0.3, decay: 4, start: 0.2},
		partial{freq: 1047, amp: 0.2, decay: 2, start: 0.3},
	)
}

// HitTone is a harsh low tone with a slow decay.
func HitTone(sr beep.SampleRate) beep.Streamer {
	return newTone(sr, 400*time.Millisecond,
		partial{freq: 150, amp: 0.6, decay: 2},
	)
}

// MoveTone is a short quiet blip.
func MoveTone(sr beep.SampleRate) beep.Streamer {
	return newTone(sr, 100*time.Millisecond,
		partial{freq: 800, amp: 0.2, decay: 5},
	)
}

// GameOverTone descends through A minor, D minor and a low F/A dyad.
func GameOverTone(sr beep.SampleRate) beep.Streamer {
	var ps []partial
	for _, f := range []float64{220, 261, 329} {
		ps = append(ps, partial{freq: f, amp: 0.3, decay: 3, end: 0.4})
	}
	for _, f := range []float64{146, 174, 220} {
		ps = append(ps, partial{freq: f, amp: 0.4, decay: 2, start: 0.4, end: 0.8})
	}
	for _, f := range []float64{87, 110} {
		ps = append(ps, partial{freq: f, amp: 0.5, decay: 1, start: 0.8})
	}
	return newTone(sr, 1200*time.Millisecond, ps...)
}

// newVolume scales a streamer linearly. Zero or less is silent since
// effects.Volume works in log2 space.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
