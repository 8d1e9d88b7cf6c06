// Package audio synthesizes and plays the game's sound effects.
// Sound is optional: when no output device is available the game runs
// silently through Nop.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/neruppu-daa/internal/config"
	"github.com/vovakirdan/neruppu-daa/internal/core"
)

// Player plays the sound for a game event. Play must not block the tick.
type Player interface {
	Play(e core.Event)
	Close()
}

// Nop is a Player that discards every event.
type Nop struct{}

// Play ignores the event.
func (Nop) Play(core.Event) {}

// Close does nothing.
func (Nop) Close() {}

// toneFor maps each event to its synthesizer.
var toneFor = map[core.Event]func(beep.SampleRate) beep.Streamer{
	core.EventPowerUp:  PowerUpTone,
	core.EventHit:      HitTone,
	core.EventMove:     MoveTone,
	core.EventGameOver: GameOverTone,
}

// SoundManager plays pre-rendered effects through a shared mixer.
type SoundManager struct {
	mu          sync.Mutex
	sr          beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	buffers     map[core.Event]*beep.Buffer
	initialized bool
}

// NewSoundManager creates a sound manager. Call Initialize before playing.
func NewSoundManager(sampleRate int, volume float64) *SoundManager {
	return &SoundManager{
		sr:      beep.SampleRate(sampleRate),
		volume:  volume,
		mixer:   &beep.Mixer{},
		buffers: make(map[core.Event]*beep.Buffer),
	}
}

// render synthesizes every effect into memory so Play only copies samples.
func (sm *SoundManager) render() {
	format := beep.Format{SampleRate: sm.sr, NumChannels: 2, Precision: 2}
	for e, tone := range toneFor {
		buf := beep.NewBuffer(format)
		buf.Append(newVolume(tone(sm.sr), sm.volume))
		sm.buffers[e] = buf
	}
}

// Initialize opens the output device and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.sr, sm.sr.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	sm.render()
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play starts the effect for e on top of whatever is already playing.
func (sm *SoundManager) Play(e core.Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	buf, ok := sm.buffers[e]
	if !ok {
		return
	}

	speaker.Lock()
	sm.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// Close stops all sounds and releases the output device.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// New returns a Player for the given settings. Audio failures are not
// fatal: they are logged and the game continues with Nop.
func New(cfg config.AudioConfig, muted bool, logger *log.Logger) Player {
	if muted || !cfg.Enabled || cfg.Volume <= 0 {
		logger.Debug("audio disabled", "muted", muted, "enabled", cfg.Enabled, "volume", cfg.Volume)
		return Nop{}
	}

	sm := NewSoundManager(cfg.SampleRate, cfg.Volume)
	if err := sm.Initialize(); err != nil {
		logger.Warn("running without sound", "error", err)
		return Nop{}
	}

	logger.Info("audio initialized", "sample_rate", cfg.SampleRate, "volume", cfg.Volume)
	return sm
}
