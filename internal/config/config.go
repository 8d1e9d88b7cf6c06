// Package config provides YAML-based configuration loading for Neruppu Daa.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neruppu-daa/internal/core"
	"github.com/vovakirdan/neruppu-daa/internal/input"
)

// Config contains every user-tunable setting. Gameplay constants are not
// configurable.
type Config struct {
	Audio AudioConfig `yaml:"audio"`
	Input InputConfig `yaml:"input"`
	Keys  KeysConfig  `yaml:"keys"`
	Log   LogConfig   `yaml:"log"`
}

// AudioConfig defines the synthesized sound output.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"` // 0.0 = silent, 1.0 = full scale
}

// InputConfig defines how terminal key presses become held keys and actions.
type InputConfig struct {
	HoldMS     int `yaml:"hold_ms"`     // How long a press counts as held
	DebounceMS int `yaml:"debounce_ms"` // Minimum gap between two identical actions
}

// Hold returns the hold window as a duration.
func (c InputConfig) Hold() time.Duration {
	return time.Duration(c.HoldMS) * time.Millisecond
}

// Debounce returns the action debounce gap as a duration.
func (c InputConfig) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// KeysConfig maps a game key name (see core.Key) to the terminal key
// strings that produce it.
type KeysConfig map[string][]string

// LogConfig defines where diagnostics go while the TUI owns the terminal.
type LogConfig struct {
	File  string `yaml:"file"`  // Empty disables logging during play
	Level string `yaml:"level"` // debug, info, warn, error
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("config: audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: audio.volume must be within [0, 1], got %g", c.Audio.Volume)
	}
	if c.Input.HoldMS < 0 {
		return fmt.Errorf("config: input.hold_ms must not be negative, got %d", c.Input.HoldMS)
	}
	if c.Input.Debounce() < input.DebounceGap {
		return fmt.Errorf("config: input.debounce_ms must be at least %d, got %d",
			input.DebounceGap.Milliseconds(), c.Input.DebounceMS)
	}

	for name := range c.Keys {
		if _, ok := core.ParseKey(name); !ok {
			return fmt.Errorf("config: unknown key %q", name)
		}
	}
	for _, k := range core.Keys {
		if len(c.Keys[k.String()]) == 0 {
			return fmt.Errorf("config: key %q has no bindings", k)
		}
	}

	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("config: log.level: %w", err)
		}
	}
	return nil
}

// ParseLevel returns the parsed log level, defaulting to info.
func (c LogConfig) ParseLevel() log.Level {
	lvl, err := log.ParseLevel(c.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
