package config

import (
	_ "embed"
)

//go:embed defaults/neruppu.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.3,
		},
		Input: InputConfig{
			HoldMS:     150,
			DebounceMS: 300,
		},
		Keys: KeysConfig{
			"left":    {"left"},
			"right":   {"right"},
			"a":       {"a", "A"},
			"d":       {"d", "D"},
			"space":   {" "},
			"quit":    {"q", "Q", "esc"},
			"restart": {"r", "R"},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
