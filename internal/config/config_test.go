package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded defaults drifted from Default():\n%+v\n%+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestInputDurations(t *testing.T) {
	in := InputConfig{HoldMS: 150, DebounceMS: 300}
	if in.Hold() != 150*time.Millisecond {
		t.Errorf("unexpected hold %v", in.Hold())
	}
	if in.Debounce() != 300*time.Millisecond {
		t.Errorf("unexpected debounce %v", in.Debounce())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero sample rate", func(c *Config) { c.Audio.SampleRate = 0 }, true},
		{"volume too loud", func(c *Config) { c.Audio.Volume = 1.5 }, true},
		{"negative volume", func(c *Config) { c.Audio.Volume = -0.1 }, true},
		{"silent volume", func(c *Config) { c.Audio.Volume = 0 }, false},
		{"negative hold", func(c *Config) { c.Input.HoldMS = -1 }, true},
		{"negative debounce", func(c *Config) { c.Input.DebounceMS = -1 }, true},
		{"no debounce", func(c *Config) { c.Input.DebounceMS = 0 }, true},
		{"debounce below minimum", func(c *Config) { c.Input.DebounceMS = 100 }, true},
		{"longer debounce", func(c *Config) { c.Input.DebounceMS = 500 }, false},
		{"unknown key", func(c *Config) { c.Keys["jump"] = []string{"w"} }, true},
		{"unbound key", func(c *Config) { c.Keys["quit"] = nil }, true},
		{"missing key", func(c *Config) { delete(c.Keys, "restart") }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"empty log level", func(c *Config) { c.Log.Level = "" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// isolate points the search paths at empty temporary directories.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if source != "" {
		t.Errorf("expected the embedded default, got %q", source)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadPartialOverlay(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "audio:\n  volume: 0.8\nkeys:\n  quit: [\"x\"]\n")

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if source != path {
		t.Errorf("expected source %q, got %q", path, source)
	}
	if cfg.Audio.Volume != 0.8 {
		t.Errorf("expected volume 0.8, got %g", cfg.Audio.Volume)
	}
	if cfg.Audio.SampleRate != 44100 || !cfg.Audio.Enabled {
		t.Errorf("unset audio fields should keep defaults, got %+v", cfg.Audio)
	}
	if !reflect.DeepEqual(cfg.Keys["quit"], []string{"x"}) {
		t.Errorf("quit should be rebound, got %v", cfg.Keys["quit"])
	}
	if !reflect.DeepEqual(cfg.Keys["left"], []string{"left"}) {
		t.Errorf("other bindings should keep defaults, got %v", cfg.Keys["left"])
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)
	writeFile(t, filepath.Join(work, "configs", "neruppu.yaml"), "input:\n  hold_ms: 200\n")

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if source != "configs/neruppu.yaml" || cfg.Input.HoldMS != 200 {
		t.Errorf("expected the local file, got %q with hold %d", source, cfg.Input.HoldMS)
	}

	userPath := filepath.Join(home, ".neruppu", "config.yaml")
	writeFile(t, userPath, "input:\n  hold_ms: 250\n")

	cfg, source, err = Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if source != userPath || cfg.Input.HoldMS != 250 {
		t.Errorf("expected the user file to win, got %q with hold %d", source, cfg.Input.HoldMS)
	}
}

func TestLoadErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("a missing custom file should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	writeFile(t, broken, "audio: [not, a, map\n")
	if _, _, err := Load(broken); err == nil {
		t.Error("invalid YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "audio:\n  sample_rate: -1\n")
	if _, _, err := Load(invalid); err == nil {
		t.Error("an invalid value should fail validation")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("marshalled config does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("round trip changed the config: %+v", cfg)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"warn", log.WarnLevel},
		{"", log.InfoLevel},
		{"nonsense", log.InfoLevel},
	}

	for _, tc := range tests {
		if got := (LogConfig{Level: tc.level}).ParseLevel(); got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, expected %v", tc.level, got, tc.want)
		}
	}
}
