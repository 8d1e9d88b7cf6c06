package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration and validates it.
// Search order: customPath -> ~/.neruppu/config.yaml -> ./configs/neruppu.yaml -> embedded default.
// The first file found is laid over the embedded default, so partial
// files are allowed.
func Load(customPath string) (Config, string, error) {
	cfg, err := base()
	if err != nil {
		return cfg, "", err
	}

	// Try custom path first; a missing custom file is an error
	if customPath != "" {
		if err := overlay(&cfg, customPath); err != nil {
			return cfg, "", err
		}
		return cfg, customPath, cfg.Validate()
	}

	for _, path := range []string{userConfigPath(), localConfigPath} {
		if path == "" {
			continue
		}
		err := overlay(&cfg, path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return cfg, "", err
		}
		return cfg, path, cfg.Validate()
	}

	// Use embedded default YAML
	return cfg, "", cfg.Validate()
}

const localConfigPath = "configs/neruppu.yaml"

// base parses the embedded defaults.
func base() (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// overlay reads a YAML file over cfg.
func overlay(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".neruppu", "config.yaml")
}
