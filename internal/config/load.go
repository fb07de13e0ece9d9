package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags. The result
// is validated; a malformed file aborts here, before anything starts moving.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "DeskPet")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "DeskPet")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "deskpet")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "deskpet")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// normalize fills the built-in sprite set when the file defines none, and
// per-state defaults the file format allows to be omitted: one frame, 8 fps,
// horizontal layout.
func (c *Config) normalize() {
	if len(c.Sprites.States) == 0 {
		c.Sprites.States = map[string]SpriteState{
			"idle": {File: "idle.png"},
			"jump": {File: "jump.png"},
		}
	}
	for name, state := range c.Sprites.States {
		if state.Frames < 1 {
			state.Frames = 1
		}
		if state.FPS < 1 {
			state.FPS = 8
		}
		if state.Layout == "" {
			state.Layout = "horizontal"
		}
		c.Sprites.States[name] = state
	}
}
