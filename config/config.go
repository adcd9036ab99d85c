// Package config loads and persists planar's editor tunables.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds planar configuration.
type Config struct {
	Editor EditorConfig `toml:"editor"`
	View   ViewConfig   `toml:"view"`
}

// EditorConfig controls interaction tuning.
type EditorConfig struct {
	HandleTolerance float64 `toml:"handle_tolerance"` // resize pick radius, px at zoom 1
	MinSize         float64 `toml:"min_size"`         // smallest resizable dimension
	ScaleFloor      float64 `toml:"scale_floor"`
	ScaleCeiling    float64 `toml:"scale_ceiling"`
	ScaleStep       float64 `toml:"scale_step"`  // ScaleSelected delta per keypress
	RotateStep      float64 `toml:"rotate_step"` // degrees per rotate action
}

// ViewConfig controls the viewport.
type ViewConfig struct {
	ZoomMin  float64 `toml:"zoom_min"`
	ZoomMax  float64 `toml:"zoom_max"`
	ZoomStep float64 `toml:"zoom_step"` // zoom multiplier per wheel notch
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			HandleTolerance: 8,
			MinSize:         4,
			ScaleFloor:      0.05,
			ScaleCeiling:    20,
			ScaleStep:       0.1,
			RotateStep:      90,
		},
		View: ViewConfig{
			ZoomMin:  0.1,
			ZoomMax:  10,
			ZoomStep: 1.25,
		},
	}
}

// ConfigDir returns the planar config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "planar")
}

func configPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, falling back to defaults if it doesn't
// exist or fails to parse.
func Load() *Config {
	cfg := Default()

	data, err := os.ReadFile(configPath())
	if err != nil {
		return cfg
	}

	_ = toml.Unmarshal(data, cfg)
	return cfg
}

// Save writes the config to disk.
func Save(cfg *Config) error {
	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
