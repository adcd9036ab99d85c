package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Editor.HandleTolerance != 8 {
		t.Errorf("HandleTolerance = %v, want 8", cfg.Editor.HandleTolerance)
	}
	if cfg.Editor.MinSize != 4 {
		t.Errorf("MinSize = %v, want 4", cfg.Editor.MinSize)
	}
	if cfg.View.ZoomMin >= cfg.View.ZoomMax {
		t.Errorf("zoom range [%v, %v] is empty", cfg.View.ZoomMin, cfg.View.ZoomMax)
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Load()
	if cfg.Editor.HandleTolerance != Default().Editor.HandleTolerance {
		t.Error("missing config file should produce defaults")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.Editor.HandleTolerance = 12
	cfg.View.ZoomMax = 42

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded := Load()
	if loaded.Editor.HandleTolerance != 12 {
		t.Errorf("HandleTolerance = %v, want 12", loaded.Editor.HandleTolerance)
	}
	if loaded.View.ZoomMax != 42 {
		t.Errorf("ZoomMax = %v, want 42", loaded.View.ZoomMax)
	}
}

func TestLoadPartialFileKeepsOtherDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "planar", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[editor]\nmin_size = 9.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load()
	if cfg.Editor.MinSize != 9 {
		t.Errorf("MinSize = %v, want 9", cfg.Editor.MinSize)
	}
	if cfg.View.ZoomStep != Default().View.ZoomStep {
		t.Error("unset keys should keep their defaults")
	}
}
