package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}
	if cfg.Map.MinZoom != 1.0 || cfg.Map.MaxZoom != 48.0 {
		t.Errorf("default zoom range = [%f, %f]", cfg.Map.MinZoom, cfg.Map.MaxZoom)
	}
	if !cfg.Demo.Assets {
		t.Error("demo assets should default on")
	}
}

func TestLoadFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "geowatch.yaml")
	content := "map:\n  maxzoom: 12\n  hovergain: 3.0\ndata:\n  offline: true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Map.MaxZoom != 12 {
		t.Errorf("maxzoom = %f, want 12", cfg.Map.MaxZoom)
	}
	if cfg.Map.HoverGain != 3.0 {
		t.Errorf("hovergain = %f, want 3.0", cfg.Map.HoverGain)
	}
	if !cfg.Data.Offline {
		t.Error("offline not read from file")
	}
	// Untouched keys keep their defaults
	if cfg.Map.MinZoom != 1.0 {
		t.Errorf("minzoom = %f, want default 1.0", cfg.Map.MinZoom)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GEOWATCH_MAP_MAXZOOM", "20")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Map.MaxZoom != 20 {
		t.Errorf("maxzoom = %f, want env override 20", cfg.Map.MaxZoom)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "geowatch.yaml")
	if err := os.WriteFile(path, []byte("map:\n  maxzoom: 0.5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for maxzoom below minzoom")
	}
}
