package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDecodesTOMLOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.toml")
	contents := `
max_entities = 2000
backend = "gl45"
asset_base_path = "game-assets"

[window]
title = "demo"
width = 1920
height = 1080
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxEntities != 2000 {
		t.Fatalf("expected max_entities 2000, got %d", cfg.MaxEntities)
	}
	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Fatalf("expected 1920x1080 window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.AssetBasePath != "game-assets" {
		t.Fatalf("expected asset_base_path override, got %q", cfg.AssetBasePath)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load("/nonexistent/engine.toml"); err == nil {
		t.Fatalf("expected error loading a missing config file")
	}
}

func TestLoadMalformedTOMLFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("not = [valid"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error loading malformed toml")
	}
}
