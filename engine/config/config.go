// Package config loads the engine's TOML-described startup configuration
// (window geometry, entity budget, GPU backend selection, asset paths),
// generalizing the teacher's hardcoded ApplicationConfig into a
// file-loadable one in the teacher's own dependency.
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/animacore/engine/core"
)

// WindowConfig describes the initial window geometry and title.
type WindowConfig struct {
	Title  string `toml:"title"`
	X      uint32 `toml:"x"`
	Y      uint32 `toml:"y"`
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`
}

// EngineConfig is the root configuration document: window geometry, ECS
// entity budget, GPU backend selection, and the asset base path render
// systems and the asset registry resolve relative paths against.
type EngineConfig struct {
	Window        WindowConfig `toml:"window"`
	MaxEntities   int          `toml:"max_entities"`
	Backend       string       `toml:"backend"`
	AssetBasePath string       `toml:"asset_base_path"`
}

// DefaultEngineConfig mirrors the teacher's hardcoded ApplicationConfig
// defaults, used when no config file is supplied.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Window: WindowConfig{
			Title:  "animacore",
			Width:  1280,
			Height: 720,
		},
		MaxEntities:   5000,
		Backend:       "gl45",
		AssetBasePath: "assets",
	}
}

// Load decodes a TOML file at path into an EngineConfig. A missing or
// malformed file fails with core.KindFileNotFound / core.KindInvalidValue
// rather than silently falling back to defaults, so misconfiguration is
// caught at startup.
func Load(path string) (*EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.NewError(core.KindFileNotFound, "config: %v", err)
	}

	cfg := DefaultEngineConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, core.NewError(core.KindInvalidValue, "config: invalid toml in %s: %v", path, err)
	}
	return &cfg, nil
}
