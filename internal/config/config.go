// Package config loads dashboard settings: struct defaults, overridden by
// an optional YAML file, overridden by GEOWATCH_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists where config files are searched, first hit wins
var DefaultConfigPaths = []string{
	"geowatch.yaml",
	"geowatch.yml",
}

// envPrefix is the prefix for environment overrides, e.g.
// GEOWATCH_MAP_MAXZOOM=32
const envPrefix = "GEOWATCH_"

// MapConfig holds the view and renderer tunables
type MapConfig struct {
	MinZoom   float64 `koanf:"minzoom"`
	MaxZoom   float64 `koanf:"maxzoom"`
	HoverGain float64 `koanf:"hovergain"`
	LabelPad  float64 `koanf:"labelpad"`
}

// DataConfig holds dataset locations and download behavior
type DataConfig struct {
	Dir     string `koanf:"dir"`     // Cache directory, empty for the default
	Offline bool   `koanf:"offline"` // Never download, fail soft on missing files
}

// DemoConfig toggles the scripted demo assets
type DemoConfig struct {
	Assets bool `koanf:"assets"`
}

// Config is the full application configuration
type Config struct {
	Map  MapConfig  `koanf:"map"`
	Data DataConfig `koanf:"data"`
	Demo DemoConfig `koanf:"demo"`
}

// defaultConfig returns the configuration used when nothing overrides it
func defaultConfig() *Config {
	return &Config{
		Map: MapConfig{
			MinZoom:   1.0,
			MaxZoom:   48.0,
			HoverGain: 1.5,
			LabelPad:  0,
		},
		Data: DataConfig{},
		Demo: DemoConfig{Assets: true},
	}
}

// Load builds the effective configuration. path may be empty, in which
// case the default locations are probed; a missing file is not an error,
// a malformed one is.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		for _, candidate := range DefaultConfigPaths {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate clamps and checks values the rest of the program relies on
func (c *Config) validate() error {
	if c.Map.MinZoom <= 0 {
		return fmt.Errorf("map.minzoom must be positive, got %f", c.Map.MinZoom)
	}
	if c.Map.MaxZoom < c.Map.MinZoom {
		return fmt.Errorf("map.maxzoom %f below map.minzoom %f", c.Map.MaxZoom, c.Map.MinZoom)
	}
	if c.Map.HoverGain <= 0 {
		return fmt.Errorf("map.hovergain must be positive, got %f", c.Map.HoverGain)
	}
	if c.Map.LabelPad < 0 {
		return fmt.Errorf("map.labelpad must not be negative, got %f", c.Map.LabelPad)
	}
	return nil
}
