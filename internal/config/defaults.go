package config

import (
	_ "embed"
)

//go:embed defaults/miner.yaml
var defaultMinerYAML []byte

// DefaultMinerConfig returns the hardcoded miner configuration.
// It matches defaults/miner.yaml.
func DefaultMinerConfig() MinerConfig {
	return MinerConfig{
		Controls: ControlsConfig{
			DigCooldownMS: 150,
		},
		Effects: EffectsConfig{
			MoveDuration:  0.2,
			DigDuration:   0.1,
			DigScale:      1.2,
			BreakDuration: 0.3,
			BreakRise:     0.3,
		},
		Display: DisplayConfig{
			CellWidth:   2,
			ShowClouds:  true,
			CloudDrift:  0.2,
			ShadeBlocks: true,
		},
		Assets: map[string]AssetConfig{
			"dirt":       {Glyph: "█", Color: "brown"},
			"stone":      {Glyph: "█", Color: "gray"},
			"iron":       {Glyph: "█", Color: "orange"},
			"gold":       {Glyph: "█", Color: "bright_yellow"},
			"diamond":    {Glyph: "█", Color: "bright_cyan"},
			"player":     {Glyph: "@", Color: "bright_white"},
			"background": {Glyph: "·", Color: "blue"},
			"clouds":     {Glyph: "☁", Color: "white"},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultMinerYAML
}
