// Package config provides YAML-based configuration loading for the miner's
// presentation layer: controls, effect timings, display and asset glyphs.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-miner/internal/core"
)

// MinerConfig contains all configuration for the mining game.
type MinerConfig struct {
	Controls ControlsConfig         `yaml:"controls"`
	Effects  EffectsConfig          `yaml:"effects"`
	Display  DisplayConfig          `yaml:"display"`
	Assets   map[string]AssetConfig `yaml:"assets"`
}

// ControlsConfig tunes input handling.
type ControlsConfig struct {
	DigCooldownMS int `yaml:"dig_cooldown_ms"` // Minimum time between two digs
}

// EffectsConfig defines tween durations (seconds) and magnitudes.
type EffectsConfig struct {
	MoveDuration  float64 `yaml:"move_duration"`
	DigDuration   float64 `yaml:"dig_duration"` // One half of the pulse
	DigScale      float64 `yaml:"dig_scale"`    // Peak pulse scale
	BreakDuration float64 `yaml:"break_duration"`
	BreakRise     float64 `yaml:"break_rise"` // Cells the debris rises while fading
}

// DisplayConfig defines how the world is laid out on screen.
type DisplayConfig struct {
	CellWidth   int     `yaml:"cell_width"` // Characters per grid cell
	ShowClouds  bool    `yaml:"show_clouds"`
	CloudDrift  float64 `yaml:"cloud_drift"` // Cloud offset per player column
	ShadeBlocks bool    `yaml:"shade_blocks"`
}

// AssetConfig is the terminal rendition of a named visual asset.
type AssetConfig struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// AssetNames lists every asset the renderer looks up.
var AssetNames = []string{"dirt", "stone", "iron", "gold", "diamond", "player", "background", "clouds"}

// Rune returns the first rune of the glyph, or '?' when empty.
func (a AssetConfig) Rune() rune {
	r, _ := utf8.DecodeRuneInString(a.Glyph)
	if r == utf8.RuneError {
		return '?'
	}
	return r
}

// ColorValue resolves the configured color name.
func (a AssetConfig) ColorValue() core.Color {
	c, _ := core.ParseColor(a.Color)
	return c
}

// Validate reports every problem in the configuration at once.
func (c MinerConfig) Validate() error {
	var errs []error

	if c.Controls.DigCooldownMS < 0 {
		errs = append(errs, fmt.Errorf("controls.dig_cooldown_ms must be >= 0, got %d", c.Controls.DigCooldownMS))
	}
	durations := map[string]float64{
		"effects.move_duration":  c.Effects.MoveDuration,
		"effects.dig_duration":   c.Effects.DigDuration,
		"effects.break_duration": c.Effects.BreakDuration,
	}
	for _, name := range []string{"effects.move_duration", "effects.dig_duration", "effects.break_duration"} {
		if durations[name] <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %v", name, durations[name]))
		}
	}
	if c.Effects.BreakRise < 0 {
		errs = append(errs, fmt.Errorf("effects.break_rise must be >= 0, got %v", c.Effects.BreakRise))
	}
	if c.Display.CloudDrift < 0 {
		errs = append(errs, fmt.Errorf("display.cloud_drift must be >= 0, got %v", c.Display.CloudDrift))
	}
	if c.Effects.DigScale < 1 {
		errs = append(errs, fmt.Errorf("effects.dig_scale must be >= 1, got %v", c.Effects.DigScale))
	}
	if c.Display.CellWidth < 1 || c.Display.CellWidth > 4 {
		errs = append(errs, fmt.Errorf("display.cell_width must be in [1, 4], got %d", c.Display.CellWidth))
	}
	for _, name := range AssetNames {
		asset, ok := c.Assets[name]
		if !ok {
			errs = append(errs, fmt.Errorf("assets.%s is missing", name))
			continue
		}
		if asset.Glyph == "" {
			errs = append(errs, fmt.Errorf("assets.%s.glyph is empty", name))
		}
		if _, ok := core.ParseColor(asset.Color); !ok {
			errs = append(errs, fmt.Errorf("assets.%s.color: unknown color %q", name, asset.Color))
		}
	}

	return errors.Join(errs...)
}
