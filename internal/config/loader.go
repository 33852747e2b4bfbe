package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config sources reported by LoadMiner besides file paths.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

const configFileName = "miner.yaml"

// LoadMiner loads the miner configuration and reports where it came from.
// Search order: customPath -> ~/.miner/configs/miner.yaml -> ./configs/miner.yaml -> embedded default.
// Only a broken customPath is an error; broken files further down the chain are skipped.
func LoadMiner(customPath string) (MinerConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MinerConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data, customPath)
		if err != nil {
			return MinerConfig{}, "", err
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data, userCfgPath); err == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", configFileName)
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := Parse(data, localPath); err == nil {
			return cfg, localPath, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultMinerYAML, SourceEmbedded)
	if err != nil {
		return DefaultMinerConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML over the built-in defaults, so partial files only
// override the keys they set, and validates the result.
func Parse(data []byte, source string) (MinerConfig, error) {
	cfg := DefaultMinerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MinerConfig{}, fmt.Errorf("config: failed to parse %s: %w", source, err)
	}
	fillAssetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return MinerConfig{}, fmt.Errorf("config: invalid %s: %w", source, err)
	}
	return cfg, nil
}

// fillAssetDefaults restores glyphs and colors a file left out of an asset.
// yaml.v3 decodes each map value into a zero AssetConfig.
func fillAssetDefaults(cfg *MinerConfig) {
	for name, def := range DefaultMinerConfig().Assets {
		a, ok := cfg.Assets[name]
		if !ok {
			continue
		}
		if a.Glyph == "" {
			a.Glyph = def.Glyph
		}
		if a.Color == "" {
			a.Color = def.Color
		}
		cfg.Assets[name] = a
	}
}

// Marshal renders cfg as YAML.
func Marshal(cfg MinerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".miner", "configs", filename)
}
