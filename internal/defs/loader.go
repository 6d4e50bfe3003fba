// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadGameConfig reads a game config file. YAML (.yaml/.yml) and JSON (.json) are supported.
// The result is validated before it is returned.
func LoadGameConfig(path string) (*GameConfig, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file: %w", err)
	}

	cfg, err := ParseGameConfig(file, filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	log.Printf("Loaded game config %s: %d tiers, %d turrets, %d waves", path, len(cfg.Tiers), len(cfg.Turrets), len(cfg.Waves))
	return cfg, nil
}

// ParseGameConfig decodes raw config bytes. ext selects the format (".json", ".yaml", ".yml").
func ParseGameConfig(data []byte, ext string) (*GameConfig, error) {
	var cfg GameConfig
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game config json: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game config yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported game config format %q", ext)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
