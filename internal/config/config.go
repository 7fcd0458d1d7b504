package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Workspace string `koanf:"workspace"` // startup workspace root, empty means use cwd

	// Terminal cells are coarse; layout geometry is kept in finer units so
	// clamping and breakpoints stay stable across cell granularities.
	UnitsPerCell int `koanf:"units_per_cell"` // layout units per terminal cell (1-16, default: 8)

	Mouse *bool `koanf:"mouse"` // mouse capture for divider dragging (default: true)
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in workspace
	if cfg.Workspace != "" {
		cfg.Workspace = expandPath(cfg.Workspace)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/atelier/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "atelier", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetUnitsPerCell returns the cell-to-unit scale with defaults applied.
func (c *Config) GetUnitsPerCell() int {
	if c.UnitsPerCell <= 0 || c.UnitsPerCell > 16 {
		return 8
	}
	return c.UnitsPerCell
}

// MouseEnabled returns true unless mouse capture was explicitly disabled.
func (c *Config) MouseEnabled() bool {
	return c.Mouse == nil || *c.Mouse
}
