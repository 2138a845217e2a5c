// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Lists  ListsConfig  `toml:"lists"`
	Filter FilterConfig `toml:"filter"`
}

// ListsConfig maps word list locations.
type ListsConfig struct {
	AllWords    *string `toml:"all-words"`
	CommonWords *string `toml:"common-words"`
}

// FilterConfig maps filter-related settings.
type FilterConfig struct {
	CommonOnly *bool `toml:"common-only"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
