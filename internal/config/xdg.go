// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultWordListDir returns the default directory for word lists.
func DefaultWordListDir() string {
	return filepath.Join(XDGConfigHome(), "wordfind")
}

// DefaultAllWordsPath returns the default path for the full word list.
func DefaultAllWordsPath() string {
	return filepath.Join(DefaultWordListDir(), "all_words.txt")
}

// DefaultCommonWordsPath returns the default path for the common-words list.
func DefaultCommonWordsPath() string {
	return filepath.Join(DefaultWordListDir(), "common_words.txt")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "wordfind", "config.toml")
}
