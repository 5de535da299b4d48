// Package fs reads selected files from the local filesystem.
package fs

import (
	"os"
	"path/filepath"
)

// DefaultConfigDir returns the configuration directory for chunkview.
// Uses XDG_CONFIG_HOME if set, otherwise falls back to ~/.config/chunkview,
// or an empty string if home is unavailable.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "chunkview")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "chunkview")
}
