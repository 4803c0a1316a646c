// Package runtimepath resolves where glwaffle tools look for their files.
package runtimepath

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigDir returns the glwaffle configuration directory. Priority:
// 1) $XDG_CONFIG_HOME/glwaffle (if XDG_CONFIG_HOME is set)
// 2) $HOME/.config/glwaffle
func ConfigDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "glwaffle"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "glwaffle"), nil
}

// ConfigPath returns the default configuration file path.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
