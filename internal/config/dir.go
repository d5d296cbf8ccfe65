// Package config assembles the settings of a snitch run from defaults and
// YAML files.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the snitch configuration directory.
//
// Resolution:
//   - $SNITCH_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/snitch if set (respects XDG on any platform)
//   - %AppData%/snitch on Windows
//   - ~/.config/snitch on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("SNITCH_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "snitch")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "snitch")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "snitch")
}

// Per-project config files, read from the working directory.
const (
	LocalFile     = ".snitch.yaml"
	LocalTOMLFile = ".snitch.toml"
)

// Paths returns the config files consulted, lowest precedence first. An
// explicit path is appended last.
func Paths(explicit string) []string {
	var paths []string
	if dir := Dir(); dir != "" {
		paths = append(paths, filepath.Join(dir, "config.yaml"), filepath.Join(dir, "config.toml"))
	}
	paths = append(paths, LocalFile, LocalTOMLFile)
	if explicit != "" {
		paths = append(paths, explicit)
	}
	return paths
}
