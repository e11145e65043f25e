// Package config provides the server's configuration directory and
// settings file.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the gitmcp configuration directory.
//
// Resolution:
//   - $GITMCP_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/gitmcp if set (respects XDG on any platform)
//   - %AppData%/gitmcp on Windows
//   - ~/.config/gitmcp on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("GITMCP_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gitmcp")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "gitmcp")
		}
	}

	// macOS and Linux: ~/.config/gitmcp
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gitmcp")
}
