// Package config provides the configuration directory and optional
// config file for prompt-merge. Nothing in it is required for operation;
// all values have working defaults.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the prompt-merge configuration directory.
//
// Resolution:
//   - $PROMPT_MERGE_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/prompt-merge if set (respects XDG on any platform)
//   - %AppData%/prompt-merge on Windows
//   - ~/.config/prompt-merge on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("PROMPT_MERGE_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "prompt-merge")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "prompt-merge")
		}
	}

	// macOS and Linux: ~/.config/prompt-merge
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "prompt-merge")
}
