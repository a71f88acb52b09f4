package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/promptmerge/internal/output"
)

// Defaults used when neither a flag nor the config file supplies a value.
const (
	DefaultTemplatesDir = "templates"
	DefaultOutput       = "CLAUDE.md"
)

// File holds the optional config.yaml values. Flags always take precedence
// over file values; file values take precedence over the built-in defaults.
type File struct {
	// TemplatesDir is the root directory scanned for templates.
	TemplatesDir string `yaml:"templates_dir,omitempty"`
	// Output is the default merge output path.
	Output string `yaml:"output,omitempty"`
}

// Load reads config.yaml from the configuration directory.
// A missing file is not an error and yields the zero File; a file that
// cannot be read or parsed is a configuration error.
func Load() (*File, error) {
	return loadFrom(filepath.Join(Dir(), "config.yaml"))
}

// loadFrom reads and parses a config file at an explicit path.
func loadFrom(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, output.NewConfigError("reading config file " + path + ": " + err.Error())
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, output.NewConfigError("parsing config file " + path + ": " + err.Error())
	}
	return &f, nil
}

// Resolve returns value if non-empty, then the file value, then fallback.
func Resolve(value, fileValue, fallback string) string {
	if value != "" {
		return value
	}
	if fileValue != "" {
		return fileValue
	}
	return fallback
}
