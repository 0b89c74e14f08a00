package config

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigDir is the directory name under ~/.config
	ConfigDir = "renban"
)

// ConfigFiles are tried in order; the first one present wins.
var ConfigFiles = []string{"config.yaml", "config.yml", "config.json"}

// FileSystem abstracts file operations for testability
type FileSystem interface {
	UserHomeDir() (string, error)
	ReadFile(path string) ([]byte, error)
}

// ConfigFileReader implements FileSystem using the real OS for config loading
type ConfigFileReader struct{}

func (ConfigFileReader) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

func (ConfigFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Loader handles configuration loading with injected dependencies
type Loader struct {
	fs FileSystem
}

// NewLoader creates a production Loader using the real filesystem
func NewLoader() *Loader {
	return &Loader{fs: ConfigFileReader{}}
}

// NewLoaderWithFS creates a Loader with a custom filesystem (for testing)
func NewLoaderWithFS(fs FileSystem) *Loader {
	return &Loader{fs: fs}
}

// Load reads ~/.config/renban/config.yaml (or .yml, or .json) over the
// defaults. A missing file yields the defaults; unreadable, malformed or
// invalid files are errors.
//
// NOTE: Keys are decoded directly over the default configuration, so
// explicit zero values in the file override defaults.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	homeDir, err := l.fs.UserHomeDir()
	if err != nil {
		return cfg, nil // Use defaults if can't get home dir
	}

	for _, name := range ConfigFiles {
		configPath := filepath.Join(homeDir, ".config", ConfigDir, name)

		data, err := l.fs.ReadFile(configPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, &LoadError{Path: configPath, Cause: err}
		}

		if err := decode(name, data, cfg); err != nil {
			return nil, &LoadError{Path: configPath, Cause: err}
		}
		if err := cfg.Validate(); err != nil {
			return nil, &LoadError{Path: configPath, Cause: err}
		}
		return cfg, nil
	}

	return cfg, nil
}

func decode(name string, data []byte, cfg *Config) error {
	if filepath.Ext(name) == ".json" {
		return json.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

// Load is a convenience function using the default loader
func Load() (*Config, error) {
	return NewLoader().Load()
}
