// Package config loads optional ambient settings from a yaml file. The rename
// pipeline itself is driven entirely by command-line flags; the config file
// only carries defaults for logging and the ignored-extension list.
package config

import (
	"os"
	"path/filepath"

	"github.com/notoriousjere/plex-tools/internal/logging"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration.
type Config struct {
	Logging  logging.Config `yaml:"logging"`
	NonMedia []string       `yaml:"non_media"` // default ignored extensions
}

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Logging:  logging.DefaultConfig(),
		NonMedia: []string{"nfo", "txt"},
	}
}

// configPaths returns the list of paths to search for config file.
func configPaths() []string {
	paths := []string{
		".plextools.yaml",
		".plextools.yml",
	}

	// Check home config dir
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "plextools", "config.yaml"),
			filepath.Join(home, ".config", "plextools", "config.yml"),
			filepath.Join(home, ".plextools.yaml"),
		)
	}

	return paths
}

// Load loads configuration from file or returns defaults.
// Priority: env PLEXTOOLS_CONFIG > search paths > defaults
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Check env for explicit config path
	if envPath := os.Getenv("PLEXTOOLS_CONFIG"); envPath != "" {
		if err := cfg.loadFromFile(envPath); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	// Search for config file
	for _, path := range configPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := cfg.loadFromFile(path); err != nil {
				return nil, err
			}
			break
		}
	}

	return cfg, nil
}

func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

// GetNonMedia returns the default ignored extensions, applying defaults.
func (c *Config) GetNonMedia() []string {
	if len(c.NonMedia) > 0 {
		return c.NonMedia
	}
	return []string{"nfo", "txt"}
}
