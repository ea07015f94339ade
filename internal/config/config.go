// Package config reads and writes the s2k user configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the in-memory representation of ~/.s2k/config.yaml.
type Config struct {
	// Datasets are MIB dataset directories, searched in order. Later
	// datasets merge over earlier ones during the index build.
	Datasets []string `yaml:"datasets"`

	// DefaultLimit caps search results when -k is not given.
	DefaultLimit int `yaml:"default_limit,omitempty"`

	// TxpCommandSide additionally applies TXP text labels to command
	// parameters keyed by parameter ID. Off by default; some ground
	// datasets need it.
	TxpCommandSide bool `yaml:"txp_command_side,omitempty"`
}

// S2kDir returns the absolute path to ~/.s2k/.
func S2kDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".s2k"), nil
}

// ConfigPath returns the absolute path to ~/.s2k/config.yaml.
func ConfigPath() (string, error) {
	dir, err := S2kDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// CacheDir returns the absolute path to ~/.s2k/cache/.
func CacheDir() (string, error) {
	dir, err := S2kDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cache"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the configuration written on first save.
func DefaultConfig() *Config {
	return &Config{
		Datasets:     []string{},
		DefaultLimit: 10,
	}
}

// Load reads and parses ~/.s2k/config.yaml. A missing file yields the
// default configuration; callers that need a dataset check for one
// themselves, since -d can supply it without any config.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 10
	}
	for i, d := range cfg.Datasets {
		cfg.Datasets[i], err = ExpandPath(d)
		if err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// Save marshals cfg and writes it to ~/.s2k/config.yaml, creating the
// directory if needed.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}
