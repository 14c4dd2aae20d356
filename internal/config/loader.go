package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".seoreport"

// xdgConfigFile is the configuration file name inside XDGConfigDir.
const xdgConfigFile = "config.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	// Initialize Sites map if nil
	if cf.Sites == nil {
		cf.Sites = make(map[string]SiteConfig)
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .seoreport in the current directory
// 3. Look for .seoreport in the user's home directory
// 4. Look for config.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), xdgConfigFile))

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}

	return ""
}

// Apply overlays the non-zero settings of a config file onto c and keeps the
// file for per-site lookups.
func (c *Config) Apply(cf *File) {
	if cf == nil {
		return
	}

	if cf.ReportsDir != "" {
		c.ReportsDir = expandHome(cf.ReportsDir)
	}
	if cf.FallbackDir != "" {
		c.FallbackDir = expandHome(cf.FallbackDir)
	}
	if cf.Format != "" {
		c.Format = cf.Format
	}
	if cf.PageSize != "" {
		c.PageSize = cf.PageSize
	}
	if cf.PlanName != "" {
		c.PlanName = cf.PlanName
	}
	if cf.Title != "" {
		c.Title = cf.Title
	}
	if cf.BatchSize != 0 {
		c.BatchSize = cf.BatchSize
	}
	if cf.Verbose {
		c.Verbose = true
	}

	c.SiteConfigs = cf
}

// Load builds a Config from defaults and the configuration file found by
// FindConfigFile. A missing file is only an error when configPath was given
// explicitly.
func Load(configPath string) (*Config, error) {
	cfg := NewConfig()
	cfg.ConfigFilePath = configPath

	path := FindConfigFile(configPath)
	if path == "" {
		if configPath != "" {
			return nil, ErrConfigNotFound
		}
		return cfg, nil
	}

	cf, err := LoadConfigFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Apply(cf)
	cfg.ConfigFilePath = path

	return cfg, nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
