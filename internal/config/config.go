// ABOUTME: Fitlog configuration management with backend selection.
// ABOUTME: Handles settings, preferences, and the storage backend factory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/fitlog/internal/storage"
)

// Config stores fitlog configuration.
type Config struct {
	// Backend selects the storage backend: "badger" (default), "sqlite",
	// or "file".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage. Badger puts its
	// value log under badger/, sqlite puts fitlog.db here, and the file
	// backend puts activities/ and goals/ folders here. Supports ~
	// expansion for home directory. Defaults to ~/.local/share/fitlog.
	DataDir string `json:"data_dir,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "badger".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "badger"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage creates a Store implementation based on the configured
// backend.
func (c *Config) OpenStorage() (storage.Store, error) {
	backend := c.GetBackend()
	dataDir := c.GetDataDir()

	switch backend {
	case "badger":
		return storage.OpenBadger(storage.BadgerConfig{
			Path: filepath.Join(dataDir, "badger"),
		})
	case "sqlite":
		return storage.OpenSQLite(filepath.Join(dataDir, "fitlog.db"))
	case "file":
		return storage.OpenFileStore(dataDir)
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// HasExistingData reports whether the configured backend already holds
// data on disk, without opening it. Opening a backend creates its files,
// so migration warnings must probe first.
func (c *Config) HasExistingData() (bool, error) {
	dataDir := c.GetDataDir()

	switch c.GetBackend() {
	case "badger":
		return storage.IsDirNonEmpty(filepath.Join(dataDir, "badger"))
	case "sqlite":
		if _, err := os.Stat(filepath.Join(dataDir, "fitlog.db")); err != nil {
			if os.IsNotExist(err) {
				return false, nil
			}
			return false, err
		}
		return true, nil
	case "file":
		nonEmpty, err := storage.IsDirNonEmpty(filepath.Join(dataDir, "activities"))
		if err != nil || nonEmpty {
			return nonEmpty, err
		}
		return storage.IsDirNonEmpty(filepath.Join(dataDir, "goals"))
	default:
		return false, fmt.Errorf("unknown backend: %q", c.GetBackend())
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fitlog", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
