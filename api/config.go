// ABOUTME: Configuration for the QuickFlip backend connection
// ABOUTME: Handles the backend origin setting with env override and saved config
package api

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// DefaultBackendURL is the local development backend origin.
	DefaultBackendURL = "http://localhost:8000"

	// AppName is the application name for local data paths.
	AppName = "quickflip"

	// ConfigFileName is where we store local config.
	ConfigFileName = "config.json"

	// EnvBackendURL overrides the configured backend origin when set.
	EnvBackendURL = "QUICKFLIP_BACKEND_URL"
)

// Config holds backend connection settings.
type Config struct {
	// BackendURL is the backend origin (default: http://localhost:8000)
	BackendURL string `json:"backend_url,omitempty"`
}

// DefaultConfig returns a new config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{BackendURL: DefaultBackendURL}
}

// configPath returns the path to the config file.
func configPath() (string, error) {
	dataDir := filepath.Join(xdg.DataHome, AppName)
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(dataDir, ConfigFileName), nil
}

// LoadConfig loads config from disk, or returns defaults if not found.
// The QUICKFLIP_BACKEND_URL environment variable wins over the file.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	path, err := configPath()
	if err != nil {
		applyEnvOverrides(cfg)
		return cfg, nil //nolint:nilerr // Intentionally returning defaults on path error
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		// Invalid config, use defaults
		cfg = DefaultConfig()
	}

	if cfg.BackendURL == "" {
		cfg.BackendURL = DefaultBackendURL
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if origin := os.Getenv(EnvBackendURL); origin != "" {
		cfg.BackendURL = origin
	}
}

// Save persists the config to disk.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// SetBackendURL sets the backend origin and saves.
func (c *Config) SetBackendURL(origin string) error {
	c.BackendURL = origin
	return c.Save()
}
