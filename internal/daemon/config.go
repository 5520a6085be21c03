// Package daemon manages the region edge lifecycle and configuration.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all edge configuration.
type Config struct {
	API       APIConfig       `toml:"api"`
	Store     StoreConfig     `toml:"store"`
	Geo       GeoConfig       `toml:"geo"`
	Region    RegionConfig    `toml:"region"`
	Telemetry TelemetryConfig `toml:"telemetry"`
	Logging   LoggingConfig   `toml:"logging"`
}

// APIConfig controls the HTTP server.
type APIConfig struct {
	Host        string   `toml:"host"`
	Port        int      `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
}

// StoreConfig controls preference storage.
// Driver is "sqlite" (default) or "postgres"; postgres connection settings
// come from the environment (DATABASE_URL / DB_*). Any backend that fails
// to open degrades to an in-process memory store.
type StoreConfig struct {
	Driver string `toml:"driver"`
	Dir    string `toml:"dir"`
}

// GeoConfig controls the geolocation suggestion endpoint. Coordinates are
// pushed by the storefront from the browser geolocation API; the edge never
// looks up positions itself.
type GeoConfig struct {
	Enabled bool `toml:"enabled"`
}

// RegionConfig pins region behavior.
type RegionConfig struct {
	Default string `toml:"default"`
}

// TelemetryConfig controls metrics exposure.
type TelemetryConfig struct {
	Prometheus bool `toml:"prometheus"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	homeDir := spirithubHome()
	return Config{
		API: APIConfig{
			Host:        "127.0.0.1",
			Port:        8321,
			CORSOrigins: []string{"*"},
		},
		Store: StoreConfig{
			Driver: "sqlite",
			Dir:    homeDir,
		},
		Geo: GeoConfig{
			Enabled: true,
		},
		Region: RegionConfig{
			Default: "om",
		},
		Telemetry: TelemetryConfig{
			Prometheus: true,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(homeDir, "spirithub.log"),
		},
	}
}

// LoadConfig reads config from ~/.spirithub/config.toml, falling back to
// defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(spirithubHome(), "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // No config file yet, use defaults
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes the config to ~/.spirithub/config.toml.
func SaveConfig(cfg Config) error {
	path := filepath.Join(spirithubHome(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// spirithubHome returns the edge data directory.
func spirithubHome() string {
	if env := os.Getenv("SPIRITHUB_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".spirithub")
}

// Home is exported for use by other packages.
func Home() string {
	return spirithubHome()
}
