// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for flightdesk configuration.
	DefaultConfigDir = ".flightdesk"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultStateFile holds values remembered between runs.
	DefaultStateFile = "state.yaml"
	// DefaultEnvFile is loaded from the base path when present.
	DefaultEnvFile = ".env"
)

// Environment variables read on load.
const (
	EnvBaseURL    = "FLIGHTDESK_API_BASE_URL"
	EnvMode       = "FLIGHTDESK_ENV"
	EnvRouteStyle = "FLIGHTDESK_ROUTE_STYLE"
	EnvLogLevel   = "FLIGHTDESK_LOG_LEVEL"
)

// Modes accepted in FLIGHTDESK_ENV.
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
	ModeTest        = "test"
)

// Config holds static configuration (read-only after init).
type Config struct {
	API   APIConfig   `yaml:"api,omitempty"`
	Log   LogConfig   `yaml:"log,omitempty"`
	Board BoardConfig `yaml:"board,omitempty"`

	// Mode is taken from FLIGHTDESK_ENV, never from the file.
	Mode string `yaml:"-"`
}

// APIConfig holds configuration for the flight backend.
type APIConfig struct {
	BaseURL    string        `yaml:"base_url,omitempty"`
	Timeout    time.Duration `yaml:"timeout,omitempty"`
	RouteStyle string        `yaml:"route_style,omitempty"`
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// BoardConfig holds arrivals and departures board settings.
type BoardConfig struct {
	// Refresh is the cron spec used by watch.
	Refresh string `yaml:"refresh,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:    "http://localhost:8080",
			Timeout:    10 * time.Second,
			RouteStyle: "plural",
		},
		Log: LogConfig{
			Level: "info",
		},
		Board: BoardConfig{
			Refresh: "@every 30s",
		},
		Mode: ModeProduction,
	}
}

// Load loads configuration from the .flightdesk directory in the given path.
// A missing config file is not an error: defaults apply. A .env file in the
// base path is loaded into the environment before overrides are read; it may
// be absent but must be readable.
func Load(basePath string) (*Config, error) {
	if err := godotenv.Load(filepath.Join(basePath, DefaultEnvFile)); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading env file: %w", err)
	}

	cfg := Default()

	data, err := os.ReadFile(ConfigFilePath(basePath))
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if url := strings.TrimSpace(os.Getenv(EnvBaseURL)); url != "" {
		c.API.BaseURL = url
	}
	if style := strings.TrimSpace(os.Getenv(EnvRouteStyle)); style != "" {
		c.API.RouteStyle = style
	}
	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		c.Log.Level = level
	}
	if mode := strings.ToLower(strings.TrimSpace(os.Getenv(EnvMode))); mode != "" {
		c.Mode = mode
	}
}

// Development reports whether diagnostic logging is enabled.
func (c *Config) Development() bool {
	return c.Mode == ModeDevelopment
}

// ConfigDir returns the path to the .flightdesk config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// StateFilePath returns the path to the state file.
func StateFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultStateFile)
}
