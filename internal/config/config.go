// Package config loads hito's YAML configuration from the XDG config
// directory, filling gaps with defaults and honoring HITO_* overrides.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/natefinch/atomic"
	"github.com/thenoetrevino/hito/internal/config/colors"
	"gopkg.in/yaml.v3"
)

const (
	defaultLogLevel        = "info"
	defaultEventDebounceMs = 100
)

// Config represents the application configuration
type Config struct {
	DataDir         string             `yaml:"data_dir"`
	LogLevel        string             `yaml:"log_level"`
	EventDebounceMs int                `yaml:"event_debounce_ms"`
	DefaultOrg      string             `yaml:"default_org,omitempty"`
	DefaultBoard    string             `yaml:"default_board,omitempty"`
	KeyMappings     KeyMappings        `yaml:"key_mappings"`
	ColorScheme     colors.ColorScheme `yaml:"theme"`

	// path is where the config was loaded from and where Save writes
	path string
}

// Default returns a config populated entirely with defaults
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads config from the user's config directory.
// A missing file yields the defaults.
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		// No home directory: run on defaults without a save location
		cfg := Default()
		cfg.applyEnv()
		loadThemeFile(cfg)
		return cfg, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from an explicit path
func LoadFrom(configPath string) (*Config, error) {
	cfg := &Config{path: configPath}

	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
		}
	}

	loadThemeFile(cfg)
	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg, nil
}

// Save writes the config back to where it was loaded from, atomically
func (c *Config) Save() error {
	configPath := c.path
	if configPath == "" {
		p, err := Path()
		if err != nil {
			return err
		}
		configPath = p
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	if err := atomic.WriteFile(configPath, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	c.path = configPath
	return nil
}

// Path returns the path to the config file
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "hito", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "hito", "config.yaml"), nil
}

// SocketPath is where the event daemon listens
func (c *Config) SocketPath() string {
	return filepath.Join(c.DataDir, "hito.sock")
}

// LogDir is where log files are written
func (c *Config) LogDir() string {
	return filepath.Join(c.DataDir, "logs")
}

// EventDebounce is the client-side event batching window
func (c *Config) EventDebounce() time.Duration {
	return time.Duration(c.EventDebounceMs) * time.Millisecond
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		c.DataDir = defaultDataDir()
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.EventDebounceMs <= 0 {
		c.EventDebounceMs = defaultEventDebounceMs
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

// applyEnv lets HITO_* variables override the file
func (c *Config) applyEnv() {
	if v := os.Getenv("HITO_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("HITO_LOG_LEVEL"); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("HITO_EVENT_DEBOUNCE_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			c.EventDebounceMs = ms
		}
	}
}

func defaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".hito"
	}
	return filepath.Join(homeDir, ".hito")
}

// loadThemeFile merges a theme from HITO_THEME_FILE over the configured one
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("HITO_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}
	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}
