package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server      ServerConfig `yaml:"server"`
	KeyMappings KeyMappings  `yaml:"key_mappings"`
	Theme       Theme        `yaml:"theme"`
}

// ServerConfig holds the remote API connection settings.
type ServerConfig struct {
	// BaseURL is the root of the todos API, e.g. "http://localhost:8080".
	BaseURL string `yaml:"base_url"`
	// TimeoutSeconds bounds each request; 0 falls back to the default.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

const (
	defaultBaseURL        = "http://localhost:8080"
	defaultTimeoutSeconds = 10
)

// Timeout returns the per-request timeout as a duration.
func (s ServerConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// Load loads config from the given path, or from the default location when
// path is empty. A missing file yields the default config; the
// TODOTUI_SERVER environment variable overrides the base URL either way.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = defaultConfigPath()
		if err != nil {
			cfg := defaults()
			applyEnv(cfg)
			return cfg, nil
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := defaults()
		applyEnv(cfg)
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	applyEnv(&cfg)
	return &cfg, nil
}

// Save writes the config to the default location, creating the directory
// if needed.
func (c *Config) Save() error {
	path, err := defaultConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "todotui", "config.yaml"), nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL:        defaultBaseURL,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		KeyMappings: DefaultKeyMappings(),
		Theme:       DefaultTheme(),
	}
}

// applyDefaults fills in any missing values with defaults so a partial
// config file stays valid.
func (c *Config) applyDefaults() {
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = defaultBaseURL
	}
	if c.Server.TimeoutSeconds <= 0 {
		c.Server.TimeoutSeconds = defaultTimeoutSeconds
	}
	c.KeyMappings.applyDefaults()
	c.Theme.applyDefaults()
}

func applyEnv(c *Config) {
	if url := os.Getenv("TODOTUI_SERVER"); url != "" {
		c.Server.BaseURL = url
	}
}
