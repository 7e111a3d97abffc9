// Package config loads the CLI configuration from defaults, an optional
// YAML file and REMINDERS_-prefixed environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the root configuration for the reminders CLI.
type Config struct {
	Store  StoreConfig  `koanf:"store"`
	Output OutputConfig `koanf:"output"`
	Log    LogConfig    `koanf:"log"`
	Serve  ServeConfig  `koanf:"serve"`
}

// StoreConfig configures the reminders database.
type StoreConfig struct {
	Path string `koanf:"path"`
}

// OutputConfig configures default output rendering.
type OutputConfig struct {
	// Format is the default item output format: "plain" or "json".
	// The --json flag overrides it per invocation.
	Format string `koanf:"format"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level string `koanf:"level"`
}

// ServeConfig configures the MCP serve mode.
type ServeConfig struct {
	// MetricsAddr is the listen address for the Prometheus /metrics
	// endpoint. Empty disables the metrics server.
	MetricsAddr string `koanf:"metrics_addr"`
}

// Load reads configuration from defaults, then the YAML file at configPath
// (if it exists), then REMINDERS_-prefixed environment variables. An empty
// configPath uses the default location.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(NewDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath == "" {
		configPath = DefaultConfigPath()
	}
	configPath = expandPath(configPath)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// REMINDERS_STORE_PATH -> store.path, REMINDERS_OUTPUT_FORMAT -> output.format
	if err := k.Load(env.Provider("REMINDERS_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "REMINDERS_")), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Store.Path = expandPath(cfg.Store.Path)
	return &cfg, nil
}

// Validate checks values that have a closed set of valid inputs.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "plain", "json":
	default:
		return fmt.Errorf("unknown output format: %s (supported: plain, json)", c.Output.Format)
	}
	return nil
}

func expandPath(path string) string {
	if path == "" {
		return path
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}

	return path
}
