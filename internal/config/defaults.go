package config

import (
	"github.com/knadh/koanf/providers/confmap"
)

// DefaultConfig returns the built-in configuration values.
func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"store": map[string]interface{}{
			"path": "~/.reminders/reminders.db",
		},
		"output": map[string]interface{}{
			"format": "plain",
		},
		"log": map[string]interface{}{
			"level": "info",
		},
		"serve": map[string]interface{}{
			"metrics_addr": "",
		},
	}
}

// NewDefaultProvider returns a koanf provider serving DefaultConfig.
func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(DefaultConfig(), ".")
}

// DefaultConfigPath returns the default config file location.
func DefaultConfigPath() string {
	return "~/.reminders/config.yaml"
}
