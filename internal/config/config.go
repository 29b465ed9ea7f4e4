// Package config loads the server configuration from a YAML file.
// Every field has a working default, so a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"i3mcp/internal/output"
)

// Transport names for the MCP server.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config is the full server configuration.
type Config struct {
	// I3MsgPath is the i3-msg binary, resolved via PATH when bare.
	I3MsgPath string `yaml:"i3msg_path"`

	// TimeoutSeconds bounds each i3-msg invocation.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// CharacterLimit caps tool response length.
	CharacterLimit int `yaml:"character_limit"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// Transport selects stdio or http.
	Transport string `yaml:"transport"`

	// Port is the listen port for the http transport.
	Port int `yaml:"port"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		I3MsgPath:      "i3-msg",
		TimeoutSeconds: 5,
		CharacterLimit: output.DefaultCharLimit,
		LogLevel:       "info",
		Transport:      TransportStdio,
		Port:           8765,
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "i3mcp", "config.yaml")
}

// Load reads the config at path, falling back to DefaultPath when path
// is empty. A missing file yields the defaults; a present but invalid
// file is an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", c.TimeoutSeconds)
	}
	if c.CharacterLimit < 0 {
		return fmt.Errorf("character_limit must not be negative, got %d", c.CharacterLimit)
	}
	if c.Transport != TransportStdio && c.Transport != TransportHTTP {
		return fmt.Errorf("transport must be %s or %s, got %q", TransportStdio, TransportHTTP, c.Transport)
	}
	if c.Transport == TransportHTTP && (c.Port <= 0 || c.Port > 65535) {
		return fmt.Errorf("port must be in 1..65535, got %d", c.Port)
	}
	return nil
}

// Timeout returns the per-call i3-msg timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
