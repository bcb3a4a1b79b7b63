package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go-notemap/notemap"
)

// Config is the main configuration structure
type Config struct {
	Notemap     string `json:"notemap,omitempty"`    // default notemap for show/remap/thru/browse
	GMChannel   int    `json:"gmChannel,omitempty"`  // 1-16
	DevChannel  int    `json:"devChannel,omitempty"` // 0 = any channel
	Reverse     bool   `json:"reverse,omitempty"`
	Palette     string `json:"palette,omitempty"` // GIMP .gpl file
	Debug       bool   `json:"debug,omitempty"`
	LastInPort  string `json:"lastInPort,omitempty"`
	LastOutPort string `json:"lastOutPort,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Notemap:   notemap.TestFileName,
		GMChannel: notemap.DefaultGMChannel,
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "go-notemap"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path. Missing fields keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks channel ranges
func (c *Config) Validate() error {
	if c.GMChannel < 1 || c.GMChannel > 16 {
		return fmt.Errorf("gmChannel %d out of range 1-16", c.GMChannel)
	}
	if c.DevChannel < 0 || c.DevChannel > 16 {
		return fmt.Errorf("devChannel %d out of range 0-16", c.DevChannel)
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

// SaveFile writes the config to path, creating its directory
func (c *Config) SaveFile(path string) error {
	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Apply sets the channel and direction defaults on a mapper that was
// loaded from a file. Channels given in the notemap file win over the
// config.
func (c *Config) Apply(m *notemap.Mapper) error {
	gmSet, devSet := m.ChannelsSet()
	if !gmSet {
		m.GMChannel = c.GMChannel
	}
	if !devSet {
		m.DevChannel = c.DevChannel
	}
	if c.Reverse {
		return m.SetReverse(true)
	}
	return nil
}

// RememberPorts records the ports used for a thru session
func (c *Config) RememberPorts(in, out string) {
	c.LastInPort = in
	c.LastOutPort = out
}
