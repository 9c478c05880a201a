// Package config provides configuration management for macsearch.
//
// The config file carries the device inventory and credentials; the cache
// database only ever holds what polling produced and can be wiped freely.
//
// Config file locations (priority order):
//  1. $MACSEARCH_CONFIG
//  2. ./macsearch.yaml
//  3. $XDG_CONFIG_HOME/macsearch/config.yaml
//  4. ~/.config/macsearch/config.yaml
//  5. /etc/macsearch/config.yaml
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// DefaultConfig returns sensible defaults for a new installation
func DefaultConfig() *Config {
	cfg := &Config{Version: 1}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Database.Path == "" {
		c.Database.Path = "./macsearch.db"
	}
	if c.Discovery.PortRange == "" {
		c.Discovery.PortRange = "22"
	}
	if c.Poll.ConnectTimeout == 0 {
		c.Poll.ConnectTimeout = Duration(defaultConnectTimeout)
	}
	if c.Poll.CommandTimeout == 0 {
		c.Poll.CommandTimeout = Duration(defaultCommandTimeout)
	}
	for i := range c.Devices {
		if c.Devices[i].Port == 0 {
			c.Devices[i].Port = 22
		}
		if c.Devices[i].Platform == "" {
			c.Devices[i].Platform = "cisco_ios"
		}
	}
}

// validate checks cross references between devices and credentials
func (c *Config) validate() error {
	for _, dev := range c.Devices {
		if dev.Address == "" {
			return fmt.Errorf("device %q has no address", dev.Name)
		}
		if dev.Credential == "" {
			continue
		}
		if _, ok := c.Credentials[dev.Credential]; !ok {
			return fmt.Errorf("device %q references unknown credential %q", dev.Host(), dev.Credential)
		}
	}
	return nil
}

// Device returns the configured device with the given name or address.
func (c *Config) Device(name string) (DeviceConfig, bool) {
	for _, dev := range c.Devices {
		if dev.Name == name || dev.Address == name {
			return dev, true
		}
	}
	return DeviceConfig{}, false
}

// CredentialFor resolves a device's credential reference.
func (c *Config) CredentialFor(dev DeviceConfig) (CredentialConfig, error) {
	cred, ok := c.Credentials[dev.Credential]
	if !ok {
		return CredentialConfig{}, fmt.Errorf("no credential %q for device %s", dev.Credential, dev.Host())
	}
	return cred, nil
}
