package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultConnectTimeout = 10 * time.Second
	defaultCommandTimeout = 30 * time.Second
)

// Config is the root configuration structure
type Config struct {
	Version     int                         `yaml:"version"`
	Database    DatabaseConfig              `yaml:"database"`
	Devices     []DeviceConfig              `yaml:"devices,omitempty"`
	Credentials map[string]CredentialConfig `yaml:"credentials,omitempty"`
	Discovery   DiscoveryConfig             `yaml:"discovery,omitempty"`
	Poll        PollConfig                  `yaml:"poll,omitempty"`
	Output      OutputConfig                `yaml:"output,omitempty"`
}

// DatabaseConfig holds cache database settings
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// DeviceConfig describes one switch to poll
type DeviceConfig struct {
	Name       string `yaml:"name,omitempty"`
	Address    string `yaml:"address"`
	Port       int    `yaml:"port,omitempty"`     // SSH port, default 22
	Platform   string `yaml:"platform,omitempty"` // cisco_ios, procurve, junos
	Credential string `yaml:"credential,omitempty"`
}

// Host returns the key this device's records are cached under.
func (d DeviceConfig) Host() string {
	if d.Name != "" {
		return d.Name
	}
	return d.Address
}

// CredentialConfig holds SSH authentication material. Password and key
// auth are both supported; key wins when both are set.
type CredentialConfig struct {
	Username   string `yaml:"username"`
	Password   string `yaml:"password,omitempty"`
	KeyPath    string `yaml:"key_path,omitempty"`
	Passphrase string `yaml:"passphrase,omitempty"`
}

// DiscoveryConfig holds switch discovery settings
type DiscoveryConfig struct {
	Targets   []string `yaml:"targets,omitempty"`    // CIDR ranges or IPs
	PortRange string   `yaml:"port_range,omitempty"` // default "22"
}

// PollConfig holds timeouts for device polling
type PollConfig struct {
	ConnectTimeout Duration `yaml:"connect_timeout,omitempty"`
	CommandTimeout Duration `yaml:"command_timeout,omitempty"`
}

// OutputConfig holds default result rendering settings, overridable per
// invocation by command flags
type OutputConfig struct {
	NoHeader bool `yaml:"no_header,omitempty"`
	Quiet    bool `yaml:"quiet,omitempty"`
}

// Duration is a time.Duration with yaml support for "10s" style strings
type Duration time.Duration

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}

	*d = Duration(parsed)
	return nil
}
