// Package config handles loading and managing incognide-mcp configuration.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// BackendURLEnv overrides backend discovery entirely when set.
const BackendURLEnv = "INCOGNIDE_BACKEND_URL"

// Config holds all configuration for the incognide-mcp server.
type Config struct {
	Backend BackendConfig `yaml:"backend"`
}

// BackendConfig holds Incognide backend connection settings.
type BackendConfig struct {
	// URL is an explicit base URL. When set, port discovery is skipped.
	URL string `yaml:"url"`
	// ProbePorts are loopback ports probed in preference order.
	ProbePorts []int `yaml:"probe_ports"`
	// ProbeTimeoutMs bounds each connect-only discovery probe.
	ProbeTimeoutMs int `yaml:"probe_timeout_ms"`
	// ActionTimeoutMs bounds a single studio action POST.
	ActionTimeoutMs int `yaml:"action_timeout_ms"`
	// WindowsTimeoutMs bounds the window list GET.
	WindowsTimeoutMs int `yaml:"windows_timeout_ms"`
}

// Default returns a Config with sensible defaults.
// Port 5337 is the production backend, 5437 the development one.
func Default() *Config {
	return &Config{
		Backend: BackendConfig{
			URL:              "",
			ProbePorts:       []int{5337, 5437},
			ProbeTimeoutMs:   500,
			ActionTimeoutMs:  30000,
			WindowsTimeoutMs: 10000,
		},
	}
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".incognide", "mcp.yaml")
}

// Load reads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads configuration from a specific file path.
// A missing file is not an error; defaults are returned.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(ConfigPath())
}

// SaveTo writes the configuration to a specific file path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ProbeTimeout returns the per-port discovery probe timeout.
func (c *Config) ProbeTimeout() time.Duration {
	return msOrDefault(c.Backend.ProbeTimeoutMs, 500)
}

// ActionTimeout returns the total timeout for a studio action call.
func (c *Config) ActionTimeout() time.Duration {
	return msOrDefault(c.Backend.ActionTimeoutMs, 30000)
}

// WindowsTimeout returns the total timeout for the window list call.
func (c *Config) WindowsTimeout() time.Duration {
	return msOrDefault(c.Backend.WindowsTimeoutMs, 10000)
}

func msOrDefault(ms, def int) time.Duration {
	if ms <= 0 {
		ms = def
	}
	return time.Duration(ms) * time.Millisecond
}
