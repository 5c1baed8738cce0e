package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the main configuration structure
type Config struct {
	Report ReportConfig `yaml:"report,omitempty"`
	Audit  AuditConfig  `yaml:"audit,omitempty"`
}

// ReportConfig contains report generation settings
type ReportConfig struct {
	Title      string `yaml:"title,omitempty"`      // Default report title
	Definition string `yaml:"definition,omitempty"` // Default survey definition file
	Debug      bool   `yaml:"debug,omitempty"`      // Always include debug panel
}

// AuditConfig for audit logging settings
type AuditConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Level    string `yaml:"level"` // minimal, standard, full
	File     string `yaml:"file,omitempty"`
	MaxSize  int64  `yaml:"max_size_mb,omitempty"` // Max file size in MB
	Database string `yaml:"database,omitempty"`    // SQLite database path
}

// LoadConfig loads configuration from YAML file. A missing file yields
// the defaults: the tool runs fine without a config.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	config.SetDefaults()
	return &config, nil
}

// SaveConfig saves configuration to YAML file
func SaveConfig(filename string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	c := &Config{}
	c.SetDefaults()
	return c
}

// SetDefaults fills unset fields with their defaults.
func (c *Config) SetDefaults() {
	if c.Audit.Level == "" {
		c.Audit.Level = "standard"
	}
	if c.Audit.MaxSize == 0 {
		c.Audit.MaxSize = 100
	}
}

// Validate checks the config for values the tool cannot work with.
func (c *Config) Validate() error {
	switch c.Audit.Level {
	case "minimal", "standard", "full":
	default:
		return fmt.Errorf("invalid audit level: %q (expected minimal, standard or full)", c.Audit.Level)
	}
	return nil
}

// CreateSampleConfig creates a sample configuration file
func CreateSampleConfig() *Config {
	return &Config{
		Report: ReportConfig{
			Title: "Survey Report",
			Debug: false,
		},
		Audit: AuditConfig{
			Enabled: true,
			Level:   "standard",
			File:    "audit.log",
			MaxSize: 100,
		},
	}
}
