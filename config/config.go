package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Dataset DatasetConfig `yaml:"dataset"`
	Demo    DemoConfig    `yaml:"demo"`
	Export  ExportConfig  `yaml:"export"`
}

type ServerConfig struct {
	Port           int      `yaml:"port"`
	RateLimitRPS   float64  `yaml:"rate_limit_rps"`
	RateLimitBurst int      `yaml:"rate_limit_burst"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DatasetConfig controls the record counts of the session dataset.
// Seed 0 seeds the random source from the clock.
type DatasetConfig struct {
	Seed          uint64 `yaml:"seed"`
	Policies      int    `yaml:"policies"`
	Claims        int    `yaml:"claims"`
	Underwriting  int    `yaml:"underwriting"`
	Opportunities int    `yaml:"opportunities"`
	Sales         int    `yaml:"sales"`
	EApps         int    `yaml:"eapps"`
}

// DefaultDatasetConfig returns the record counts the dashboard shows when the
// config file does not set them.
func DefaultDatasetConfig() DatasetConfig {
	return DatasetConfig{
		Policies:      50,
		Claims:        30,
		Underwriting:  20,
		Opportunities: 15,
		Sales:         100,
		EApps:         10,
	}
}

// DemoConfig tunes the simulated processing latency of the mock engines.
type DemoConfig struct {
	DelaysEnabled *bool   `yaml:"delays_enabled"`
	LatencyScale  float64 `yaml:"latency_scale"`
}

type ExportConfig struct {
	Minio MinioConfig `yaml:"minio"`
}

type MinioConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Endpoint   string `yaml:"endpoint"`
	AccessKey  string `yaml:"access_key"`
	SecretKey  string `yaml:"secret_key"`
	Bucket     string `yaml:"bucket"`
	UseSSL     bool   `yaml:"use_ssl"`
	ExpireDays int    `yaml:"expire_days"`
}

// Load reads the YAML file at path and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Counts are seeded before decoding so an explicit 0 in the file
	// survives; yaml leaves absent keys untouched.
	cfg := Config{Dataset: DefaultDatasetConfig()}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// Default returns a configuration with every default applied, for callers
// that run without a config file.
func Default() *Config {
	cfg := Config{Dataset: DefaultDatasetConfig()}
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.RateLimitRPS == 0 {
		c.Server.RateLimitRPS = 20
	}
	if c.Server.RateLimitBurst == 0 {
		c.Server.RateLimitBurst = 40
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"*"}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if c.Demo.DelaysEnabled == nil {
		enabled := true
		c.Demo.DelaysEnabled = &enabled
	}
	if c.Demo.LatencyScale == 0 {
		c.Demo.LatencyScale = 1.0
	}

	if c.Export.Minio.ExpireDays == 0 {
		c.Export.Minio.ExpireDays = 7
	}
	if c.Export.Minio.Bucket == "" {
		c.Export.Minio.Bucket = "insureai-exports"
	}
}

// DelaysEnabled reports whether the mock engines should simulate latency.
func (c *Config) DelaysEnabled() bool {
	return c.Demo.DelaysEnabled != nil && *c.Demo.DelaysEnabled
}
