package config

import (
	"os"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	if _, err := tmpFile.WriteString(content); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpFile.Close()
	return tmpFile.Name()
}

func TestLoad(t *testing.T) {
	configContent := `
server:
  port: 9090
  rate_limit_rps: 5
  rate_limit_burst: 10
  allowed_origins:
    - "http://localhost:5173"
log:
  level: "debug"
  format: "json"
dataset:
  seed: 42
  policies: 10
  claims: 5
  underwriting: 4
  opportunities: 3
  sales: 20
  eapps: 2
demo:
  delays_enabled: false
  latency_scale: 0.5
export:
  minio:
    enabled: true
    endpoint: "localhost:9000"
    access_key: "minioadmin"
    secret_key: "minioadmin"
    bucket: "test-bucket"
    expire_days: 14
`
	cfg, err := Load(writeTempConfig(t, configContent))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Server.RateLimitRPS != 5 {
		t.Errorf("Expected rate_limit_rps 5, got %v", cfg.Server.RateLimitRPS)
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "http://localhost:5173" {
		t.Errorf("Unexpected allowed_origins %v", cfg.Server.AllowedOrigins)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Expected log format json, got %s", cfg.Log.Format)
	}
	if cfg.Dataset.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.Dataset.Seed)
	}
	if cfg.Dataset.Policies != 10 || cfg.Dataset.Sales != 20 || cfg.Dataset.EApps != 2 {
		t.Errorf("Unexpected dataset counts %+v", cfg.Dataset)
	}
	if cfg.DelaysEnabled() {
		t.Error("Expected delays to be disabled")
	}
	if cfg.Demo.LatencyScale != 0.5 {
		t.Errorf("Expected latency_scale 0.5, got %v", cfg.Demo.LatencyScale)
	}
	if !cfg.Export.Minio.Enabled {
		t.Error("Expected minio export enabled")
	}
	if cfg.Export.Minio.Bucket != "test-bucket" {
		t.Errorf("Expected bucket test-bucket, got %s", cfg.Export.Minio.Bucket)
	}
	if cfg.Export.Minio.ExpireDays != 14 {
		t.Errorf("Expected expire_days 14, got %d", cfg.Export.Minio.ExpireDays)
	}
}

func TestLoadDefaults(t *testing.T) {
	configContent := `
log:
  level: "warn"
`
	cfg, err := Load(writeTempConfig(t, configContent))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Expected log level warn, got %s", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Expected default log format text, got %s", cfg.Log.Format)
	}
	if cfg.Dataset.Policies != 50 {
		t.Errorf("Expected default policies 50, got %d", cfg.Dataset.Policies)
	}
	if cfg.Dataset.Claims != 30 {
		t.Errorf("Expected default claims 30, got %d", cfg.Dataset.Claims)
	}
	if cfg.Dataset.Underwriting != 20 {
		t.Errorf("Expected default underwriting 20, got %d", cfg.Dataset.Underwriting)
	}
	if cfg.Dataset.Opportunities != 15 {
		t.Errorf("Expected default opportunities 15, got %d", cfg.Dataset.Opportunities)
	}
	if cfg.Dataset.Sales != 100 {
		t.Errorf("Expected default sales 100, got %d", cfg.Dataset.Sales)
	}
	if cfg.Dataset.EApps != 10 {
		t.Errorf("Expected default eapps 10, got %d", cfg.Dataset.EApps)
	}
	if !cfg.DelaysEnabled() {
		t.Error("Expected delays enabled by default")
	}
	if cfg.Demo.LatencyScale != 1.0 {
		t.Errorf("Expected default latency_scale 1.0, got %v", cfg.Demo.LatencyScale)
	}
	if cfg.Export.Minio.Enabled {
		t.Error("Expected minio export disabled by default")
	}
	if cfg.Export.Minio.ExpireDays != 7 {
		t.Errorf("Expected default expire_days 7, got %d", cfg.Export.Minio.ExpireDays)
	}
}

func TestLoadExplicitZeroCounts(t *testing.T) {
	configContent := `
dataset:
  claims: 0
  eapps: 0
`
	cfg, err := Load(writeTempConfig(t, configContent))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Dataset.Claims != 0 {
		t.Errorf("Expected explicit claims 0 to be kept, got %d", cfg.Dataset.Claims)
	}
	if cfg.Dataset.EApps != 0 {
		t.Errorf("Expected explicit eapps 0 to be kept, got %d", cfg.Dataset.EApps)
	}
	if cfg.Dataset.Policies != 50 {
		t.Errorf("Expected unset policies to default to 50, got %d", cfg.Dataset.Policies)
	}
	if cfg.Dataset.Sales != 100 {
		t.Errorf("Expected unset sales to default to 100, got %d", cfg.Dataset.Sales)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Dataset.Seed != 0 {
		t.Errorf("Expected time seeding by default, got seed %d", cfg.Dataset.Seed)
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "*" {
		t.Errorf("Expected wildcard origin, got %v", cfg.Server.AllowedOrigins)
	}
}

func TestLoadNonExistent(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(writeTempConfig(t, "invalid: yaml: content:"))
	if err == nil {
		t.Error("Expected error for invalid YAML")
	}
}
