// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolateEnv points the loader at an empty directory and clears every
// variable the loader reads.
func isolateEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)

	for key := range envMappings {
		t.Setenv(strings.ToUpper(key), "")
		os.Unsetenv(strings.ToUpper(key))
	}
	t.Setenv(portAliasEnvVar, "")
	os.Unsetenv(portAliasEnvVar)
	t.Setenv(ConfigPathEnvVar, "")
	os.Unsetenv(ConfigPathEnvVar)
	return dir
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 10s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Catalog.Path != "" || cfg.Catalog.Watch {
		t.Errorf("Catalog should default to the built-in catalog, got %+v", cfg.Catalog)
	}
	if cfg.Catalog.TTL != 3600 {
		t.Errorf("Catalog.TTL = %d, want 3600", cfg.Catalog.TTL)
	}
	if cfg.Catalog.Version != "1.0.0" {
		t.Errorf("Catalog.Version = %q, want 1.0.0", cfg.Catalog.Version)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if cfg.Security.RateLimitReqs != 100 || cfg.Security.RateLimitWindow != time.Minute {
		t.Errorf("rate limit = %d/%v, want 100/1m", cfg.Security.RateLimitReqs, cfg.Security.RateLimitWindow)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != "/metrics" {
		t.Errorf("Metrics = %+v", cfg.Metrics)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"HTTP_PORT", "server.port"},
		{"HTTP_HOST", "server.host"},
		{"HTTP_SHUTDOWN_TIMEOUT", "server.shutdown_timeout"},
		{"CATALOG_PATH", "catalog.path"},
		{"CATALOG_TTL", "catalog.ttl"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"RATE_LIMIT_REQUESTS", "security.rate_limit_reqs"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"LOG_LEVEL", "logging.level"},
		{"log_format", "logging.format"},
		{"PATH", ""},
		{"PORT", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := envTransformFunc(tt.input); result != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := isolateEnv(t)

	t.Run("no config file exists", func(t *testing.T) {
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})

	t.Run("config.yaml exists", func(t *testing.T) {
		path := filepath.Join(dir, "config.yaml")
		if err := os.WriteFile(path, []byte("server: {}\n"), 0o600); err != nil {
			t.Fatalf("Failed to create config file: %v", err)
		}
		defer os.Remove(path)

		if result := findConfigFile(); result != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", result)
		}
	})

	t.Run("CONFIG_PATH env var takes precedence", func(t *testing.T) {
		custom := filepath.Join(dir, "custom.yaml")
		if err := os.WriteFile(custom, []byte("server: {}\n"), 0o600); err != nil {
			t.Fatalf("Failed to create config file: %v", err)
		}
		t.Setenv(ConfigPathEnvVar, custom)

		if result := findConfigFile(); result != custom {
			t.Errorf("findConfigFile() = %q, want %q", result, custom)
		}
	})

	t.Run("CONFIG_PATH with non-existent file falls back", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	isolateEnv(t)
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CATALOG_TTL", "120")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("CORS_ORIGINS", "https://slither.io, https://example.com")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Catalog.TTL != 120 {
		t.Errorf("Catalog.TTL = %d, want 120", cfg.Catalog.TTL)
	}
	if cfg.Security.RateLimitWindow != 30*time.Second {
		t.Errorf("RateLimitWindow = %v, want 30s", cfg.Security.RateLimitWindow)
	}
	want := []string{"https://slither.io", "https://example.com"}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[0] != want[0] || cfg.Security.CORSOrigins[1] != want[1] {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled should be false")
	}

	// Defaults still apply for unset values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.Catalog.Version != "1.0.0" {
		t.Errorf("Catalog.Version = %q, want 1.0.0 (default)", cfg.Catalog.Version)
	}
}

func TestLoadWithKoanfPortAlias(t *testing.T) {
	t.Run("PORT used when HTTP_PORT unset", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("PORT", "8081")

		cfg, err := LoadWithKoanf()
		if err != nil {
			t.Fatalf("LoadWithKoanf() error = %v", err)
		}
		if cfg.Server.Port != 8081 {
			t.Errorf("Server.Port = %d, want 8081", cfg.Server.Port)
		}
	})

	t.Run("HTTP_PORT wins over PORT", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("PORT", "8081")
		t.Setenv("HTTP_PORT", "9090")

		cfg, err := LoadWithKoanf()
		if err != nil {
			t.Fatalf("LoadWithKoanf() error = %v", err)
		}
		if cfg.Server.Port != 9090 {
			t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
		}
	})
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	dir := isolateEnv(t)

	content := `
server:
  port: 8080
  environment: production
catalog:
  path: /srv/tags.yaml
  watch: true
  ttl: 60
security:
  cors_origins:
    - https://slither.io
  rate_limit_reqs: 50
logging:
  format: console
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if !cfg.IsProduction() {
		t.Error("IsProduction() should be true")
	}
	if cfg.Catalog.Path != "/srv/tags.yaml" || !cfg.Catalog.Watch || cfg.Catalog.TTL != 60 {
		t.Errorf("Catalog = %+v", cfg.Catalog)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "https://slither.io" {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Security.RateLimitReqs != 50 {
		t.Errorf("RateLimitReqs = %d, want 50", cfg.Security.RateLimitReqs)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
	// Untouched keys keep defaults
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s (default)", cfg.Server.ShutdownTimeout)
	}
}

func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	dir := isolateEnv(t)

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server:\n  port: 8080\n"), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv("HTTP_PORT", "7000")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("Server.Port = %d, want 7000 (env wins)", cfg.Server.Port)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"port too high", map[string]string{"HTTP_PORT": "70000"}, "HTTP_PORT"},
		{"port zero", map[string]string{"HTTP_PORT": "0"}, "HTTP_PORT"},
		{"negative ttl", map[string]string{"CATALOG_TTL": "-1"}, "CATALOG_TTL"},
		{"watch without path", map[string]string{"CATALOG_WATCH": "true"}, "CATALOG_PATH"},
		{"rate limit zero", map[string]string{"RATE_LIMIT_REQUESTS": "0"}, "RATE_LIMIT_REQUESTS"},
		{"rate window too long", map[string]string{"RATE_LIMIT_WINDOW": "2h"}, "RATE_LIMIT_WINDOW"},
		{"bad log level", map[string]string{"LOG_LEVEL": "verbose"}, "LOG_LEVEL"},
		{"bad log format", map[string]string{"LOG_FORMAT": "xml"}, "LOG_FORMAT"},
		{"metrics path without slash", map[string]string{"METRICS_PATH": "metrics"}, "METRICS_PATH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %s", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRateLimitsDisabled(t *testing.T) {
	cfg := defaultConfig()
	cfg.Security.RateLimitDisabled = true
	cfg.Security.RateLimitReqs = 0
	cfg.Security.RateLimitWindow = 0

	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled rate limiting should skip bounds checks, got %v", err)
	}
}

func TestServerAddr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 3000}
	if got := s.Addr(); got != "127.0.0.1:3000" {
		t.Errorf("Addr() = %q, want 127.0.0.1:3000", got)
	}
	s.Host = ""
	if got := s.Addr(); got != ":3000" {
		t.Errorf("Addr() = %q, want :3000", got)
	}
}
