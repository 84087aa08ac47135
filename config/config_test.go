package config

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Address != ":8090" {
		t.Errorf("Address = %s; want :8090", cfg.Address)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s; want info", cfg.LogLevel)
	}
	if cfg.Verbose {
		t.Error("Verbose should default to false")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVERSENTRY_ADDR", "127.0.0.1:9000")
	t.Setenv("SERVERSENTRY_LOG_LEVEL", "DEBUG")
	t.Setenv("SERVERSENTRY_VERBOSE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Address != "127.0.0.1:9000" {
		t.Errorf("Address = %s; want 127.0.0.1:9000", cfg.Address)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel should be lowercased, got %s", cfg.LogLevel)
	}
	if !cfg.Verbose {
		t.Error("Verbose should be true")
	}
}

func TestLoadLogLevelAlias(t *testing.T) {
	t.Setenv("SERVERSENTRY_LOG_LEVEL", "Warning")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %s; want warn", cfg.LogLevel)
	}
}

func TestLoadInvalid(t *testing.T) {
	testCases := []struct {
		name    string
		key     string
		value   string
		message string
	}{
		{"missing port", "SERVERSENTRY_ADDR", "localhost", "host:port"},
		{"port not a number", "SERVERSENTRY_ADDR", ":http", "out of valid range"},
		{"port out of range", "SERVERSENTRY_ADDR", ":70000", "out of valid range"},
		{"zero port", "SERVERSENTRY_ADDR", ":0", "out of valid range"},
		{"unknown log level", "SERVERSENTRY_LOG_LEVEL", "chatty", "SERVERSENTRY_LOG_LEVEL"},
		{"bad bool", "SERVERSENTRY_VERBOSE", "sometimes", "Verbose"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, ErrConfigNotValid) {
				t.Errorf("error should wrap ErrConfigNotValid, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.message) {
				t.Errorf("error %q should mention %q", err.Error(), tc.message)
			}
		})
	}
}
