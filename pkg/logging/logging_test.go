package logging_test

import (
	"strings"
	"testing"

	"github.com/JaimeStill/verdant/pkg/logging"
)

func TestFinalizeDefaults(t *testing.T) {
	cfg := logging.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}
	if cfg.Level != "info" {
		t.Errorf("level: got %s, want info", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("format: got %s, want console", cfg.Format)
	}
}

func TestFinalizeEnvOverrides(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "debug")
	t.Setenv("TEST_LOG_FORMAT", "json")

	cfg := logging.Config{}
	err := cfg.Finalize(&logging.Env{Level: "TEST_LOG_LEVEL", Format: "TEST_LOG_FORMAT"})
	if err != nil {
		t.Fatalf("finalize failed: %v", err)
	}
	if cfg.Level != "debug" || cfg.Format != "json" {
		t.Errorf("got level=%s format=%s, want debug/json", cfg.Level, cfg.Format)
	}
}

func TestFinalizeValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logging.Config
		wantErr string
	}{
		{"bad level", logging.Config{Level: "loud"}, "invalid level"},
		{"bad format", logging.Config{Format: "xml"}, "invalid format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Finalize(nil)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestNew(t *testing.T) {
	for _, format := range logging.Formats {
		t.Run(format, func(t *testing.T) {
			cfg := logging.Config{Level: "warn", Format: format}
			logger, sync, err := logging.New(&cfg)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if logger == nil || sync == nil {
				t.Fatal("New() returned nil logger or sync")
			}
			logger.Warn("logger ready", "format", format)
		})
	}
}
