package cache_test

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/verdant/pkg/cache"
)

func TestFinalizeDefaults(t *testing.T) {
	cfg := cache.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	tests := []struct {
		name     string
		got      any
		expected any
	}{
		{"addr", cfg.Addr, "localhost:6379"},
		{"db", cfg.DB, 0},
		{"key_prefix", cfg.KeyPrefix, "verdant:"},
		{"dial_timeout", cfg.DialTimeoutDuration(), 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v, want %v", tt.got, tt.expected)
			}
		})
	}
}

func TestFinalizeEnvOverrides(t *testing.T) {
	t.Setenv("TEST_REDIS_ADDR", "redis:6380")
	t.Setenv("TEST_REDIS_DB", "3")
	t.Setenv("TEST_REDIS_PREFIX", "test:")

	cfg := cache.Config{}
	err := cfg.Finalize(&cache.Env{
		Addr:      "TEST_REDIS_ADDR",
		DB:        "TEST_REDIS_DB",
		KeyPrefix: "TEST_REDIS_PREFIX",
	})
	if err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Addr != "redis:6380" {
		t.Errorf("addr: got %s, want redis:6380", cfg.Addr)
	}
	if cfg.DB != 3 {
		t.Errorf("db: got %d, want 3", cfg.DB)
	}
	if cfg.Key("history") != "test:history" {
		t.Errorf("key: got %s, want test:history", cfg.Key("history"))
	}
}

func TestFinalizeValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  cache.Config
	}{
		{"negative db", cache.Config{DB: -1}},
		{"invalid dial_timeout", cache.Config{DialTimeout: "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(nil); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestNewReturnsSystem(t *testing.T) {
	cfg := cache.Config{}
	cfg.Finalize(nil)

	sys := cache.New(&cfg, slog.Default())
	defer sys.Client().Close()

	if got := sys.Key("history"); got != "verdant:history" {
		t.Errorf("Key() = %s, want verdant:history", got)
	}
	if opts := sys.Client().Options(); opts.Addr != "localhost:6379" {
		t.Errorf("addr = %s, want localhost:6379", opts.Addr)
	}
}

func TestFinalizeDBNotInteger(t *testing.T) {
	t.Setenv("TEST_REDIS_DB", "first")

	cfg := cache.Config{}
	err := cfg.Finalize(&cache.Env{DB: "TEST_REDIS_DB"})
	if err == nil || !strings.Contains(err.Error(), "TEST_REDIS_DB") {
		t.Errorf("error = %v, want TEST_REDIS_DB parse error", err)
	}
}
