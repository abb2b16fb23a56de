package config

import (
	"testing"
	"time"
)

func lookupFrom(env map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI": "postgres://localhost/baspana",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RunAddress != defaultRunAddress {
		t.Fatalf("expected default run address, got %s", cfg.RunAddress)
	}
	if cfg.ExpirationInterval != defaultExpirationInterval {
		t.Fatalf("expected default expiration interval, got %s", cfg.ExpirationInterval)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Fatalf("expected default shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoadRequiresDatabaseURI(t *testing.T) {
	if _, err := load(nil, lookupFrom(nil)); err == nil {
		t.Fatal("expected error without database URI")
	}
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	cfg, err := load(
		[]string{"-a", ":9090", "-d", "postgres://flag/db", "-expiration-interval", "30m"},
		lookupFrom(map[string]string{
			"RUN_ADDRESS":  ":8081",
			"DATABASE_URI": "postgres://env/db",
		}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RunAddress != ":9090" {
		t.Fatalf("expected flag address, got %s", cfg.RunAddress)
	}
	if cfg.DatabaseURI != "postgres://flag/db" {
		t.Fatalf("expected flag DSN, got %s", cfg.DatabaseURI)
	}
	if cfg.ExpirationInterval != 30*time.Minute {
		t.Fatalf("expected 30m interval, got %s", cfg.ExpirationInterval)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	_, err := load([]string{"-d", "postgres://x/y", "-shutdown-timeout", "soon"}, lookupFrom(nil))
	if err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestLoadEnvDurations(t *testing.T) {
	cfg, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI":              "postgres://x/y",
		"EXPIRATION_SWEEP_INTERVAL": "2h",
		"SHUTDOWN_TIMEOUT":          "5s",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ExpirationInterval != 2*time.Hour {
		t.Fatalf("expected 2h, got %s", cfg.ExpirationInterval)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("expected 5s, got %s", cfg.ShutdownTimeout)
	}
}
