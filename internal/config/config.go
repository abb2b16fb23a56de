package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress         string
	DatabaseURI        string
	TokenSecret        string
	ImageHostAddress   string
	ImageHostKey       string
	ExpirationInterval time.Duration
	ShutdownTimeout    time.Duration
	AllowedOrigins     string
}

const (
	defaultRunAddress         = ":8080"
	defaultTokenSecret        = "change-me-in-production"
	defaultExpirationInterval = time.Hour
	defaultShutdownTimeout    = 10 * time.Second
	defaultAllowedOrigins     = "*"
)

// Load parses configuration from .env, environment variables and flags.
func Load() (*Config, error) {
	// Missing .env is normal outside development.
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:         getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:        getString(lookup, "DATABASE_URI", ""),
		TokenSecret:        getString(lookup, "TOKEN_SECRET", defaultTokenSecret),
		ImageHostAddress:   getString(lookup, "IMAGE_HOST_ADDRESS", ""),
		ImageHostKey:       getString(lookup, "IMAGE_HOST_KEY", ""),
		ExpirationInterval: getDuration(lookup, "EXPIRATION_SWEEP_INTERVAL", defaultExpirationInterval),
		ShutdownTimeout:    getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		AllowedOrigins:     getString(lookup, "ALLOWED_ORIGINS", defaultAllowedOrigins),
	}

	fs := flag.NewFlagSet("baspana", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		expirationStr = cfg.ExpirationInterval.String()
		shutdownStr   = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.ImageHostAddress, "image-host", cfg.ImageHostAddress, "Image hosting service base URL")
	fs.StringVar(&cfg.ImageHostKey, "image-host-key", cfg.ImageHostKey, "Image hosting service API key")
	fs.StringVar(&expirationStr, "expiration-interval", expirationStr, "Interval between booking expiration sweeps")
	fs.StringVar(&shutdownStr, "shutdown-timeout", shutdownStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.AllowedOrigins, "allowed-origins", cfg.AllowedOrigins, "Comma-separated CORS origins")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ExpirationInterval, err = time.ParseDuration(expirationStr); err != nil {
		return nil, fmt.Errorf("invalid expiration interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("TOKEN_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read token secret file: %w", err)
		}
		cfg.TokenSecret = string(content)
	}

	if cfg.ExpirationInterval <= 0 {
		cfg.ExpirationInterval = defaultExpirationInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
