package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); !errors.Is(err, ErrMissingJWTSecret) {
		t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.HTTP.Port != "8080" {
		t.Errorf("default port = %q, want 8080", cfg.HTTP.Port)
	}
	if cfg.Auth.TokenTTL != time.Hour {
		t.Errorf("default token TTL = %v, want 1h", cfg.Auth.TokenTTL)
	}
	if cfg.Database.URL == "" {
		t.Error("database URL should be derived from DB_* defaults")
	}
	if cfg.Address() != "0.0.0.0:8080" {
		t.Errorf("Address() = %q", cfg.Address())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/agenda?sslmode=disable")
	t.Setenv("SYNC_INTERVAL_SECONDS", "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.HTTP.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.HTTP.Port)
	}
	if cfg.Auth.TokenTTL != 30*time.Minute {
		t.Errorf("token TTL = %v, want 30m", cfg.Auth.TokenTTL)
	}
	if cfg.Database.URL != "postgres://u:p@db:5432/agenda?sslmode=disable" {
		t.Errorf("database URL not taken from DATABASE_URL: %q", cfg.Database.URL)
	}
	if cfg.Buffer.SyncInterval != 10*time.Second {
		t.Errorf("sync interval = %v, want 10s (bare seconds form)", cfg.Buffer.SyncInterval)
	}
}
