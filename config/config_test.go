package config

import (
	"errors"
	"testing"
)

func TestGetRequiresSecret(t *testing.T) {
	t.Setenv("SECRET_KEY", "")

	_, err := Get()
	if !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
}

func TestGetDefaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "https://cafes.example, https://other.example")

	cfg, err := Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if cfg.DBDriver != DriverSQLite || cfg.DatabaseDSN != "cafes.db" {
		t.Errorf("expected sqlite cafes.db, got %s %s", cfg.DBDriver, cfg.DatabaseDSN)
	}
	if cfg.Port != "8083" {
		t.Errorf("expected default port 8083, got %s", cfg.Port)
	}
	if len(cfg.AllowedOrigins) != 3 || cfg.AllowedOrigins[2] != "https://other.example" {
		t.Errorf("unexpected origins %v", cfg.AllowedOrigins)
	}
}

func TestGetRejectsUnknownDriver(t *testing.T) {
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("DB_DRIVER", "mysql")

	if _, err := Get(); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}
