package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "a-long-enough-secret-key")
	t.Setenv("ADDR", "")
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "")
	t.Setenv("REDIS_CONNSTRING", "")
	t.Setenv("OTLP_ENDPOINT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.DatabasePath != "./list_handler.db" {
		t.Errorf("DatabasePath = %q", cfg.DatabasePath)
	}
	if cfg.AccessTokenTTL != 30*time.Minute {
		t.Errorf("AccessTokenTTL = %v, want 30m", cfg.AccessTokenTTL)
	}
}

func TestLoadTTLOverride(t *testing.T) {
	t.Setenv("SECRET_KEY", "a-long-enough-secret-key")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AccessTokenTTL != 5*time.Minute {
		t.Errorf("AccessTokenTTL = %v, want 5m", cfg.AccessTokenTTL)
	}
}

func TestLoadRejectsBadTTL(t *testing.T) {
	t.Setenv("SECRET_KEY", "a-long-enough-secret-key")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "soon")

	if _, err := Load(); err == nil {
		t.Error("Load() accepted a non-numeric TTL")
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("SECRET_KEY", "")

	if _, err := Load(); err == nil {
		t.Error("Load() accepted an empty secret key")
	}
}

func TestValidateRejectsShortSecret(t *testing.T) {
	cfg := &Config{
		Addr:           ":8080",
		DatabasePath:   "./x.db",
		SecretKey:      "short",
		AccessTokenTTL: time.Minute,
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted a short secret key")
	}
}
