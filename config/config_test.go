package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "file:test.db")
	t.Setenv("JWT_KEY", "secret")
	t.Setenv("CORS_ORIGINS", " http://a.example , ,http://b.example")
	for _, key := range []string{"PORT", "DB_DRIVER", "TIMEZONE", "TOKEN_TTL_MINUTES"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "8080" || cfg.DBDriver != "mysql" {
		t.Fatalf("unexpected defaults: port=%q driver=%q", cfg.Port, cfg.DBDriver)
	}
	if cfg.TokenTTL != 12*time.Hour {
		t.Fatalf("token ttl = %v", cfg.TokenTTL)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.example" {
		t.Fatalf("cors origins = %v", cfg.CORSOrigins)
	}
	if Location.String() != "Asia/Tokyo" {
		t.Fatalf("location = %s", Location)
	}
	if string(JWTKey) != "secret" {
		t.Fatalf("jwt key not published")
	}
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_KEY", "secret")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error without DATABASE_URL")
	}

	t.Setenv("DATABASE_URL", "file:test.db")
	t.Setenv("JWT_KEY", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error without JWT_KEY")
	}
}

func TestLoadRejectsUnknownTimezone(t *testing.T) {
	t.Setenv("DATABASE_URL", "file:test.db")
	t.Setenv("JWT_KEY", "secret")
	t.Setenv("TIMEZONE", "Mars/Olympus")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown timezone")
	}
}
