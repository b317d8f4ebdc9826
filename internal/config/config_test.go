package config

import (
	"os"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"DB_PATH", "HTTP_ADDRESS", "STATIC_DIR", "SHUTDOWN_TIMEOUT_SECONDS", "JWT_SECRET", "TOKEN_TTL_MINUTES", "BCRYPT_COST"} {
		// Setenv registers the restore; Unsetenv then clears it for this test.
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Path != "scheduler.db" || cfg.HTTP.Address != ":5000" || cfg.HTTP.StaticDir != "static" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Auth.TokensEnabled() {
		t.Fatalf("tokens should be disabled without JWT_SECRET")
	}
	if cfg.Auth.BcryptCost != bcrypt.DefaultCost || cfg.Auth.TokenTTL != time.Hour {
		t.Fatalf("unexpected auth defaults: %+v", cfg.Auth)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PATH", "test.db")
	t.Setenv("HTTP_ADDRESS", ":1234")
	t.Setenv("JWT_SECRET", "x")
	t.Setenv("TOKEN_TTL_MINUTES", "5")
	t.Setenv("BCRYPT_COST", "4")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Path != "test.db" || cfg.HTTP.Address != ":1234" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if !cfg.Auth.TokensEnabled() || cfg.Auth.TokenTTL != 5*time.Minute || cfg.Auth.BcryptCost != 4 {
		t.Fatalf("auth env not applied: %+v", cfg.Auth)
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"BCRYPT_COST":              "99",
		"TOKEN_TTL_MINUTES":        "abc",
		"SHUTDOWN_TIMEOUT_SECONDS": "0",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, val)
			}
		})
	}
}

func TestString_MasksSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "super-secret-value")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s := cfg.String(); strings.Contains(s, "super-secret-value") {
		t.Fatalf("secret leaked in %q", s)
	}
}
