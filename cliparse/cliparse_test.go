package cliparse

import (
	"testing"
)

func TestParseFlagsFromArgs(t *testing.T) {
	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "/tmp/contest.db", "-admin-salt", "secret"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Expected port 8080, got %d", cfg.Port)
	}
	if cfg.DatabasePath != "/tmp/contest.db" {
		t.Errorf("Expected database path, got %q", cfg.DatabasePath)
	}
	if cfg.AdminKeySalt != "secret" {
		t.Errorf("Expected admin salt, got %q", cfg.AdminKeySalt)
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := ParseFlags([]string{"-d", "/tmp/contest.db", "-admin-salt", "secret"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Port != 4100 {
		t.Errorf("Expected default port 4100, got %d", cfg.Port)
	}
}

func TestParseFlagsEnvFallback(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_PATH", "/tmp/env.db")
	t.Setenv("ADMIN_KEY_SALT", "env-secret")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Port != 9000 {
		t.Errorf("Expected port from env, got %d", cfg.Port)
	}
	if cfg.DatabasePath != "/tmp/env.db" {
		t.Errorf("Expected database path from env, got %q", cfg.DatabasePath)
	}
	if cfg.AdminKeySalt != "env-secret" {
		t.Errorf("Expected admin salt from env, got %q", cfg.AdminKeySalt)
	}
}

func TestParseFlagsPrecedence(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_PATH", "/tmp/env.db")
	t.Setenv("ADMIN_KEY_SALT", "env-secret")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "/tmp/cli.db"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Expected CLI port to win, got %d", cfg.Port)
	}
	if cfg.DatabasePath != "/tmp/cli.db" {
		t.Errorf("Expected CLI database path to win, got %q", cfg.DatabasePath)
	}
}

func TestParseFlagsRequiredValues(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("ADMIN_KEY_SALT", "")

	if _, err := ParseFlags([]string{"-admin-salt", "secret"}); err == nil {
		t.Error("Expected error when database path is missing")
	}
	if _, err := ParseFlags([]string{"-d", "/tmp/contest.db"}); err == nil {
		t.Error("Expected error when admin salt is missing")
	}
}

func TestParseFlagsInvalidPortEnv(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("DATABASE_PATH", "/tmp/env.db")
	t.Setenv("ADMIN_KEY_SALT", "env-secret")

	if _, err := ParseFlags(nil); err == nil {
		t.Error("Expected error for invalid PORT env variable")
	}
}
