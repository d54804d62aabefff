package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestLoadEmbeddedDefault(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadPaths(Paths{
		User:  filepath.Join(dir, "missing-user.yaml"),
		Local: filepath.Join(dir, "missing-local.yaml"),
	})
	if err != nil {
		t.Fatalf("LoadPaths() failed: %v", err)
	}

	if cfg.Attempts != 10 || cfg.MaxWordLength != 24 {
		t.Errorf("bounds = %+v", cfg.Bounds())
	}
	if cfg.SSH.Address != ":23235" {
		t.Errorf("ssh address = %q", cfg.SSH.Address)
	}
	if cfg.SSH.IdleTimeout != 30*time.Minute {
		t.Errorf("idle timeout = %v", cfg.SSH.IdleTimeout)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", "attempts: 42\nssh:\n  idle_timeout: 5m\n")

	cfg, err := LoadPaths(Paths{Custom: path})
	if err != nil {
		t.Fatalf("LoadPaths() failed: %v", err)
	}
	if cfg.Attempts != 42 {
		t.Errorf("attempts = %d, want 42", cfg.Attempts)
	}
	if cfg.SSH.IdleTimeout != 5*time.Minute {
		t.Errorf("idle timeout = %v, want 5m", cfg.SSH.IdleTimeout)
	}
	// Unset keys keep their defaults.
	if cfg.MaxWordLength != 24 || cfg.SSH.Address != ":23235" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPaths(Paths{Custom: filepath.Join(dir, "nope.yaml")}); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := writeFile(t, dir, "bad.yaml", "attempts: [not a number\n")
	if _, err := LoadPaths(Paths{Custom: bad}); err == nil {
		t.Error("malformed custom config should fail")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := t.TempDir()
	user := writeFile(t, dir, "user.yaml", "attempts: 20\n")
	local := writeFile(t, dir, "local.yaml", "attempts: 30\n")

	cfg, err := LoadPaths(Paths{User: user, Local: local})
	if err != nil {
		t.Fatalf("LoadPaths() failed: %v", err)
	}
	if cfg.Attempts != 20 {
		t.Errorf("attempts = %d, want user file value 20", cfg.Attempts)
	}

	cfg, err = LoadPaths(Paths{User: filepath.Join(dir, "missing.yaml"), Local: local})
	if err != nil {
		t.Fatalf("LoadPaths() failed: %v", err)
	}
	if cfg.Attempts != 30 {
		t.Errorf("attempts = %d, want local file value 30", cfg.Attempts)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", "attempts: 42\ndictionary: /from/file\n")

	t.Setenv("HANGMAN_ATTEMPTS", "50")
	t.Setenv("HANGMAN_SSH_ADDRESS", ":2222")

	cfg, err := LoadPaths(Paths{Custom: path})
	if err != nil {
		t.Fatalf("LoadPaths() failed: %v", err)
	}
	if cfg.Attempts != 50 {
		t.Errorf("attempts = %d, want env value 50", cfg.Attempts)
	}
	if cfg.SSH.Address != ":2222" {
		t.Errorf("ssh address = %q, want :2222", cfg.SSH.Address)
	}
	if cfg.Dictionary != "/from/file" {
		t.Errorf("dictionary = %q, want file value", cfg.Dictionary)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	dotenv := writeFile(t, dir, ".env", "HANGMAN_LOG_LEVEL=debug\n")

	// Register cleanup for the variable godotenv sets.
	t.Setenv("HANGMAN_LOG_LEVEL", "")
	os.Unsetenv("HANGMAN_LOG_LEVEL")

	cfg, err := LoadPaths(Paths{Local: filepath.Join(dir, "missing.yaml"), DotEnv: dotenv})
	if err != nil {
		t.Fatalf("LoadPaths() failed: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q, want debug from .env", cfg.LogLevel)
	}

	if _, err := LoadPaths(Paths{DotEnv: filepath.Join(dir, "absent.env")}); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}
