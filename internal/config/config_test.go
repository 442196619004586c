package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultKolorConfig(t *testing.T) {
	cfg := DefaultKolorConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.RoundTime() != 20*time.Second {
		t.Errorf("RoundTime() = %v, expected 20s", cfg.RoundTime())
	}
	if cfg.TickInterval() != 100*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 100ms", cfg.TickInterval())
	}
	if cfg.TicksPerRound() != 200 {
		t.Errorf("TicksPerRound() = %d, expected 200", cfg.TicksPerRound())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*KolorConfig)
	}{
		{"zero rounds", func(c *KolorConfig) { c.Rounds = 0 }},
		{"negative round time", func(c *KolorConfig) { c.RoundSeconds = -1 }},
		{"zero tick", func(c *KolorConfig) { c.TickMillis = 0 }},
		{"zero points", func(c *KolorConfig) { c.Points = 0 }},
		{"empty key", func(c *KolorConfig) { c.BestScoreKey = "" }},
		{"partial tick", func(c *KolorConfig) { c.RoundSeconds = 20.05 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultKolorConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parseKolor(defaultKolorYAML)
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultKolorConfig() {
		t.Errorf("embedded default %+v differs from DefaultKolorConfig %+v", cfg, DefaultKolorConfig())
	}
}

func TestLoadKolorCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kolor.yaml")
	if err := os.WriteFile(path, []byte("rounds: 5\nround_seconds: 7.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadKolor(path)
	if err != nil {
		t.Fatalf("LoadKolor() failed: %v", err)
	}

	if cfg.Rounds != 5 {
		t.Errorf("Rounds = %d, expected 5", cfg.Rounds)
	}
	if cfg.TicksPerRound() != 75 {
		t.Errorf("TicksPerRound() = %d, expected 75", cfg.TicksPerRound())
	}
	// Unset keys keep defaults
	if cfg.Points != 10 || cfg.BestScoreKey != "bestScore" {
		t.Errorf("missing keys should keep defaults, got %+v", cfg)
	}
}

func TestLoadKolorCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadKolor(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("rounds: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadKolor(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("rounds: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadKolor(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadKolorUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".kolor", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "kolor.yaml"), []byte("points: 25\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadKolor("")
	if err != nil {
		t.Fatalf("LoadKolor() failed: %v", err)
	}
	if cfg.Points != 25 {
		t.Errorf("Points = %d, expected 25 from user config", cfg.Points)
	}
}

func TestLoadKolorFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadKolor("")
	if err != nil {
		t.Fatalf("LoadKolor() failed: %v", err)
	}
	if cfg != DefaultKolorConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

// unsetenv clears key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	os.Unsetenv(key)
	t.Cleanup(func() {
		if had {
			os.Setenv(key, old)
		} else {
			os.Unsetenv(key)
		}
	})
}

func TestLoadEnvDefaults(t *testing.T) {
	for _, k := range []string{"KOLOR_DB", "KOLOR_CONFIG", "KOLOR_LOG", "KOLOR_SEED"} {
		unsetenv(t, k)
	}

	cfg, err := LoadEnv(filepath.Join(t.TempDir(), "absent.env"))
	if err != nil {
		t.Fatalf("LoadEnv() with missing dotenv should succeed: %v", err)
	}
	if cfg.DBPath != "~/.kolor/kolor.db" {
		t.Errorf("DBPath = %q, expected default", cfg.DBPath)
	}
	if cfg.Seed != 0 || cfg.ConfigPath != "" {
		t.Errorf("unexpected values: %+v", cfg)
	}
}

func TestLoadEnvFromDotenv(t *testing.T) {
	for _, k := range []string{"KOLOR_DB", "KOLOR_CONFIG", "KOLOR_LOG", "KOLOR_SEED"} {
		unsetenv(t, k)
	}
	t.Setenv("KOLOR_LOG", "/var/log/kolor.log")

	path := filepath.Join(t.TempDir(), ".env")
	content := "KOLOR_DB=/tmp/kolor-test.db\nKOLOR_SEED=42\nKOLOR_LOG=/ignored.log\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadEnv(path)
	if err != nil {
		t.Fatalf("LoadEnv() failed: %v", err)
	}
	if cfg.DBPath != "/tmp/kolor-test.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, expected 42", cfg.Seed)
	}
	// Real environment wins over the dotenv file
	if cfg.LogPath != "/var/log/kolor.log" {
		t.Errorf("LogPath = %q, expected environment value", cfg.LogPath)
	}
}
