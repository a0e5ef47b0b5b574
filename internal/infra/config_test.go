package infra

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "PORT", "GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_BASE_URL",
		"GEMINI_REQUIRE_API_KEY", "ALLOWED_ORIGINS", "GEOIP_DB_PATH",
		"HISTORY_LIMIT", "RATE_LIMIT_PER_MINUTE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port mismatch: %q", cfg.Port)
	}
	if cfg.GeminiModel != "gemini-2.5-flash-image-preview" {
		t.Fatalf("GeminiModel mismatch: %q", cfg.GeminiModel)
	}
	if cfg.GeminiBaseURL != "https://generativelanguage.googleapis.com/v1beta" {
		t.Fatalf("GeminiBaseURL mismatch: %q", cfg.GeminiBaseURL)
	}
	if cfg.RequireGeminiKey {
		t.Fatal("RequireGeminiKey must default to false")
	}
	if cfg.HistoryLimit != 20 {
		t.Fatalf("HistoryLimit mismatch: %d", cfg.HistoryLimit)
	}
	if cfg.HTTPWriteTimeout != 120*time.Second {
		t.Fatalf("HTTPWriteTimeout mismatch: %v", cfg.HTTPWriteTimeout)
	}
}

func TestLoadConfigMissingKeyIsTolerated(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("missing GEMINI_API_KEY must not fail by default: %v", err)
	}
	if cfg.GeminiAPIKey != "" {
		t.Fatalf("unexpected key: %q", cfg.GeminiAPIKey)
	}
}

func TestLoadConfigFailFastFlag(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_REQUIRE_API_KEY", "true")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when key required but absent")
	}

	t.Setenv("GEMINI_API_KEY", "test-key")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if !cfg.RequireGeminiKey {
		t.Fatal("RequireGeminiKey not set")
	}
}

func TestLoadConfigParsesOrigins(t *testing.T) {
	clearEnv(t)
	t.Setenv("ALLOWED_ORIGINS", " https://app.example.com , http://localhost:3000 ")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	want := []string{"https://app.example.com", "http://localhost:3000"}
	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("AllowedOrigins mismatch: %#v", cfg.AllowedOrigins)
	}
	for i := range want {
		if cfg.AllowedOrigins[i] != want[i] {
			t.Fatalf("AllowedOrigins[%d] = %q, want %q", i, cfg.AllowedOrigins[i], want[i])
		}
	}
}

func TestLoadConfigNegativeHistoryLimitClamped(t *testing.T) {
	clearEnv(t)
	t.Setenv("HISTORY_LIMIT", "-5")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.HistoryLimit != 0 {
		t.Fatalf("HistoryLimit not clamped: %d", cfg.HistoryLimit)
	}
}
