package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.HTTPPort != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.HTTPPort)
	}
	if cfg.DatabaseURL != "file:dashboard.db?cache=shared&mode=rwc" {
		t.Errorf("unexpected default database url: %s", cfg.DatabaseURL)
	}
	if cfg.LLMModel != "gpt-4o" {
		t.Errorf("expected default model gpt-4o, got %s", cfg.LLMModel)
	}
	if cfg.LLMTimeout != 60*time.Second {
		t.Errorf("expected default timeout 60s, got %s", cfg.LLMTimeout)
	}
	if cfg.HistoryLimit != 20 {
		t.Errorf("expected default history limit 20, got %d", cfg.HistoryLimit)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("LLM_TIMEOUT_MS", "1500")
	t.Setenv("HISTORY_LIMIT", "5")

	cfg := Load()

	if cfg.HTTPPort != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.HTTPPort)
	}
	if cfg.LLMModel != "gpt-4o-mini" {
		t.Errorf("expected model gpt-4o-mini, got %s", cfg.LLMModel)
	}
	if cfg.LLMTimeout != 1500*time.Millisecond {
		t.Errorf("expected timeout 1.5s, got %s", cfg.LLMTimeout)
	}
	if cfg.HistoryLimit != 5 {
		t.Errorf("expected history limit 5, got %d", cfg.HistoryLimit)
	}
}

func TestGetEnvIntIgnoresGarbage(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-number")

	cfg := Load()
	if cfg.HTTPPort != 8080 {
		t.Errorf("expected fallback to 8080, got %d", cfg.HTTPPort)
	}
}
