package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Port)
	}
	if cfg.GeminiModel != "gemini-1.5-flash" {
		t.Errorf("GeminiModel = %q", cfg.GeminiModel)
	}
	if cfg.ScriptDurationSeconds != 30 {
		t.Errorf("ScriptDurationSeconds = %d, want 30", cfg.ScriptDurationSeconds)
	}
	if cfg.OllamaBaseURL != "" {
		t.Errorf("OllamaBaseURL = %q, want empty by default", cfg.OllamaBaseURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("WORKSPACE_DIR", "/tmp/ve-test")
	t.Setenv("SCRIPT_DURATION_SECONDS", "45")
	t.Setenv("GENERATE_RATE_LIMIT", "not-a-number")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.ScriptDurationSeconds != 45 {
		t.Errorf("ScriptDurationSeconds = %d, want 45", cfg.ScriptDurationSeconds)
	}
	// Unparseable int falls back to the default.
	if cfg.GenerateRateLimit != 10 {
		t.Errorf("GenerateRateLimit = %d, want 10", cfg.GenerateRateLimit)
	}

	if got := cfg.AssetsDir(); got != filepath.Join("/tmp/ve-test", "assets") {
		t.Errorf("AssetsDir = %q", got)
	}
	if got := cfg.ReviewDir(); got != filepath.Join("/tmp/ve-test", "review") {
		t.Errorf("ReviewDir = %q", got)
	}
}
