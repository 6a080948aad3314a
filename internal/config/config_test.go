package config

import (
	"testing"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.Currency != "$" {
		t.Errorf("Currency = %q, want $", cfg.General.Currency)
	}
	if cfg.General.DefaultDays != 7 {
		t.Errorf("DefaultDays = %d, want 7", cfg.General.DefaultDays)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q", cfg.Appearance.Theme)
	}
	if Exists() {
		t.Error("Exists should be false before first save")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.Currency = "₹"
	cfg.AI.Model = "claude-3-5-haiku-latest"
	cfg.AI.MaxTokens = 512

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Error("Exists should be true after save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.Currency != "₹" || got.AI.Model != "claude-3-5-haiku-latest" || got.AI.MaxTokens != 512 {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestGetAPIKey_EnvWins(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-env")

	cfg := DefaultConfig()
	cfg.AI.APIKey = "sk-config"
	if got := GetAPIKey(cfg); got != "sk-env" {
		t.Errorf("GetAPIKey = %q, want env value", got)
	}

	t.Setenv("ANTHROPIC_API_KEY", "")
	if got := GetAPIKey(cfg); got != "sk-config" {
		t.Errorf("GetAPIKey = %q, want config value", got)
	}
}

func TestStatePath_DataDirOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.DataDir = "/tmp/bw"
	if got := StatePath(cfg); got != "/tmp/bw/state.db" {
		t.Errorf("StatePath = %q", got)
	}
}
