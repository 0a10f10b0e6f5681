package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultGlobalConfig(t *testing.T) {
	cfg := DefaultGlobalConfig()
	if cfg.Debug.RetentionDays != 7 {
		t.Errorf("RetentionDays = %d, want 7", cfg.Debug.RetentionDays)
	}
	if cfg.Client.Command != "claude" {
		t.Errorf("Client.Command = %q, want %q", cfg.Client.Command, "claude")
	}
}

func TestLoadGlobal_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal: %v", err)
	}
	if cfg.Client.Command != "claude" {
		t.Errorf("Client.Command = %q, want default", cfg.Client.Command)
	}
}

func TestLoadGlobal_ReadsFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".craft")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	data := []byte("debug:\n  retention_days: 30\nclient:\n  command: claude-next\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal: %v", err)
	}
	if cfg.Debug.RetentionDays != 30 {
		t.Errorf("RetentionDays = %d, want 30", cfg.Debug.RetentionDays)
	}
	if cfg.Client.Command != "claude-next" {
		t.Errorf("Client.Command = %q, want %q", cfg.Client.Command, "claude-next")
	}
}

func TestLoadGlobal_EnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CRAFT_CLIENT_COMMAND", "claude-dev")
	t.Setenv("CRAFT_DEBUG_RETENTION_DAYS", "2")

	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal: %v", err)
	}
	if cfg.Client.Command != "claude-dev" {
		t.Errorf("Client.Command = %q, want env override", cfg.Client.Command)
	}
	if cfg.Debug.RetentionDays != 2 {
		t.Errorf("RetentionDays = %d, want 2", cfg.Debug.RetentionDays)
	}
}

func TestLoadGlobal_BadRetentionIgnored(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CRAFT_DEBUG_RETENTION_DAYS", "soon")

	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal: %v", err)
	}
	if cfg.Debug.RetentionDays != 7 {
		t.Errorf("RetentionDays = %d, want default 7", cfg.Debug.RetentionDays)
	}
}
